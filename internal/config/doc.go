// Package config loads and resolves eosconv settings.
//
// # Precedence
//
// Values are resolved in this order, highest priority first:
//
//  1. CLI flags (--from, --to, --log-level, --no-color, --name)
//  2. Environment variables (EOSCONV_LOG_LEVEL, EOSCONV_NO_COLOR, NO_COLOR)
//  3. YAML config file (.eosconv.yaml in the working directory, or
//     eosconv/config.yaml under the user config directory)
//  4. Hardcoded defaults
//
// # File keys
//
//   - input_format: auto, fixed-width, printed or spreadsheet
//   - output_format: auto, fixed-width or spreadsheet
//   - log_level: debug, info, warn or error
//   - no_color: disable styled terminal output
//   - material_name: name given to tables whose source carries none
//
// NO_COLOR follows https://no-color.org: any non-empty value disables
// color. EOSCONV_NO_COLOR must parse as a boolean and wins over NO_COLOR.
package config
