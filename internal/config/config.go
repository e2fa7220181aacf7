package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aerissecure/eosconv"
)

// File names searched by LoadConfig.
const (
	LocalFileName = ".eosconv.yaml"
	UserDirName   = "eosconv"
	UserFileName  = "config.yaml"
)

// Defaults applied before any file, environment or flag.
const (
	DefaultInputFormat  = "auto"
	DefaultOutputFormat = "auto"
	DefaultLogLevel     = "warn"
)

// AppConfig mirrors the YAML config file.
type AppConfig struct {
	InputFormat  string `yaml:"input_format"`
	OutputFormat string `yaml:"output_format"`
	LogLevel     string `yaml:"log_level"`
	NoColor      bool   `yaml:"no_color"`
	MaterialName string `yaml:"material_name"`

	// Path is the file the values came from; empty for defaults.
	Path string `yaml:"-"`
}

// CliFlags holds command-line values. The *Set fields record whether the
// user passed the flag, so an explicit false can override the file.
type CliFlags struct {
	InputFormat  string
	OutputFormat string
	LogLevel     string
	NoColor      bool
	NoColorSet   bool
	MaterialName string
}

// Resolved is the effective configuration after precedence is applied.
type Resolved struct {
	InputFormat  eosconv.Format
	OutputFormat eosconv.Format
	LogLevel     slog.Level
	NoColor      bool
	MaterialName string

	// Where each behavioral setting came from: "cli", "env", "file" or "default".
	LogLevelSource string
	NoColorSource  string
}

// Defaults returns the built-in configuration.
func Defaults() *AppConfig {
	return &AppConfig{
		InputFormat:  DefaultInputFormat,
		OutputFormat: DefaultOutputFormat,
		LogLevel:     DefaultLogLevel,
	}
}

// LoadConfig reads the config file at path. With an empty path it searches
// the working directory, then the user config directory, and falls back to
// Defaults when neither holds a file. An explicit path must exist.
func LoadConfig(path string) (*AppConfig, error) {
	explicit := path != ""
	if !explicit {
		path = getConfigPath()
		if path == "" {
			return Defaults(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// parse overlays the YAML document onto Defaults. Unknown keys are errors.
func parse(data []byte) (*AppConfig, error) {
	var file AppConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	cfg := Defaults()
	if file.InputFormat != "" {
		cfg.InputFormat = file.InputFormat
	}
	if file.OutputFormat != "" {
		cfg.OutputFormat = file.OutputFormat
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	cfg.NoColor = file.NoColor
	cfg.MaterialName = strings.TrimSpace(file.MaterialName)
	return cfg, nil
}

// getConfigPath returns the first config file that exists, or "".
func getConfigPath() string {
	if _, err := os.Stat(LocalFileName); err == nil {
		return LocalFileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, UserDirName, UserFileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}

// Resolve applies environment variables and flags on top of appCfg and
// validates the result.
func Resolve(appCfg *AppConfig, flags CliFlags) (*Resolved, error) {
	if appCfg == nil {
		appCfg = Defaults()
	}
	fileSource := "default"
	if appCfg.Path != "" {
		fileSource = "file"
	}

	r := &Resolved{
		NoColor:        appCfg.NoColor,
		NoColorSource:  fileSource,
		LogLevelSource: fileSource,
		MaterialName:   appCfg.MaterialName,
	}

	level := appCfg.LogLevel
	if env := os.Getenv("EOSCONV_LOG_LEVEL"); env != "" {
		level, r.LogLevelSource = env, "env"
	}
	if flags.LogLevel != "" {
		level, r.LogLevelSource = flags.LogLevel, "cli"
	}
	if level == "" {
		level, r.LogLevelSource = DefaultLogLevel, "default"
	}
	if err := r.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q (from %s): %w", level, r.LogLevelSource, err)
	}

	if env := os.Getenv("NO_COLOR"); env != "" {
		r.NoColor, r.NoColorSource = true, "env"
	}
	if env := os.Getenv("EOSCONV_NO_COLOR"); env != "" {
		v, err := strconv.ParseBool(env)
		if err != nil {
			return nil, fmt.Errorf("EOSCONV_NO_COLOR=%q: %w", env, err)
		}
		r.NoColor, r.NoColorSource = v, "env"
	}
	if flags.NoColorSet {
		r.NoColor, r.NoColorSource = flags.NoColor, "cli"
	}

	if flags.MaterialName != "" {
		r.MaterialName = flags.MaterialName
	}

	var err error
	if r.InputFormat, err = resolveFormat("input", appCfg.InputFormat, flags.InputFormat); err != nil {
		return nil, err
	}
	if r.OutputFormat, err = resolveFormat("output", appCfg.OutputFormat, flags.OutputFormat); err != nil {
		return nil, err
	}
	if r.OutputFormat == eosconv.FormatPrintedDump {
		return nil, fmt.Errorf("output format %s: %w", r.OutputFormat, eosconv.ErrUnsupportedFormat)
	}
	return r, nil
}

func resolveFormat(what, file, flag string) (eosconv.Format, error) {
	s := file
	if flag != "" {
		s = flag
	}
	if s == "" {
		return eosconv.FormatAuto, nil
	}
	f, err := eosconv.ParseFormat(s)
	if err != nil {
		return eosconv.FormatAuto, fmt.Errorf("%s format: %w", what, err)
	}
	return f, nil
}
