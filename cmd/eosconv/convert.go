package main

import (
	"github.com/spf13/cobra"

	"github.com/aerissecure/eosconv"
)

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Convert IN to OUT; the output format follows OUT's extension unless --to is given",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			in, out := args[0], args[1]

			tbl, err := eosconv.ReadFile(in, eosconv.ReadOptions{
				Format:       a.cfg.InputFormat,
				MaterialName: a.cfg.MaterialName,
				Logger:       a.log,
			})
			if err != nil {
				return err
			}

			format := eosconv.OutputFormat(out, a.cfg.OutputFormat)
			if err := eosconv.WriteFile(out, tbl, eosconv.WriteOptions{Format: format, Logger: a.log}); err != nil {
				return err
			}
			a.log.Info("converted", "from", in, "to", out, "format", format, "material", tbl.MaterialName(),
				"nt", tbl.NT(), "nr", tbl.NR())
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&a.flags.InputFormat, "from", "", "input format: auto, fixed-width, printed or spreadsheet")
	f.StringVar(&a.flags.OutputFormat, "to", "", "output format: auto, fixed-width or spreadsheet")
	f.StringVar(&a.flags.MaterialName, "name", "", "material name for inputs that carry none")
	return cmd
}
