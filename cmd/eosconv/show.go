package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aerissecure/eosconv"
	"github.com/aerissecure/eosconv/internal/render"
)

func newShowCmd(a *app) *cobra.Command {
	var rows int
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Summarize a table: info fields, axis ranges and a corner of each matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tbl, err := eosconv.ReadFile(args[0], eosconv.ReadOptions{
				Format:       a.cfg.InputFormat,
				MaterialName: a.cfg.MaterialName,
				Logger:       a.log,
			})
			if err != nil {
				return err
			}

			width, tty := terminalWidth(a.stdout)
			theme := render.ThemeFor(a.cfg.NoColor || !tty)
			_, err = fmt.Fprint(a.stdout, render.NewTerminal(theme, width).WithMaxRows(rows).Render(tbl))
			return err
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 6, "temperature rows to preview per matrix")
	cmd.Flags().StringVar(&a.flags.InputFormat, "from", "", "input format: auto, fixed-width, printed or spreadsheet")
	cmd.Flags().StringVar(&a.flags.MaterialName, "name", "", "material name for inputs that carry none")
	return cmd
}
