package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aerissecure/eosconv"
)

var errSomeUnrecognized = errors.New("some files were not recognized")

func newDetectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "detect FILE...",
		Short: "Print the format of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				f, err := eosconv.Detect(path, data)
				if err != nil {
					failed++
					a.log.Warn("format not recognized", "file", path)
					fmt.Fprintf(a.stdout, "%s\tunknown\n", path)
					continue
				}
				fmt.Fprintf(a.stdout, "%s\t%s\n", path, f)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d: %w", failed, len(args), errSomeUnrecognized)
			}
			return nil
		},
	}
}
