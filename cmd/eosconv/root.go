package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aerissecure/eosconv/internal/config"
)

// app carries state shared by the subcommands once flags and config are
// resolved.
type app struct {
	stdout, stderr io.Writer

	configPath string
	flags      config.CliFlags
	cfg        *config.Resolved
	log        *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "eosconv",
		Short:         "Convert equation-of-state tables between formats",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.flags.NoColorSet = cmd.Flags().Changed("no-color")
			return a.setup()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default .eosconv.yaml, then the user config dir)")
	pf.StringVar(&a.flags.LogLevel, "log-level", "", "debug, info, warn or error")
	pf.BoolVar(&a.flags.NoColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newDetectCmd(a),
		newConvertCmd(a),
		newShowCmd(a),
	)
	return root
}

func (a *app) setup() error {
	file, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(file, a.flags)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	if file.Path != "" {
		a.log.Debug("loaded config", "path", file.Path)
	}
	return nil
}

// terminalWidth reports whether w is a terminal and, if so, its width.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, true
	}
	return width, true
}
