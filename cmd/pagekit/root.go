package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/pagekit/internal/tui"
	pageerrors "github.com/alexisbeaulieu97/pagekit/pkg/errors"
)

var errNotTerminal = errors.New("stdin is not a terminal; use 'pagekit signup' or 'pagekit validate' instead")

// isTerminal reports whether the process can host the interactive page.
var isTerminal = func(fd int) bool { return term.IsTerminal(fd) }

func newRootCmd() (*cobra.Command, *AppContext) {
	app := newAppContext()

	cmd := &cobra.Command{
		Use:           "pagekit",
		Short:         "Interactive terminal page with a validated signup form",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The interactive page owns the screen, so it only logs to a file.
			return app.setupLogger(cmd.ErrOrStderr(), !cmd.HasParent())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd, app)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Page config file (defaults to the built-in page)")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.String("log-file", "", "Write logs to this file")
	flags.BoolP("verbose", "v", false, "Enable verbose logging")
	cobra.CheckErr(app.bindFlags(cmd))

	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newSignupCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd, app
}

// execute runs cmd and releases the log file whether or not the command failed.
func execute(cmd *cobra.Command, app *AppContext) error {
	err := cmd.Execute()
	if closeErr := app.close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close log file: %w", closeErr)
	}
	return err
}

func runPage(cmd *cobra.Command, app *AppContext) error {
	if !isTerminal(0) {
		return pageerrors.NewTerminalError("start", errNotTerminal)
	}

	cfg, err := app.PageConfig()
	if err != nil {
		return err
	}

	app.Logger.With("title", cfg.Title).Info("starting interactive page")
	return tui.Run(cmd.Context(), tui.NewModel(cfg, app.Logger))
}
