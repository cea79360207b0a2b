package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pagekit/internal/config"
)

func newConfigCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect page configuration files",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check <config-file>",
		Short: "Parse and validate a page config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ParseConfig(args[0])
			if err != nil {
				return err
			}
			app.Logger.With("config", args[0]).Debug("page config valid")
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d tabs, %d faq items, theme %s)\n",
				args[0], len(cfg.Tabs), len(cfg.FAQ), cfg.Theme)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "default",
		Short: "Print the built-in page config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
			return err
		},
	})

	return cmd
}
