package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pagekit/internal/prompt"
	pageerrors "github.com/alexisbeaulieu97/pagekit/pkg/errors"
)

// signupDriver is swapped out in tests.
var signupDriver = func(cmd *cobra.Command) prompt.PromptDriver {
	return prompt.NewSurveyDriver(cmd.OutOrStdout())
}

func newSignupCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "signup",
		Short: "Fill in the signup form with line-by-line prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.PageConfig()
			if err != nil {
				return err
			}

			session := prompt.NewSession(
				prompt.WithPromptDriver(signupDriver(cmd)),
				prompt.WithLogger(app.Logger),
				prompt.WithSuccessMessage(cfg.Messages.Success),
			)

			outcome, err := session.Run(cmd.Context())
			if errors.Is(err, prompt.ErrAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "signup cancelled")
				return nil
			}
			if err != nil {
				return pageerrors.NewTerminalError("prompt", err)
			}
			if !outcome.Accepted() {
				return pageerrors.NewRejectedError(outcome.Message)
			}
			return nil
		},
	}
}
