package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pagekit/internal/validation"
	pageerrors "github.com/alexisbeaulieu97/pagekit/pkg/errors"
)

type validateOptions struct {
	Snapshot validation.Snapshot
	Field    string
	JSON     bool
}

func newValidateCmd(app *AppContext) *cobra.Command {
	opts := validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate signup values without the interactive page",
		Long: `Validate runs the signup checks against the given values and prints the
message for every field plus the status line. With --field only that field is
checked, as if it had just been edited. Exits 1 when the submission is rejected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), app, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Snapshot.Name, "name", "", "Full name")
	f.StringVar(&opts.Snapshot.Email, "email", "", "Email address")
	f.StringVar(&opts.Snapshot.Password, "password", "", "Password")
	f.StringVar(&opts.Snapshot.Confirm, "confirm", "", "Password confirmation")
	f.BoolVar(&opts.Snapshot.TermsAccepted, "accept-terms", false, "Accept the terms")
	f.StringVar(&opts.Field, "field", "", "Validate a single field: name, email, password, confirm or terms")
	f.BoolVar(&opts.JSON, "json", false, "Output results in JSON format")

	return cmd
}

// cliBinding records what the orchestrator would display.
type cliBinding struct {
	values validation.Snapshot
	errors map[validation.FieldID]string
	status string
}

func newCLIBinding(values validation.Snapshot) *cliBinding {
	return &cliBinding{values: values, errors: make(map[validation.FieldID]string, len(validation.Precedence))}
}

func (b *cliBinding) Snapshot() validation.Snapshot { return b.values }

func (b *cliBinding) ShowFieldError(field validation.FieldID, message string) {
	b.errors[field] = message
}

func (b *cliBinding) ShowStatus(message string) { b.status = message }

func (b *cliBinding) Reset() { b.values = validation.Snapshot{} }

func runValidate(out io.Writer, app *AppContext, opts validateOptions) error {
	cfg, err := app.PageConfig()
	if err != nil {
		return err
	}

	binding := newCLIBinding(opts.Snapshot)
	orch := validation.NewOrchestrator(binding,
		validation.WithLogger(app.Logger),
		validation.WithSuccessMessage(cfg.Messages.Success),
	)

	if opts.Field != "" {
		return runValidateField(out, orch, binding, opts)
	}

	outcome := orch.ValidateAndSubmit(binding.Snapshot())
	if opts.JSON {
		if err := writeJSON(out, outcome); err != nil {
			return err
		}
	} else {
		printOutcome(out, binding)
	}

	if !outcome.Accepted() {
		return pageerrors.NewRejectedError(outcome.Message)
	}
	return nil
}

func runValidateField(out io.Writer, orch *validation.Orchestrator, binding *cliBinding, opts validateOptions) error {
	field, err := validation.ParseFieldID(opts.Field)
	if err != nil {
		return err
	}

	message, err := orch.ValidateField(field)
	if err != nil {
		return err
	}

	if opts.JSON {
		if err := writeJSON(out, struct {
			Field   validation.FieldID `json:"field"`
			Valid   bool               `json:"valid"`
			Message string             `json:"message"`
		}{field, message == "", message}); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, fieldLine(field, message))
	}

	if message != "" {
		return pageerrors.NewRejectedError(message)
	}
	return nil
}

func printOutcome(out io.Writer, binding *cliBinding) {
	for _, field := range validation.Precedence {
		fmt.Fprintln(out, fieldLine(field, binding.errors[field]))
	}
	fmt.Fprintf(out, "\n%s\n", binding.status)
}

func fieldLine(field validation.FieldID, message string) string {
	if message == "" {
		return fmt.Sprintf("✔ %-8s ok", field)
	}
	return fmt.Sprintf("✖ %-8s %s", field, message)
}

func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
