package prompt

import (
	"context"
	"errors"

	"github.com/alexisbeaulieu97/pagekit/internal/logger"
	"github.com/alexisbeaulieu97/pagekit/internal/validation"
)

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithLogger attaches a logger to the session and its orchestrator.
func WithLogger(log *logger.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// WithSuccessMessage overrides the message printed for an accepted signup.
func WithSuccessMessage(message string) Option {
	return func(s *Session) {
		s.successMessage = message
	}
}

// Session walks the signup fields one prompt at a time. Each entered answer
// counts as an input event for its field, and the prompt repeats until the
// field is valid. The terms question is asked once and left to the final
// submission.
type Session struct {
	driver         PromptDriver
	log            *logger.Logger
	successMessage string

	orch   *validation.Orchestrator
	values validation.Snapshot
	errors map[validation.FieldID]string
	status string
}

var _ validation.Binding = (*Session)(nil)

// NewSession creates a signup session. Without WithPromptDriver it prompts
// through survey on the current terminal.
func NewSession(opts ...Option) *Session {
	s := &Session{errors: make(map[validation.FieldID]string, len(validation.Precedence))}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	s.orch = validation.NewOrchestrator(s,
		validation.WithLogger(s.log),
		validation.WithSuccessMessage(s.successMessage),
	)
	return s
}

// Run asks for every field and submits the answers. The returned outcome
// reports whether the signup was accepted; err is set only when prompting fails.
func (s *Session) Run(ctx context.Context) (validation.Outcome, error) {
	steps := []struct {
		field  validation.FieldID
		cfg    InputConfig
		secret bool
		set    func(string)
	}{
		{validation.FieldName, InputConfig{Message: "Full name:"}, false, func(v string) { s.values.Name = v }},
		{validation.FieldEmail, InputConfig{Message: "Email:"}, false, func(v string) { s.values.Email = v }},
		{validation.FieldPassword, InputConfig{
			Message: "Password:",
			Help:    "At least 6 characters with an uppercase letter and a number.",
		}, true, func(v string) { s.values.Password = v }},
		{validation.FieldConfirm, InputConfig{Message: "Confirm password:"}, true, func(v string) { s.values.Confirm = v }},
	}

	for _, step := range steps {
		step.cfg.Validator = s.liveValidator(step.field, step.set)

		ask := s.driver.Input
		if step.secret {
			ask = s.driver.Password
		}
		answer, err := ask(ctx, step.cfg)
		if err != nil {
			return validation.Outcome{}, err
		}
		step.set(answer)
	}

	accepted, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "I accept the terms"})
	if err != nil {
		return validation.Outcome{}, err
	}
	s.values.TermsAccepted = accepted
	message, err := s.orch.ValidateField(validation.FieldTerms)
	if err != nil {
		return validation.Outcome{}, err
	}
	if message != "" {
		if err := s.driver.Info(ctx, "  "+message); err != nil {
			return validation.Outcome{}, err
		}
	}

	outcome := s.orch.ValidateAndSubmit(s.values)
	if err := s.driver.Info(ctx, s.status); err != nil {
		return outcome, err
	}
	s.log.WithFields(map[string]any{
		"outcome": string(outcome.Status),
		"cleared": outcome.ClearFields,
	}).Info("signup submitted")
	return outcome, nil
}

// liveValidator treats every answer survey checks as an input event for field.
func (s *Session) liveValidator(field validation.FieldID, set func(string)) func(string) error {
	return func(answer string) error {
		set(answer)
		message, err := s.orch.ValidateField(field)
		if err != nil {
			return err
		}
		if message != "" {
			return errors.New(message)
		}
		return nil
	}
}

// FieldError returns the message last shown for field.
func (s *Session) FieldError(field validation.FieldID) string {
	return s.errors[field]
}

func (s *Session) Snapshot() validation.Snapshot {
	return s.values
}

func (s *Session) ShowFieldError(field validation.FieldID, message string) {
	s.errors[field] = message
}

func (s *Session) ShowStatus(message string) {
	s.status = message
}

func (s *Session) Reset() {
	s.values = validation.Snapshot{}
}
