package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pagekit/internal/validation"
)

// stubDriver replays scripted answers. Like survey, it re-asks while the
// validator rejects an answer and records the rejection messages.
type stubDriver struct {
	inputs    []string
	passwords []string
	confirm   []bool
	inputPos  int
	passPos   int
	confPos   int

	rejections []string
	infos      []string
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	return s.answer(cfg, s.inputs, &s.inputPos)
}

func (s *stubDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	return s.answer(cfg, s.passwords, &s.passPos)
}

func (s *stubDriver) answer(cfg InputConfig, script []string, pos *int) (string, error) {
	for *pos < len(script) {
		val := script[*pos]
		*pos++
		if cfg.Validator == nil {
			return val, nil
		}
		if err := cfg.Validator(val); err != nil {
			s.rejections = append(s.rejections, err.Error())
			continue
		}
		return val, nil
	}
	return "", errors.New("no answer scripted")
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confPos]
	s.confPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func TestSessionAcceptsValidSignup(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Ada Lovelace", "ada@example.com"},
		passwords: []string{"Secret1", "Secret1"},
		confirm:   []bool{true},
	}
	s := NewSession(WithPromptDriver(driver))

	outcome, err := s.Run(context.Background())
	require.NoError(t, err)
	require.True(t, outcome.Accepted())
	require.Equal(t, validation.DefaultSuccessMessage, outcome.Message)
	require.True(t, outcome.ClearFields)
	require.Empty(t, driver.rejections)
	require.Equal(t, []string{validation.DefaultSuccessMessage}, driver.infos)
	require.Equal(t, validation.Snapshot{}, s.Snapshot())
}

func TestSessionReasksUntilFieldIsValid(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"A", "Ada", "ada@", "ada@example.com"},
		passwords: []string{"short", "longenough", "Longenough", "Longenough1", "Longenough2", "Longenough1"},
		confirm:   []bool{true},
	}
	s := NewSession(WithPromptDriver(driver))

	outcome, err := s.Run(context.Background())
	require.NoError(t, err)
	require.True(t, outcome.Accepted())
	require.Equal(t, []string{
		validation.MsgNameTooShort,
		validation.MsgEmailInvalid,
		validation.MsgPasswordTooShort,
		validation.MsgPasswordUppercase,
		validation.MsgPasswordDigit,
		validation.MsgConfirmMismatch,
	}, driver.rejections)
}

func TestSessionRejectsWithoutTerms(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Ada Lovelace", "ada@example.com"},
		passwords: []string{"Secret1", "Secret1"},
		confirm:   []bool{false},
	}
	s := NewSession(WithPromptDriver(driver), WithSuccessMessage("Welcome aboard"))

	outcome, err := s.Run(context.Background())
	require.NoError(t, err)
	require.False(t, outcome.Accepted())
	require.Equal(t, validation.MsgTermsRequired, outcome.Message)
	require.Equal(t, validation.MsgTermsRequired, s.FieldError(validation.FieldTerms))
	require.Equal(t, []string{"  " + validation.MsgTermsRequired, validation.MsgTermsRequired}, driver.infos)
	require.Equal(t, "Ada Lovelace", s.Snapshot().Name)
}

func TestSessionPropagatesPromptErrors(t *testing.T) {
	driver := &stubDriver{inputs: []string{"Ada Lovelace"}}
	s := NewSession(WithPromptDriver(driver))

	_, err := s.Run(context.Background())
	require.Error(t, err)
}

func TestSurveyDriverHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	driver := NewSurveyDriver(nil)
	_, err := driver.Input(ctx, InputConfig{Message: "Full name:"})
	require.ErrorIs(t, err, context.Canceled)
	_, err = driver.Confirm(ctx, ConfirmConfig{Message: "ok?"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestValidatorOptsWrapsStringValidator(t *testing.T) {
	require.Nil(t, validatorOpts(nil))
	require.Len(t, validatorOpts(func(string) error { return nil }), 1)
}
