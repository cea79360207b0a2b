package validation

import (
	"github.com/alexisbeaulieu97/pagekit/internal/logger"
)

// DefaultSuccessMessage is shown when a submission passes every check.
const DefaultSuccessMessage = "Success! Your account has been created."

// Binding is the contract between the orchestrator and whatever owns the
// actual input widgets. The binding supplies values on demand and receives
// the messages to display.
type Binding interface {
	Snapshot() Snapshot
	ShowFieldError(field FieldID, message string)
	ShowStatus(message string)
	Reset()
}

// State describes where a submission attempt currently is.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateRejected   State = "rejected"
	StateAccepted   State = "accepted"
)

// OutcomeStatus is the terminal state of one submission attempt.
type OutcomeStatus string

const (
	OutcomeRejected OutcomeStatus = OutcomeStatus(StateRejected)
	OutcomeAccepted OutcomeStatus = OutcomeStatus(StateAccepted)
)

// Outcome aggregates the field results of one submission attempt.
type Outcome struct {
	Status      OutcomeStatus      `json:"status"`
	Message     string             `json:"message"`
	Errors      map[FieldID]string `json:"errors"`
	ClearFields bool               `json:"clear_fields"`
}

// Accepted reports whether the submission passed.
func (o Outcome) Accepted() bool {
	return o.Status == OutcomeAccepted
}

// Option customises an Orchestrator.
type Option func(*Orchestrator)

// WithLogger attaches a logger used for debug tracing of validation passes.
func WithLogger(log *logger.Logger) Option {
	return func(o *Orchestrator) {
		o.log = log
	}
}

// WithSuccessMessage overrides the status shown for an accepted submission.
// Empty messages are ignored.
func WithSuccessMessage(message string) Option {
	return func(o *Orchestrator) {
		if message != "" {
			o.successMessage = message
		}
	}
}

// Orchestrator wires the field validators to live-input and submit events.
// It is driven from a single event loop and is not safe for concurrent use.
type Orchestrator struct {
	binding        Binding
	log            *logger.Logger
	successMessage string
	state          State
}

// NewOrchestrator creates an orchestrator reporting to binding.
func NewOrchestrator(binding Binding, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		binding:        binding,
		successMessage: DefaultSuccessMessage,
		state:          StateIdle,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// State reports the submission state. It is StateIdle whenever no call is in progress.
func (o *Orchestrator) State() State {
	return o.state
}

// ValidateField re-validates one field after a live input event. Only that
// field's message changes; the status line is cleared but not recomputed.
func (o *Orchestrator) ValidateField(field FieldID) (string, error) {
	message, err := Validate(field, o.binding.Snapshot())
	if err != nil {
		return "", err
	}

	o.binding.ShowFieldError(field, message)
	o.binding.ShowStatus("")

	o.log.WithFields(map[string]any{
		"field": string(field),
		"valid": message == "",
	}).Debug("field validated")

	return message, nil
}

// ValidateAndSubmit validates every field of snap, refreshes all error
// displays and decides the submission outcome. The first failing field in
// Precedence order supplies the status message.
func (o *Orchestrator) ValidateAndSubmit(snap Snapshot) Outcome {
	o.transition(StateValidating)
	defer o.transition(StateIdle)

	outcome := Outcome{Errors: make(map[FieldID]string, len(Precedence))}
	for _, field := range Precedence {
		// Validate cannot fail for ids taken from Precedence.
		message, _ := Validate(field, snap)
		outcome.Errors[field] = message
		o.binding.ShowFieldError(field, message)
	}

	for _, field := range Precedence {
		if message := outcome.Errors[field]; message != "" {
			o.transition(StateRejected)
			outcome.Status = OutcomeRejected
			outcome.Message = message
			o.binding.ShowStatus(message)

			o.log.WithFields(map[string]any{
				"outcome": string(outcome.Status),
				"field":   string(field),
			}).Debug("submission rejected")
			return outcome
		}
	}

	o.transition(StateAccepted)
	outcome.Status = OutcomeAccepted
	outcome.Message = o.successMessage
	outcome.ClearFields = true
	o.binding.ShowStatus(o.successMessage)
	o.binding.Reset()

	o.log.With("outcome", string(outcome.Status)).Debug("submission accepted")
	return outcome
}

func (o *Orchestrator) transition(next State) {
	o.log.WithFields(map[string]any{
		"from": string(o.state),
		"to":   string(next),
	}).Debug("submission state")
	o.state = next
}
