package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/alexisbeaulieu97/pagekit/internal/validation"
)

// signupForm owns the signup widgets and is the validation.Binding the
// orchestrator reports to. It is shared by pointer across model copies.
type signupForm struct {
	name     textinput.Model
	email    textinput.Model
	password textinput.Model
	confirm  textinput.Model
	terms    bool

	errors map[validation.FieldID]string
	status string
}

var _ validation.Binding = (*signupForm)(nil)

func newSignupForm() *signupForm {
	f := &signupForm{
		name:     newInput("Ada Lovelace", 64),
		email:    newInput("ada@example.com", 254),
		password: newInput("at least 6 characters", 128),
		confirm:  newInput("repeat password", 128),
		errors:   make(map[validation.FieldID]string, len(validation.Precedence)),
	}
	f.password.EchoMode = textinput.EchoPassword
	f.password.EchoCharacter = '•'
	f.confirm.EchoMode = textinput.EchoPassword
	f.confirm.EchoCharacter = '•'
	return f
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	return ti
}

// input returns the text widget for field, or nil for the terms checkbox.
func (f *signupForm) input(field validation.FieldID) *textinput.Model {
	switch field {
	case validation.FieldName:
		return &f.name
	case validation.FieldEmail:
		return &f.email
	case validation.FieldPassword:
		return &f.password
	case validation.FieldConfirm:
		return &f.confirm
	default:
		return nil
	}
}

func (f *signupForm) Snapshot() validation.Snapshot {
	return validation.Snapshot{
		Name:          f.name.Value(),
		Email:         f.email.Value(),
		Password:      f.password.Value(),
		Confirm:       f.confirm.Value(),
		TermsAccepted: f.terms,
	}
}

func (f *signupForm) ShowFieldError(field validation.FieldID, message string) {
	f.errors[field] = message
}

func (f *signupForm) ShowStatus(message string) {
	f.status = message
}

func (f *signupForm) Reset() {
	f.name.Reset()
	f.email.Reset()
	f.password.Reset()
	f.confirm.Reset()
	f.terms = false
}

func (f *signupForm) fieldError(field validation.FieldID) string {
	return f.errors[field]
}
