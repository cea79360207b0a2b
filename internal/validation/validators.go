package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"
)

// Messages produced by the field validators.
const (
	MsgNameTooShort      = "Name must be at least 2 characters."
	MsgEmailInvalid      = "Enter a valid email address."
	MsgPasswordTooShort  = "Password must be at least 6 characters."
	MsgPasswordUppercase = "Include at least one uppercase letter."
	MsgPasswordDigit     = "Include at least one number."
	MsgConfirmMismatch   = "Passwords do not match."
	MsgTermsRequired     = "You must accept the terms."
)

const (
	minNameLength     = 2
	minPasswordLength = 6
)

// emailChar matches one character that is neither "@" nor browser whitespace:
// ASCII space and controls, Unicode Zs, line and paragraph separators, and the
// byte order mark.
const emailChar = `[^\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}@]`

var (
	emailPattern     = regexp.MustCompile(`(?i)^` + emailChar + `+@` + emailChar + `+\.` + emailChar + `{2,}$`)
	uppercasePattern = regexp.MustCompile(`[A-Z]`)
	digitPattern     = regexp.MustCompile(`[0-9]`)
)

// isPageSpace reports whether r is whitespace as the browser trims and matches it.
// Unlike unicode.IsSpace it excludes U+0085 and includes U+FEFF.
func isPageSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func trimPageSpace(value string) string {
	return strings.TrimFunc(value, isPageSpace)
}

// textLength counts UTF-16 code units, so characters outside the BMP count twice.
func textLength(value string) int {
	n := 0
	for _, r := range value {
		n += utf16.RuneLen(r)
	}
	return n
}

// ValidateName requires at least two characters once surrounding whitespace is removed.
func ValidateName(value string) string {
	if textLength(trimPageSpace(value)) < minNameLength {
		return MsgNameTooShort
	}
	return ""
}

// ValidateEmail checks the trimmed value against a local@domain.tld shape with
// a top-level domain of at least two characters.
func ValidateEmail(value string) string {
	if !emailPattern.MatchString(trimPageSpace(value)) {
		return MsgEmailInvalid
	}
	return ""
}

// ValidatePassword reports the first failing rule out of length, uppercase and digit.
func ValidatePassword(value string) string {
	switch {
	case textLength(value) < minPasswordLength:
		return MsgPasswordTooShort
	case !uppercasePattern.MatchString(value):
		return MsgPasswordUppercase
	case !digitPattern.MatchString(value):
		return MsgPasswordDigit
	}
	return ""
}

// ValidateConfirm requires the confirmation to equal the password exactly.
func ValidateConfirm(password, confirm string) string {
	if password != confirm {
		return MsgConfirmMismatch
	}
	return ""
}

// ValidateTerms requires the terms checkbox to be ticked.
func ValidateTerms(accepted bool) string {
	if !accepted {
		return MsgTermsRequired
	}
	return ""
}

// Validate runs the validator that owns field against the snapshot.
func Validate(field FieldID, snap Snapshot) (string, error) {
	switch field {
	case FieldName:
		return ValidateName(snap.Name), nil
	case FieldEmail:
		return ValidateEmail(snap.Email), nil
	case FieldPassword:
		return ValidatePassword(snap.Password), nil
	case FieldConfirm:
		return ValidateConfirm(snap.Password, snap.Confirm), nil
	case FieldTerms:
		return ValidateTerms(snap.TermsAccepted), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}
}
