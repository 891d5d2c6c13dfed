package sms

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf16"
)

const (
	// MaxBodyLength is the longest message body Twilio accepts, in UTF-16 code units.
	MaxBodyLength = 1600
	// MaxPhoneNumberLength bounds the from/to numbers, leading '+' included.
	MaxPhoneNumberLength = 16
)

var phoneNumberPattern = regexp.MustCompile(`^\+?[0-9]+$`)

var (
	// ErrMissingArgument is the kind of error returned when a required argument is empty.
	ErrMissingArgument = errors.New("missing argument")
	// ErrInvalidArgument is the kind of error returned when an argument breaks a format or length rule.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ArgumentError names the field that failed validation and why.
type ArgumentError struct {
	Field  string
	Reason string
	Kind   error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Reason)
}

// Unwrap lets callers match on ErrMissingArgument or ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return e.Kind
}

func missing(field string) error {
	return &ArgumentError{Field: field, Reason: "is required", Kind: ErrMissingArgument}
}

func invalid(field, reason string) error {
	return &ArgumentError{Field: field, Reason: reason, Kind: ErrInvalidArgument}
}

// Validate checks the request fields in order and returns the first violation.
//
// An empty string counts as absent. A whitespace-only string is present but blank.
func (r Request) Validate() error {
	if err := requireText("accountSid", r.AccountSID); err != nil {
		return err
	}
	if err := requireText("authToken", r.AuthToken); err != nil {
		return err
	}
	if err := ValidatePhoneNumber("from", r.From); err != nil {
		return err
	}
	if err := ValidatePhoneNumber("to", r.To); err != nil {
		return err
	}
	if err := requireText("body", r.Body); err != nil {
		return err
	}
	if n := textLength(r.Body); n > MaxBodyLength {
		return invalid("body", fmt.Sprintf("exceeds the limit of %d characters (got %d)", MaxBodyLength, n))
	}
	return nil
}

func requireText(field, v string) error {
	if v == "" {
		return missing(field)
	}
	if strings.TrimSpace(v) == "" {
		return invalid(field, "cannot be blank")
	}
	return nil
}

// ValidatePhoneNumber applies the from/to number rules to v and reports
// violations against field.
func ValidatePhoneNumber(field, v string) error {
	if err := requireText(field, v); err != nil {
		return err
	}
	if textLength(v) > MaxPhoneNumberLength {
		return invalid(field, fmt.Sprintf("is too long, max length is %d", MaxPhoneNumberLength))
	}
	if !phoneNumberPattern.MatchString(v) {
		return invalid(field, "only digits and a leading '+' are allowed (E.164)")
	}
	return nil
}

// textLength counts UTF-16 code units, so characters outside the BMP count twice.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}
