// Package contact validates the contact form and simulates its
// submission. There is no real mail backend; submission is a fixed
// delay followed by a success status.
package contact

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Form is the user-entered contact form state, already trimmed or not —
// Validate trims for you.
type Form struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Field names used as FieldErrors keys.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// FieldErrors maps a field name to its error message. An empty map means
// the form is valid.
type FieldErrors map[string]string

// Valid reports whether no field carries an error.
func (e FieldErrors) Valid() bool { return len(e) == 0 }

// local-part@domain, no whitespace, at least one dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether v looks like an email address.
func ValidEmail(v string) bool {
	return emailPattern.MatchString(v)
}

// Validate checks the three required fields independently and returns
// one error message per failing field.
func Validate(f Form) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(f.Name) == "" {
		errs[FieldName] = "Name is required."
	}
	email := strings.TrimSpace(f.Email)
	switch {
	case email == "":
		errs[FieldEmail] = "Email is required."
	case !ValidEmail(email):
		errs[FieldEmail] = "Enter a valid email."
	}
	if strings.TrimSpace(f.Message) == "" {
		errs[FieldMessage] = "Message is required."
	}
	return errs
}

// DefaultDelay is the simulated submission round trip.
const DefaultDelay = 900 * time.Millisecond

// Submitter performs the simulated submission. Delay is injectable so
// tests do not sleep; zero means DefaultDelay.
type Submitter struct {
	Delay time.Duration
}

// Submit validates and then simulates sending. It returns field errors
// when validation fails, nil on success, and the context error if the
// caller gives up while the fake send is in flight.
func (s Submitter) Submit(ctx context.Context, f Form) error {
	if errs := Validate(f); !errs.Valid() {
		return fmt.Errorf("form has %d invalid fields", len(errs))
	}

	delay := s.Delay
	if delay == 0 {
		delay = DefaultDelay
	}
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
