// Package validation holds the contact-form field rules. It is the single
// source of truth shared by the HTTP handler and the form client so that both
// surfaces reject exactly the same inputs with the same messages.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	NameMin    = 2
	NameMax    = 50
	EmailMax   = 180
	MessageMin = 10
	MessageMax = 1000
)

// One "@" with at least one "." after it and no whitespace anywhere.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Name validates a name field. Returns an empty string when valid.
// Lengths are counted in characters, not bytes, so multibyte input is not
// over-rejected.
func Name(v string) string {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return "Name is required"
	case utf8.RuneCountInString(v) < NameMin:
		return "Name must be at least 2 characters"
	case utf8.RuneCountInString(v) > NameMax:
		return "Name must be less than 50 characters"
	}
	return ""
}

// Email validates an email field. Returns an empty string when valid.
func Email(v string) string {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return "Email is required"
	case !emailRegex.MatchString(v):
		return "Please provide a valid email address"
	case utf8.RuneCountInString(v) > EmailMax:
		return "Email address is too long"
	}
	return ""
}

// Message validates a message field. Returns an empty string when valid.
func Message(v string) string {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return "Message is required"
	case utf8.RuneCountInString(v) < MessageMin:
		return "Message must be at least 10 characters"
	case utf8.RuneCountInString(v) > MessageMax:
		return "Message must be less than 1000 characters"
	}
	return ""
}

// Field dispatches by field name; used by the form client for blur
// validation. Unknown fields are considered valid.
func Field(field, value string) string {
	switch field {
	case "name":
		return Name(value)
	case "email":
		return Email(value)
	case "message":
		return Message(value)
	}
	return ""
}

// All collects every violated rule, in field order, as human-readable
// messages. An empty slice means the submission is valid.
func All(name, email, message string) []string {
	var errs []string
	if msg := Name(name); msg != "" {
		errs = append(errs, msg)
	}
	if msg := Email(email); msg != "" {
		errs = append(errs, msg)
	}
	if msg := Message(message); msg != "" {
		errs = append(errs, msg)
	}
	return errs
}
