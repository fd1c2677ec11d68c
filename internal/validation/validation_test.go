package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"one char", "a", false},
		{"two chars", "ab", true},
		{"fifty chars", strings.Repeat("a", 50), true},
		{"fifty-one chars", strings.Repeat("a", 51), false},
		{"thirty accented chars", strings.Repeat("é", 30), true},
		{"fifty multibyte chars", strings.Repeat("é", 50), true},
		{"fifty-one multibyte chars", strings.Repeat("é", 51), false},
		{"one multibyte char", "é", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Name(tt.value)
			if tt.valid {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestMessage_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"empty", "", false},
		{"nine chars", strings.Repeat("a", 9), false},
		{"ten chars", strings.Repeat("a", 10), true},
		{"thousand chars", strings.Repeat("a", 1000), true},
		{"thousand-one chars", strings.Repeat("a", 1001), false},
		{"six hundred multibyte chars", strings.Repeat("ü", 600), true},
		{"thousand multibyte chars", strings.Repeat("ü", 1000), true},
		{"thousand-one multibyte chars", strings.Repeat("ü", 1001), false},
		{"nine multibyte chars", strings.Repeat("ü", 9), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Message(tt.value)
			if tt.valid {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestEmail_Patterns(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"minimal valid", "a@b.c", true},
		{"no dot after at", "a@b", false},
		{"whitespace in local part", "a b@c.d", false},
		{"missing local part", "@b.c", false},
		{"two ats", "a@@b.c", false},
		{"just over the length cap", strings.Repeat("a", 177) + "@b.c", false},
		{"at the length cap", strings.Repeat("a", 176) + "@b.c", true},
		{"multibyte at the length cap", strings.Repeat("é", 176) + "@b.c", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Email(tt.value)
			if tt.valid {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestTrimming_Idempotent(t *testing.T) {
	// Validating a raw value must give the same verdict as validating the
	// pre-trimmed value.
	raw := "  Jane Doe  "
	assert.Equal(t, Name(strings.TrimSpace(raw)), Name(raw))

	rawEmail := "  jane@example.com  "
	assert.Equal(t, Email(strings.TrimSpace(rawEmail)), Email(rawEmail))

	rawMsg := "  Hello, I would like to discuss a project.  "
	assert.Equal(t, Message(strings.TrimSpace(rawMsg)), Message(rawMsg))
}

func TestAll_CollectsEveryViolationInOrder(t *testing.T) {
	errs := All("", "x", "hi")

	assert.Equal(t, []string{
		"Name is required",
		"Please provide a valid email address",
		"Message must be at least 10 characters",
	}, errs)
}

func TestAll_ValidSubmission(t *testing.T) {
	errs := All("Jane Doe", "jane@example.com", "Hello, I would like to discuss a project.")
	assert.Empty(t, errs)
}

func TestField_DispatchesByName(t *testing.T) {
	assert.Equal(t, "Name is required", Field("name", ""))
	assert.Equal(t, "Email is required", Field("email", ""))
	assert.Equal(t, "Message is required", Field("message", ""))
	assert.Empty(t, Field("website", "anything"))
}
