package contactform

import (
	"context"
	"errors"

	"github.com/portfoliosite/backend/internal/validation"
)

// Status is the submission lifecycle of the form.
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSent
	StatusError
)

// Steps of the wizard: contact details, message, review.
const (
	StepDetails = iota + 1
	StepMessage
	StepReview
	stepCount = 3
)

var formFields = []string{"name", "email", "message"}

// Form is the contact wizard's state machine: three steps, per-field touched
// tracking with validation on blur, a full re-validation pass before any
// network call, and a retry path after transport failures. It is not safe for
// concurrent use.
type Form struct {
	client *Client

	step    int
	values  map[string]string
	errors  FieldErrors
	touched map[string]bool

	status    Status
	sendError string
	submitted bool
}

func NewForm(client *Client) *Form {
	f := &Form{client: client}
	f.Reset()
	return f
}

// Reset restores the pristine state; closing the modal does this.
func (f *Form) Reset() {
	f.step = StepDetails
	f.values = map[string]string{"name": "", "email": "", "message": ""}
	f.errors = FieldErrors{}
	f.touched = map[string]bool{}
	f.status = StatusIdle
	f.sendError = ""
	f.submitted = false
}

func (f *Form) Step() int      { return f.step }
func (f *Form) Status() Status { return f.status }

// SendError is the banner text shown when a submission attempt failed.
func (f *Form) SendError() string { return f.sendError }

// Submitted reports whether the success panel should be shown.
func (f *Form) Submitted() bool { return f.submitted }

func (f *Form) Value(field string) string { return f.values[field] }

// FieldError returns the error text for a field, but only once the field has
// been touched; untouched fields never show errors.
func (f *Form) FieldError(field string) string {
	if !f.touched[field] {
		return ""
	}
	return f.errors[field]
}

// Change updates a field and clears its error, so the user sees feedback
// disappear while correcting the value.
func (f *Form) Change(field, value string) {
	if _, ok := f.values[field]; !ok {
		return
	}
	f.values[field] = value
	delete(f.errors, field)
}

// Blur marks the field as touched and validates it.
func (f *Form) Blur(field string) {
	if _, ok := f.values[field]; !ok {
		return
	}
	f.touched[field] = true
	if msg := validation.Field(field, f.values[field]); msg != "" {
		f.errors[field] = msg
	} else {
		delete(f.errors, field)
	}
}

// Next advances the wizard. Steps do not gate on validity; the submit pass is
// the hard gate.
func (f *Form) Next() {
	if f.step < stepCount {
		f.step++
	}
}

func (f *Form) Back() {
	if f.step > StepDetails {
		f.step--
	}
}

// validateAll re-runs every rule and marks every field touched, mirroring the
// final pre-submission pass.
func (f *Form) validateAll() bool {
	valid := true
	for _, field := range formFields {
		f.touched[field] = true
		if msg := validation.Field(field, f.values[field]); msg != "" {
			f.errors[field] = msg
			valid = false
		} else {
			delete(f.errors, field)
		}
	}
	return valid
}

// Submit runs the full validation pass and, only if it succeeds, invokes the
// submission routine. Local failures block the network call entirely. Retry
// after a failed attempt is this same method.
func (f *Form) Submit(ctx context.Context) {
	if !f.validateAll() {
		f.status = StatusError
		f.sendError = "Please fix the highlighted fields."
		return
	}

	f.status = StatusSending
	f.sendError = ""

	_, err := f.client.Submit(ctx, f.values["name"], f.values["email"], f.values["message"])
	if err == nil {
		f.status = StatusSent
		f.submitted = true
		f.values = map[string]string{"name": "", "email": "", "message": ""}
		return
	}

	f.status = StatusError

	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		f.sendError = srvErr.Code
		if f.sendError == "" {
			f.sendError = "Server error: failed to send. Please retry in a moment."
		}
		if len(srvErr.Fields) > 0 {
			f.errors = FieldErrors{}
			for field, msg := range srvErr.Fields {
				f.errors[field] = msg
				f.touched[field] = true
			}
		}
		return
	}

	f.sendError = "Network error: " + err.Error()
}
