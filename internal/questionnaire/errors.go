package questionnaire

import (
	"errors"
	"strings"
)

var (
	ErrUnknownQuestion    = errors.New("unknown question")
	ErrAnswerKind         = errors.New("answer shape does not match question kind")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrNotSubmitting      = errors.New("no submission in flight")
)

// ValidationError is returned when required fields are empty on submit
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}
