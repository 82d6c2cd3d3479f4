// Package questionnaire holds the web development questionnaire and the
// step-wise controller that collects and submits its answers.
package questionnaire

import (
	"context"
	"fmt"
	"sync"
)

// Submitter delivers a completed submission, typically to the /api/send-email endpoint.
type Submitter interface {
	Submit(ctx context.Context, sub Submission) (messageID string, err error)
}

// SubmitterFunc adapts a function to the Submitter interface
type SubmitterFunc func(ctx context.Context, sub Submission) (string, error)

// Submit calls f
func (f SubmitterFunc) Submit(ctx context.Context, sub Submission) (string, error) {
	return f(ctx, sub)
}

// Phase is the controller state
type Phase int

const (
	PhaseEditing Phase = iota
	PhaseSubmitting
)

func (p Phase) String() string {
	if p == PhaseSubmitting {
		return "submitting"
	}
	return "editing"
}

// SubmitOutcome tells what a call to Submit did
type SubmitOutcome int

const (
	// SubmitAdvanced means Submit was called before the last step and moved forward
	SubmitAdvanced SubmitOutcome = iota
	// SubmitDelivered means the answers were delivered and the controller was reset
	SubmitDelivered
)

// Controller steps through the questions and owns the answers of one session.
// It is not meant to be shared across sessions.
type Controller struct {
	questions []Question
	index     map[string]Question
	submitter Submitter

	mu         sync.Mutex
	answers    AnswerSet
	step       int
	submitting bool
}

// NewController creates a controller over questions, starting at step 0.
// A nil submitter is allowed for front-ends that only use BeginSubmit/FinishSubmit.
func NewController(questions []Question, submitter Submitter) *Controller {
	if len(questions) == 0 {
		panic("questionnaire: controller needs at least one question")
	}
	c := &Controller{
		questions: questions,
		index:     make(map[string]Question, len(questions)),
		submitter: submitter,
	}
	for _, q := range questions {
		c.index[q.ID] = q
	}
	c.reset()
	return c
}

// reset must be called with mu held or before the controller is shared
func (c *Controller) reset() {
	c.answers = make(AnswerSet, len(c.questions))
	c.step = 0
	c.visit()
}

// visit records an empty entry for the current question if none exists yet.
func (c *Controller) visit() {
	q := c.questions[c.step]
	if _, ok := c.answers[q.ID]; ok {
		return
	}
	if q.Multi() {
		c.answers[q.ID] = List()
	} else {
		c.answers[q.ID] = Text("")
	}
}

// Questions returns the question list
func (c *Controller) Questions() []Question { return c.questions }

// Step returns the current step cursor
func (c *Controller) Step() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Current returns the question at the current step
func (c *Controller) Current() Question {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.questions[c.step]
}

// IsLast reports whether the cursor is on the last question
func (c *Controller) IsLast() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step == len(c.questions)-1
}

// Submitting reports whether a submission is in flight
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Phase returns the current controller state
func (c *Controller) Phase() Phase {
	if c.Submitting() {
		return PhaseSubmitting
	}
	return PhaseEditing
}

// Answer returns the answer for id and whether the set holds an entry for it
func (c *Controller) Answer(id string) (Answer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.answers[id]
	return a, ok
}

// Answers returns a copy of the current answer set
func (c *Controller) Answers() AnswerSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(AnswerSet, len(c.answers))
	for k, v := range c.answers {
		out[k] = v
	}
	return out
}

// SetAnswer replaces the answer for a question. Only the shape is checked:
// multiselect questions take lists, every other kind a single string.
func (c *Controller) SetAnswer(id string, a Answer) error {
	q, ok := c.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
	}
	if q.Multi() != a.Multi() {
		return fmt.Errorf("%w: %s is %s", ErrAnswerKind, id, q.Kind)
	}
	if a.Multi() && a.items == nil {
		a = List()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.answers[id] = a
	return nil
}

// Advance moves to the next question. It is a no-op on the last step or while submitting.
func (c *Controller) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advance()
}

func (c *Controller) advance() {
	if c.submitting || c.step >= len(c.questions)-1 {
		return
	}
	c.step++
	c.visit()
}

// Retreat moves to the previous question. It is a no-op on step 0 or while submitting.
func (c *Controller) Retreat() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting || c.step == 0 {
		return
	}
	c.step--
}

// BeginSubmit runs the submit guards. Before the last step it advances and
// returns SubmitAdvanced with a nil submission. On the last step it checks the
// required fields and, if they are all set, enters the submitting phase and
// returns the submission to deliver. The caller must then call FinishSubmit.
func (c *Controller) BeginSubmit() (SubmitOutcome, *Submission, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitting {
		return 0, nil, ErrSubmissionInFlight
	}
	if c.step != len(c.questions)-1 {
		c.advance()
		return SubmitAdvanced, nil, nil
	}
	if missing := c.answers.Missing(RequiredFields); len(missing) > 0 {
		return 0, nil, &ValidationError{Missing: missing}
	}

	c.submitting = true
	sub := c.answers.Submission()
	return SubmitDelivered, &sub, nil
}

// FinishSubmit completes an in-flight submission. On success the answers are
// discarded and the cursor returns to step 0; on failure answers and step are kept.
func (c *Controller) FinishSubmit(deliveryErr error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.submitting {
		return ErrNotSubmitting
	}
	c.submitting = false
	if deliveryErr == nil {
		c.reset()
	}
	return nil
}

// Submit advances when called before the last step. On the last step it
// validates the required fields and delivers the answers through the
// controller's Submitter, returning the delivery message ID.
func (c *Controller) Submit(ctx context.Context) (SubmitOutcome, string, error) {
	outcome, sub, err := c.BeginSubmit()
	if err != nil || outcome == SubmitAdvanced {
		return outcome, "", err
	}
	if c.submitter == nil {
		_ = c.FinishSubmit(errNoSubmitter)
		return 0, "", errNoSubmitter
	}

	id, sendErr := c.submitter.Submit(ctx, *sub)
	_ = c.FinishSubmit(sendErr)
	if sendErr != nil {
		return 0, "", fmt.Errorf("submit answers: %w", sendErr)
	}
	return SubmitDelivered, id, nil
}

var errNoSubmitter = fmt.Errorf("questionnaire: controller has no submitter")
