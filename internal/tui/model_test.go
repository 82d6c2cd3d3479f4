package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinadigital/webquest/internal/questionnaire"
)

type fakeSubmitter struct {
	calls []questionnaire.Submission
	err   error
}

func (f *fakeSubmitter) Submit(_ context.Context, sub questionnaire.Submission) (string, error) {
	f.calls = append(f.calls, sub)
	if f.err != nil {
		return "", f.err
	}
	return "re_1", nil
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(t *testing.T, m Model, kt tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: kt})
}

// fillToLast answers the required questions and walks to the last step.
func fillToLast(t *testing.T, m Model) Model {
	t.Helper()
	m = typeText(t, m, "Panadería X")
	m, _ = press(t, m, tea.KeyEnter)
	m = typeText(t, m, "Alimentación")
	m, _ = press(t, m, tea.KeyEnter)

	// websitePurpose: "vender" is the second option
	m, _ = press(t, m, tea.KeyDown)
	m, _ = press(t, m, tea.KeyDown)
	m, _ = press(t, m, tea.KeyUp)
	m, _ = press(t, m, tea.KeyEnter)

	m, _ = press(t, m, tea.KeyEnter) // targetAudience

	// desiredFeatures: ecommerce (1) then seo (6)
	m, _ = press(t, m, tea.KeyDown)
	m, _ = press(t, m, tea.KeySpace)
	for i := 0; i < 5; i++ {
		m, _ = press(t, m, tea.KeyDown)
	}
	m, _ = press(t, m, tea.KeySpace)
	m, _ = press(t, m, tea.KeyEnter)

	m, _ = press(t, m, tea.KeyEnter) // contentManagement
	m, _ = press(t, m, tea.KeyEnter) // designPreferences
	m, _ = press(t, m, tea.KeyEnter) // competitorWebsites

	// budget: "medium" is the second option
	m, _ = press(t, m, tea.KeyDown)
	m, _ = press(t, m, tea.KeyEnter)

	m, _ = press(t, m, tea.KeyEnter) // deadline
	require.True(t, m.Controller().IsLast())
	return m
}

func TestTypingStoresAnswer(t *testing.T) {
	m := New(questionnaire.Catalog(), &fakeSubmitter{}, time.Second, nil)
	m = typeText(t, m, "Panadería X")

	a, ok := m.Controller().Answer(questionnaire.BusinessName)
	require.True(t, ok)
	assert.Equal(t, "Panadería X", a.String())
	assert.Contains(t, m.View(), "1/11")
}

func TestLongAnswersAreNotTruncated(t *testing.T) {
	long := strings.Repeat("www.competidor.com ", 24) // 456 runes
	m := New(questionnaire.Catalog(), &fakeSubmitter{}, time.Second, nil)
	m = typeText(t, m, long)

	a, _ := m.Controller().Answer(questionnaire.BusinessName)
	assert.Equal(t, long, a.String())

	m = fillToLast(t, New(questionnaire.Catalog(), &fakeSubmitter{}, time.Second, nil))
	m = typeText(t, m, long)
	a, _ = m.Controller().Answer(questionnaire.AdditionalComments)
	assert.Equal(t, long, a.String())
}

func TestEnterAdvancesAndCtrlBRetreats(t *testing.T) {
	m := New(questionnaire.Catalog(), &fakeSubmitter{}, time.Second, nil)
	m = typeText(t, m, "Panadería X")

	m, cmd := press(t, m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.Controller().Step())

	m, _ = press(t, m, tea.KeyCtrlB)
	assert.Equal(t, 0, m.Controller().Step())
	assert.Equal(t, "Panadería X", m.input.Value(), "stored answer is restored into the input")

	m, _ = press(t, m, tea.KeyShiftTab)
	assert.Equal(t, 0, m.Controller().Step())
}

func TestSubmitFlowSuccess(t *testing.T) {
	sub := &fakeSubmitter{}
	m := New(questionnaire.Catalog(), sub, time.Second, nil)
	m = fillToLast(t, m)

	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.Controller().Submitting())
	assert.Contains(t, m.View(), "Enviando...")

	// keys are ignored while the submission is in flight
	m, extra := press(t, m, tea.KeyEnter)
	assert.Nil(t, extra)
	m, _ = press(t, m, tea.KeyCtrlB)
	assert.Equal(t, 10, m.Controller().Step())

	m, _ = update(t, m, cmd())
	require.Len(t, sub.calls, 1)
	got := sub.calls[0]
	assert.Equal(t, "Panadería X", got.BusinessName)
	assert.Equal(t, "Alimentación", got.IndustryType)
	assert.Equal(t, "vender", got.WebsitePurpose)
	assert.Equal(t, "medium", got.Budget)
	assert.Equal(t, []string{"ecommerce", "seo"}, got.DesiredFeatures)

	assert.Equal(t, 0, m.Controller().Step())
	assert.False(t, m.Controller().Submitting())
	assert.Contains(t, m.View(), MsgSuccess)
	assert.Equal(t, "", m.input.Value())

	m, _ = press(t, m, tea.KeyEnter)
	assert.NotContains(t, m.View(), MsgSuccess)
	assert.Equal(t, 0, m.Controller().Step(), "dismissing the notice does not advance")
}

func TestSubmitFlowFailureKeepsAnswers(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("connection refused")}
	m := New(questionnaire.Catalog(), sub, time.Second, nil)
	m = fillToLast(t, m)

	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Contains(t, m.View(), MsgFailure)
	assert.Equal(t, 10, m.Controller().Step())
	a, _ := m.Controller().Answer(questionnaire.BusinessName)
	assert.Equal(t, "Panadería X", a.String())
	assert.False(t, m.Controller().Submitting())
}

func TestSubmitBlockedWithoutBusinessName(t *testing.T) {
	sub := &fakeSubmitter{}
	m := New(questionnaire.Catalog(), sub, time.Second, nil)
	m = fillToLast(t, m)
	require.NoError(t, m.Controller().SetAnswer(questionnaire.BusinessName, questionnaire.Text("")))

	m, cmd := press(t, m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.Empty(t, sub.calls)
	assert.False(t, m.Controller().Submitting())
	assert.Contains(t, m.View(), MsgValidation)
}

func TestTextAreaEnterSubmitsInsteadOfNewline(t *testing.T) {
	m := New(questionnaire.Catalog(), &fakeSubmitter{}, time.Second, nil)
	m = fillToLast(t, m)
	m = typeText(t, m, "Entregas a domicilio")

	a, _ := m.Controller().Answer(questionnaire.AdditionalComments)
	assert.Equal(t, "Entregas a domicilio", a.String())

	_, cmd := press(t, m, tea.KeyEnter)
	assert.NotNil(t, cmd, "enter on the last step starts the submission")
}
