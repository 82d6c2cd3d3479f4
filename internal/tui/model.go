package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinadigital/webquest/internal/logger"
	"github.com/tinadigital/webquest/internal/questionnaire"
)

// User-facing notices
const (
	MsgValidation = "Por favor complete todos los campos requeridos antes de enviar."
	MsgSuccess    = "¡Gracias! Nos pondremos en contacto contigo pronto."
	MsgFailure    = "Hubo un error al enviar el formulario. Por favor intente nuevamente."
)

type notice struct {
	text  string
	isErr bool
}

// submitResultMsg carries the outcome of an asynchronous submission
type submitResultMsg struct {
	messageID string
	err       error
}

// Model is the bubbletea model of the questionnaire. It owns one Controller,
// so every Model is an independent session.
type Model struct {
	ctrl      *questionnaire.Controller
	submitter questionnaire.Submitter
	timeout   time.Duration
	log       *logger.Logger
	styles    Styles

	input  textinput.Model
	area   textarea.Model
	cursor int // option cursor on select and multiselect steps

	notice   *notice
	width    int
	quitting bool
}

// New creates a questionnaire model that delivers answers through submitter.
func New(questions []questionnaire.Question, submitter questionnaire.Submitter, timeout time.Duration, log *logger.Logger) Model {
	if log == nil {
		log = logger.Nop()
	}

	// answers are free length
	input := textinput.New()
	input.CharLimit = 0
	input.Width = 60

	area := textarea.New()
	area.SetWidth(60)
	area.SetHeight(4)
	area.ShowLineNumbers = false
	area.CharLimit = 0
	// enter submits the step, ctrl+j inserts a line break
	area.KeyMap.InsertNewline.SetKeys("ctrl+j")

	m := Model{
		ctrl:      questionnaire.NewController(questions, nil),
		submitter: submitter,
		timeout:   timeout,
		log:       log.WithComponent("tui"),
		styles:    DefaultStyles(),
		input:     input,
		area:      area,
	}
	m.loadStep()
	return m
}

// Controller exposes the session controller
func (m Model) Controller() *questionnaire.Controller { return m.ctrl }

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// loadStep copies the stored answer of the current question into its widget.
func (m *Model) loadStep() {
	q := m.ctrl.Current()
	a, _ := m.ctrl.Answer(q.ID)

	m.input.Blur()
	m.area.Blur()
	m.cursor = 0

	switch q.Kind {
	case questionnaire.KindText:
		m.input.Placeholder = q.Placeholder
		m.input.SetValue(a.String())
		m.input.CursorEnd()
		m.input.Focus()
	case questionnaire.KindTextArea:
		m.area.Placeholder = q.Placeholder
		m.area.SetValue(a.String())
		m.area.Focus()
	case questionnaire.KindSelect:
		for i, o := range q.Options {
			if o.Value == a.String() {
				m.cursor = i
			}
		}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := min(60, msg.Width-10); w > 10 {
			m.input.Width = w
			m.area.SetWidth(w)
		}
		return m, nil

	case submitResultMsg:
		return m.finishSubmit(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.notice != nil {
			m.notice = nil
			return m, nil
		}
		if m.ctrl.Submitting() {
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m.updateWidget(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := m.ctrl.Current()

	switch msg.Type {
	case tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyCtrlB, tea.KeyShiftTab:
		m.ctrl.Retreat()
		m.loadStep()
		return m, nil
	}

	switch q.Kind {
	case questionnaire.KindSelect, questionnaire.KindMultiSelect:
		return m.handleOptionKey(q, msg)
	}
	return m.updateWidget(msg)
}

func (m Model) handleOptionKey(q questionnaire.Question, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case " ", "x":
		m.choose(q)
		return m, nil
	default:
		return m, nil
	}

	// a single select follows the cursor, like a drop-down
	if q.Kind == questionnaire.KindSelect {
		m.choose(q)
	}
	return m, nil
}

// choose applies the option under the cursor: sets it on a select, toggles it on a multiselect.
func (m *Model) choose(q questionnaire.Question) {
	if len(q.Options) == 0 {
		return
	}
	value := q.Options[m.cursor].Value
	if q.Multi() {
		a, _ := m.ctrl.Answer(q.ID)
		m.setAnswer(q.ID, a.Toggle(value))
		return
	}
	m.setAnswer(q.ID, questionnaire.Text(value))
}

func (m *Model) setAnswer(id string, a questionnaire.Answer) {
	if err := m.ctrl.SetAnswer(id, a); err != nil {
		m.log.Error().Err(err).Str("question", id).Msg("set answer")
	}
}

// updateWidget forwards msg to the text widget of the current step and stores its value.
func (m Model) updateWidget(msg tea.Msg) (tea.Model, tea.Cmd) {
	q := m.ctrl.Current()
	var cmd tea.Cmd

	switch q.Kind {
	case questionnaire.KindText:
		m.input, cmd = m.input.Update(msg)
		m.setAnswer(q.ID, questionnaire.Text(m.input.Value()))
	case questionnaire.KindTextArea:
		m.area, cmd = m.area.Update(msg)
		m.setAnswer(q.ID, questionnaire.Text(m.area.Value()))
	}
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	outcome, sub, err := m.ctrl.BeginSubmit()
	if err != nil {
		var verr *questionnaire.ValidationError
		if errors.As(err, &verr) {
			m.log.Debug().Strs("missing", verr.Missing).Msg("submission blocked")
			m.notice = &notice{text: MsgValidation, isErr: true}
		}
		return m, nil
	}
	if outcome == questionnaire.SubmitAdvanced {
		m.loadStep()
		return m, nil
	}

	m.input.Blur()
	m.area.Blur()
	return m, m.send(*sub)
}

// send delivers sub off the event loop
func (m Model) send(sub questionnaire.Submission) tea.Cmd {
	submitter, timeout := m.submitter, m.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		id, err := submitter.Submit(ctx, sub)
		return submitResultMsg{messageID: id, err: err}
	}
}

func (m Model) finishSubmit(msg submitResultMsg) (tea.Model, tea.Cmd) {
	if err := m.ctrl.FinishSubmit(msg.err); err != nil {
		m.log.Warn().Err(err).Msg("unexpected submission result")
		return m, nil
	}

	if msg.err != nil {
		m.log.Error().Err(msg.err).Msg("submission failed")
		m.notice = &notice{text: MsgFailure, isErr: true}
	} else {
		m.log.Info().Str("message_id", msg.messageID).Msg("submission delivered")
		m.notice = &notice{text: MsgSuccess}
	}
	m.loadStep()
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.styles
	q := m.ctrl.Current()
	total := len(m.ctrl.Questions())

	var b strings.Builder
	b.WriteString(s.Brand.Render("TINA DIGITAL") + "\n\n")
	b.WriteString(s.Heading.Render("Cuestionario de Desarrollo Web") + "\n")
	b.WriteString(s.Intro.Render("¡Bienvenido/a! Este cuestionario nos ayudará a entender mejor tus necesidades para crear la página web perfecta para tu negocio.") + "\n\n")

	card := s.Counter.Render(fmt.Sprintf("%d/%d", m.ctrl.Step()+1, total)) + "\n" +
		s.Prompt.Render(q.Prompt) + "\n\n" +
		m.renderInput(q)
	b.WriteString(s.Card.Render(card) + "\n\n")

	b.WriteString(m.renderButtons() + "\n\n")

	if m.notice != nil {
		style := s.Notice
		if m.notice.isErr {
			style = s.Error
		}
		b.WriteString(style.Render(m.notice.text+"\n\n"+s.Help.Render("pulsa cualquier tecla para continuar")) + "\n")
		return b.String()
	}

	b.WriteString(s.Help.Render(m.helpLine(q)) + "\n")
	return b.String()
}

func (m Model) renderInput(q questionnaire.Question) string {
	s := m.styles
	switch q.Kind {
	case questionnaire.KindText:
		return m.input.View()
	case questionnaire.KindTextArea:
		return m.area.View()
	}

	a, _ := m.ctrl.Answer(q.ID)
	lines := make([]string, 0, len(q.Options)+1)
	if q.Kind == questionnaire.KindSelect && a.Empty() {
		lines = append(lines, s.Help.Render("Selecciona una opción"))
	}
	for i, o := range q.Options {
		pointer := "  "
		if i == m.cursor {
			pointer = s.Cursor.Render("> ")
		}

		var mark string
		selected := false
		if q.Multi() {
			selected = a.Contains(o.Value)
			mark = "[ ] "
			if selected {
				mark = "[x] "
			}
		} else {
			selected = a.String() == o.Value
			mark = "( ) "
			if selected {
				mark = "(•) "
			}
		}

		style := s.Option
		if selected {
			style = s.Selected
		}
		lines = append(lines, pointer+style.Render(mark+o.Label))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderButtons() string {
	s := m.styles
	submitting := m.ctrl.Submitting()

	prev := s.Button.Render("Anterior")
	if m.ctrl.Step() == 0 || submitting {
		prev = s.Disabled.Render("Anterior")
	}

	label := "Siguiente"
	switch {
	case submitting:
		label = "Enviando..."
	case m.ctrl.IsLast():
		label = "Enviar"
	}
	next := s.Button.Render(label)
	if submitting {
		next = s.Disabled.Render(label)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, prev, "  ", next)
}

func (m Model) helpLine(q questionnaire.Question) string {
	parts := []string{"enter: siguiente", "ctrl+b: anterior", "esc: salir"}
	switch q.Kind {
	case questionnaire.KindSelect:
		parts = append([]string{"↑/↓: elegir"}, parts...)
	case questionnaire.KindMultiSelect:
		parts = append([]string{"↑/↓: mover", "espacio: marcar"}, parts...)
	case questionnaire.KindTextArea:
		parts = append([]string{"ctrl+j: nueva línea"}, parts...)
	}
	if m.ctrl.IsLast() {
		parts[len(parts)-3] = "enter: enviar"
	}
	return strings.Join(parts, " • ")
}
