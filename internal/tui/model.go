// Package tui is the terminal rendition of the questionnaire page. It renders a
// FormController snapshot and turns key presses into controller operations.
package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/soaringjerry/ipss-selfcheck/internal/services"
)

// Row indices of the focusable controls, top to bottom.
const (
	rowName = iota
	rowEmail
	rowFirstQuestion
)

var (
	rowQoL     = rowFirstQuestion + len(services.Questions)
	rowConsent = rowQoL + 1
	rowSubmit  = rowConsent + 1
	rowCount   = rowSubmit + 1
)

type (
	// redrawMsg is sent by the controller subscription after any state change.
	redrawMsg struct{}
	// submittedMsg carries the outcome of an asynchronous submit.
	submittedMsg struct {
		result services.Result
		err    error
	}
)

// Model is the Bubble Tea model of the form.
type Model struct {
	ctx    context.Context
	form   *services.FormController
	locale string
	styles Styles

	focus   int
	name    textinput.Model
	email   textinput.Model
	qol     textinput.Model
	gauge   progress.Model
	spinner spinner.Model
	width   int
}

// New builds a model bound to form. ctx is used for submissions.
func New(ctx context.Context, form *services.FormController, locale string) Model {
	styles := DefaultStyles()

	name := textinput.New()
	name.Placeholder = "Your full name"
	name.CharLimit = 120
	name.Prompt = "› "

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Prompt = "› "

	qol := textinput.New()
	qol.Placeholder = "0–6"
	qol.CharLimit = 3
	qol.Prompt = "› "
	qol.Validate = func(s string) error {
		if s == "" || s == "-" {
			return nil
		}
		_, err := strconv.Atoi(s)
		return err
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Focused

	m := Model{
		ctx:     ctx,
		form:    form,
		locale:  locale,
		styles:  styles,
		name:    name,
		email:   email,
		qol:     qol,
		gauge:   progress.New(progress.WithSolidFill(string(colorSky)), progress.WithoutPercentage(), progress.WithWidth(30)),
		spinner: sp,
	}
	m.setFocus(rowName)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case redrawMsg, submittedMsg:
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		m.setFocus((m.focus + 1) % rowCount)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.setFocus((m.focus + rowCount - 1) % rowCount)
		return m, nil
	}

	if q, ok := m.questionAt(m.focus); ok {
		m.answerKey(q, msg)
		return m, nil
	}
	switch m.focus {
	case rowConsent:
		if msg.Type == tea.KeySpace || msg.Type == tea.KeyEnter || msg.String() == "x" {
			m.form.SetConsent(!m.form.Snapshot().Consent)
		}
		return m, nil
	case rowSubmit:
		if msg.Type == tea.KeyEnter && m.form.CanSubmit() {
			return m, m.submitCmd()
		}
		return m, nil
	}
	if msg.Type == tea.KeyEnter {
		m.setFocus((m.focus + 1) % rowCount)
		return m, nil
	}
	return m.updateInput(msg)
}

// answerKey maps digits and left/right onto the 0–5 scale of question q.
func (m Model) answerKey(q services.Question, msg tea.KeyMsg) {
	current, answered := m.form.Snapshot().Answers[q.Key]
	value := -1
	switch msg.Type {
	case tea.KeyRight:
		value = 0
		if answered {
			value = min(current+1, services.MaxSeverity)
		}
	case tea.KeyLeft:
		value = 0
		if answered {
			value = max(current-1, services.MinSeverity)
		}
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			if n, err := strconv.Atoi(string(msg.Runes)); err == nil {
				value = n
			}
		}
	}
	if value >= 0 {
		// out-of-scale digits are ignored
		_ = m.form.SetAnswer(q.Key, value)
	}
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case rowName:
		m.name, cmd = m.name.Update(msg)
		m.form.SetName(m.name.Value())
	case rowEmail:
		m.email, cmd = m.email.Update(msg)
		m.form.SetEmail(m.email.Value())
	case rowQoL:
		m.qol, cmd = m.qol.Update(msg)
		m.syncQoL()
	}
	return m, cmd
}

func (m Model) syncQoL() {
	v, err := strconv.Atoi(strings.TrimSpace(m.qol.Value()))
	if err != nil {
		m.form.ClearQualityOfLife()
		return
	}
	m.form.SetQualityOfLife(v)
}

func (m Model) submitCmd() tea.Cmd {
	form, ctx := m.form, m.ctx
	return func() tea.Msg {
		res, err := form.Submit(ctx)
		return submittedMsg{result: res, err: err}
	}
}

func (m *Model) setFocus(row int) {
	m.focus = row
	m.name.Blur()
	m.email.Blur()
	m.qol.Blur()
	switch row {
	case rowName:
		m.name.Focus()
	case rowEmail:
		m.email.Focus()
	case rowQoL:
		m.qol.Focus()
	}
}

func (m Model) questionAt(row int) (services.Question, bool) {
	i := row - rowFirstQuestion
	if i < 0 || i >= len(services.Questions) {
		return services.Question{}, false
	}
	return services.Questions[i], true
}
