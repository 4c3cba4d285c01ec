// Package ui is the interactive practice loop: one question at a time,
// graded on submit, with progressive hints and a running score.
package ui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathai/internal/hints"
	"github.com/abhisek/mathai/internal/question"
	"github.com/abhisek/mathai/internal/store"
	"github.com/abhisek/mathai/internal/tutor"
)

// phase tracks what the practice screen is showing.
type phase int

const (
	phaseLoading phase = iota
	phaseAnswering
	phaseFeedback
	phaseError
)

// questionReadyMsg is sent when a question has been generated.
type questionReadyMsg struct {
	Question *store.Question
	Err      error
}

// gradedMsg is sent when an attempt has been graded.
type gradedMsg struct {
	Submission *tutor.Submission
	Err        error
}

// Model is the Bubble Tea model for a practice session.
type Model struct {
	svc    *tutor.Service
	params question.Params

	input   textinput.Model
	phase   phase
	current *store.Question
	graded  *tutor.Submission
	hint    string
	tier    int
	started time.Time

	answered int
	correct  int
	score    int

	width  int
	height int
	errMsg string
}

// NewModel creates the practice model for the given parameters.
func NewModel(svc *tutor.Service, params question.Params) Model {
	ti := textinput.New()
	ti.Placeholder = "Type your answer..."
	ti.CharLimit = 40
	ti.Focus()

	return Model{svc: svc, params: params, input: ti, phase: phaseLoading}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchQuestion(), m.input.Focus())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case questionReadyMsg:
		if msg.Err != nil {
			m.phase = phaseError
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.current = msg.Question
		m.graded = nil
		m.hint = ""
		m.tier = 0
		m.started = time.Now()
		m.phase = phaseAnswering
		m.input.SetValue("")
		return m, nil

	case gradedMsg:
		if msg.Err != nil {
			m.phase = phaseError
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.graded = msg.Submission
		m.answered++
		if msg.Submission.Verdict.IsCorrect {
			m.correct++
			m.score += msg.Submission.Points
			m.phase = phaseFeedback
		} else {
			// Stay on the question; the verdict carries a hint.
			m.phase = phaseAnswering
			m.input.SetValue("")
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	}

	switch m.phase {
	case phaseAnswering:
		switch msg.String() {
		case "enter":
			answer := m.input.Value()
			if answer == "" {
				return m, nil
			}
			return m, m.submit(answer)
		case "ctrl+h":
			if m.tier < hints.Tiers {
				m.tier++
				m.hint = hints.ForTier(m.current.Text, m.current.Topic, m.tier)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case phaseFeedback:
		// Any key moves on.
		m.phase = phaseLoading
		return m, m.fetchQuestion()

	case phaseError:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) fetchQuestion() tea.Cmd {
	svc, params := m.svc, m.params
	return func() tea.Msg {
		q, err := svc.NewQuestion(context.Background(), params)
		return questionReadyMsg{Question: q, Err: err}
	}
}

func (m Model) submit(answer string) tea.Cmd {
	svc, id := m.svc, m.current.ID
	seconds := time.Since(m.started).Seconds()
	return func() tea.Msg {
		sub, err := svc.Submit(context.Background(), id, answer, seconds)
		return gradedMsg{Submission: sub, Err: err}
	}
}

// Run starts the practice session and blocks until the user quits.
func Run(svc *tutor.Service, params question.Params) error {
	p := tea.NewProgram(NewModel(svc, params))
	_, err := p.Run()
	return err
}
