package tui

import (
	"context"
	"strings"

	"github.com/Veraticus/mathspeak/internal/model"
	"github.com/Veraticus/mathspeak/internal/practice"
	"github.com/Veraticus/mathspeak/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// State represents the current state of the session.
type State int

const (
	StateQuestion State = iota
	StateFeedback
	StateDone
)

// Summary is the outcome of a TUI practice session.
type Summary struct {
	Attempts []model.PracticeAttempt
	Skipped  int
	Quit     bool
}

// Correct returns the number of correct answers.
func (s Summary) Correct() int {
	n := 0
	for _, a := range s.Attempts {
		if a.Correct {
			n++
		}
	}
	return n
}

// Model holds the practice session state.
type Model struct {
	ctx         context.Context
	lastError   error
	lastAttempt *model.PracticeAttempt
	theme       themes.Theme
	help        help.Model
	keymap      KeyMap
	config      Config
	input       textinput.Model
	progress    progress.Model
	items       []model.PracticeItem
	attempts    []model.PracticeAttempt
	index       int
	skipped     int
	width       int
	height      int
	state       State
	submitting  bool
	quit        bool
}

// NewModel creates a session over items.
func NewModel(ctx context.Context, items []model.PracticeItem, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	input := textinput.New()
	input.Placeholder = "type the expression"
	input.Prompt = "> "
	input.CharLimit = 128
	input.Focus()

	h := help.New()
	h.ShowAll = cfg.ShowHelp

	m := Model{
		ctx:      ctx,
		config:   cfg,
		theme:    cfg.Theme,
		keymap:   DefaultKeyMap(),
		help:     h,
		input:    input,
		progress: progress.New(progress.WithDefaultGradient()),
		items:    items,
		state:    StateQuestion,
	}
	m.resize(cfg.Width, cfg.Height)
	if len(items) == 0 {
		m.state = StateDone
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case attemptRecordedMsg:
		m.submitting = false
		if msg.err != nil {
			m.lastError = msg.err
			m.state = StateDone
			return m, tea.Quit
		}
		attempt := msg.attempt
		m.attempts = append(m.attempts, attempt)
		m.lastAttempt = &attempt
		m.state = StateFeedback
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	if m.state == StateQuestion {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quit = m.index < len(m.items)
		return m, tea.Quit
	}
	if key.Matches(msg, m.keymap.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.state {
	case StateQuestion:
		if m.submitting {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keymap.Submit):
			answer := strings.TrimSpace(m.input.Value())
			if answer == "" {
				return m, nil
			}
			m.submitting = true
			return m, m.submit(m.items[m.index], answer)
		case key.Matches(msg, m.keymap.Skip):
			m.skipped++
			m.lastAttempt = nil
			m.state = StateFeedback
			return m, nil
		case key.Matches(msg, m.keymap.Quit):
			m.quit = true
			m.state = StateDone
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case StateFeedback:
		switch {
		case key.Matches(msg, m.keymap.Next):
			m.advance()
		case key.Matches(msg, m.keymap.Quit):
			m.index++
			m.quit = m.index < len(m.items)
			m.state = StateDone
		}
		return m, nil

	case StateDone:
		if key.Matches(msg, m.keymap.Next) || key.Matches(msg, m.keymap.Quit) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) advance() {
	m.index++
	m.lastAttempt = nil
	m.input.Reset()
	if m.index >= len(m.items) {
		m.state = StateDone
		return
	}
	m.state = StateQuestion
}

// submit grades answer through the configured SubmitFunc, or locally
// without recording when none is set.
func (m Model) submit(item model.PracticeItem, answer string) tea.Cmd {
	submitFn := m.config.Submit
	ctx := m.ctx
	timeout := m.config.SubmitTimeout
	return func() tea.Msg {
		if submitFn == nil {
			return attemptRecordedMsg{attempt: practice.Grade(item, answer)}
		}
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		attempt, err := submitFn(ctx, item, answer)
		return attemptRecordedMsg{attempt: attempt, err: err}
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth < 10 {
		barWidth = 10
	}
	m.progress.Width = barWidth
	m.input.Width = barWidth
	m.help.Width = width
}

// State returns the current session state.
func (m Model) State() State {
	return m.state
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.lastError
}

// Summary returns what has been answered so far.
func (m Model) Summary() Summary {
	return Summary{
		Attempts: append([]model.PracticeAttempt(nil), m.attempts...),
		Skipped:  m.skipped,
		Quit:     m.quit,
	}
}

func (m Model) completion() float64 {
	if len(m.items) == 0 {
		return 1
	}
	return float64(m.index) / float64(len(m.items))
}
