package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/config"
	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

type screen int

const (
	screenDebugPrompt screen = iota
	screenPickDealer
	screenPickPlayer
	screenDiscard
	screenResult
)

// Choices on the yes/no prompts.
const (
	choiceYes = 0
	choiceNo  = 1
)

// Options configures the console game.
type Options struct {
	// DebugMode is one of config.DebugAsk, DebugOn or DebugOff.
	DebugMode string
	Theme     *config.ThemeSettings
}

// Model is the Bubble Tea model for a session of five card draw.
type Model struct {
	session *game.Session
	logger  *log.Logger
	styles  Styles
	keys    KeyMap
	help    help.Model
	opts    Options

	screen screen
	choice int // cursor on yes/no prompts

	// Hand picking
	picker *game.Picker
	picked *poker.Hand // dealer hand chosen first

	// Discard selection
	round      *game.Round
	cursor     int
	onDone     bool
	discards   [poker.HandSize]bool
	numDiscard int

	result      game.Result
	dealerSlots []int
	lastErr     error

	width    int
	quitting bool
}

// New creates the console model for the session.
func New(session *game.Session, logger *log.Logger, opts Options) *Model {
	if opts.DebugMode == "" {
		opts.DebugMode = config.DebugAsk
	}

	m := &Model{
		session: session,
		logger:  logger.WithPrefix("tui"),
		styles:  NewStyles(opts.Theme),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		opts:    opts,
	}
	m.startRound()
	return m
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Run starts the program and blocks until the player quits.
func Run(m *Model, opts ...tea.ProgramOption) error {
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("running console: %w", err)
	}
	return nil
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.logger.Info("Player quit", "rounds", m.session.Rounds)
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		switch m.screen {
		case screenDebugPrompt:
			return m.updateDebugPrompt(msg)
		case screenPickDealer, screenPickPlayer:
			return m.updatePicker(msg)
		case screenDiscard:
			return m.updateDiscard(msg)
		case screenResult:
			return m.updateResult(msg)
		}
	}
	return m, nil
}

// startRound begins a new round, asking about debug mode first if configured to.
func (m *Model) startRound() {
	m.lastErr = nil
	m.round = nil
	m.dealerSlots = nil

	switch m.opts.DebugMode {
	case config.DebugOn:
		m.startPicking()
	case config.DebugOff:
		m.deal()
	default:
		m.screen = screenDebugPrompt
		m.choice = choiceYes
	}
}

func (m *Model) startPicking() {
	m.picker = game.NewPicker()
	m.picked = nil
	m.screen = screenPickDealer
}

func (m *Model) deal() {
	m.round = m.session.NewRound()
	m.cursor = 0
	m.onDone = false
	m.discards = [poker.HandSize]bool{}
	m.numDiscard = 0
	m.screen = screenDiscard
}

func (m *Model) updateDebugPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		m.choice = 1 - m.choice
	case key.Matches(msg, m.keys.Select):
		if m.choice == choiceYes {
			m.startPicking()
		} else {
			m.deal()
		}
	}
	return m, nil
}

func (m *Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.picker.Left()
	case key.Matches(msg, m.keys.Right):
		m.picker.Right()
	case key.Matches(msg, m.keys.Up):
		m.picker.Up()
	case key.Matches(msg, m.keys.Down):
		m.picker.Down()
	case key.Matches(msg, m.keys.Select):
		if m.screen == screenPickDealer {
			m.picked = m.picker.Hand()
			m.picker = game.NewPicker()
			m.screen = screenPickPlayer
			return m, nil
		}
		m.round = m.session.NewPickedRound(m.picker.Hand(), m.picked)
		m.showdown()
	}
	return m, nil
}

func (m *Model) updateDiscard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if !m.onDone {
			m.cursor = (m.cursor + poker.HandSize - 1) % poker.HandSize
		}
	case key.Matches(msg, m.keys.Right):
		if !m.onDone {
			m.cursor = (m.cursor + 1) % poker.HandSize
		}
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		m.onDone = !m.onDone
	case key.Matches(msg, m.keys.Select):
		if m.onDone {
			m.finishDiscards()
			return m, nil
		}
		m.toggleDiscard(m.cursor)
	}
	return m, nil
}

// toggleDiscard marks or unmarks a card. Marking stops at MaxDiscards.
func (m *Model) toggleDiscard(slot int) {
	if m.discards[slot] {
		m.discards[slot] = false
		m.numDiscard--
		return
	}
	if m.numDiscard < game.MaxDiscards {
		m.discards[slot] = true
		m.numDiscard++
	}
}

func (m *Model) selectedSlots() []int {
	var slots []int
	for s, ok := range m.discards {
		if ok {
			slots = append(slots, s)
		}
	}
	return slots
}

func (m *Model) finishDiscards() {
	if err := m.round.DiscardPlayer(m.selectedSlots()); err != nil {
		m.fail(err)
		return
	}
	slots, err := m.round.DiscardDealer()
	if err != nil {
		m.fail(err)
		return
	}
	m.dealerSlots = slots
	m.showdown()
}

func (m *Model) showdown() {
	res, err := m.round.Showdown()
	if err != nil {
		m.fail(err)
		return
	}
	m.result = res
	m.session.Record(res)
	m.choice = choiceYes
	m.screen = screenResult
}

func (m *Model) fail(err error) {
	m.lastErr = err
	m.logger.Error("Round failed", "error", err)
}

func (m *Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		m.choice = 1 - m.choice
	case key.Matches(msg, m.keys.Select):
		if m.choice == choiceNo {
			m.quitting = true
			m.logger.Info("Player finished",
				"rounds", m.session.Rounds,
				"wins", m.session.PlayerWins,
				"losses", m.session.DealerWins,
				"ties", m.session.Ties,
				"elapsed", m.session.Elapsed())
			return m, tea.Quit
		}
		m.startRound()
	}
	return m, nil
}
