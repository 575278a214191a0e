// Package ui renders the local game loop as a Bubble Tea program.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Reinaldo-Kn/pifatro/internal/config"
	"github.com/Reinaldo-Kn/pifatro/internal/game/card"
	"github.com/Reinaldo-Kn/pifatro/internal/game/combo"
	"github.com/Reinaldo-Kn/pifatro/internal/game/session"
	"github.com/Reinaldo-Kn/pifatro/internal/sound"
)

// clearNoticeMsg expires the transient status line. The seq guard keeps
// an old timer from wiping a newer notice.
type clearNoticeMsg struct {
	seq int
}

func clearNoticeAfter(seq int) tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

// keyMap holds the game bindings.
type keyMap struct {
	Draw      key.Binding
	Discard   key.Binding
	NewGame   key.Binding
	Help      key.Binding
	Quit      key.Binding
	Left      key.Binding
	Right     key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Confirm   key.Binding
}

var keys = keyMap{
	Draw:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "draw")),
	Discard:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "discard")),
	NewGame:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
	Help:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "cursor left")),
	Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "cursor right")),
	MoveLeft:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "move card left")),
	MoveRight: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "move card right")),
	Confirm:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "select/swap")),
}

// Model drives a single local session. It doubles as the session's
// event sink: engine calls happen synchronously inside Update, so the
// sink callbacks land before the next View.
type Model struct {
	sess   *session.Session
	sounds *sound.Manager

	width  int
	height int

	cursor int

	notice      string
	noticeIsErr bool
	noticeFresh bool
	noticeSeq   int

	// resolving suspends game input while the combo result is on
	// screen; it lifts when the notice expires.
	resolving bool

	showingHelp bool

	prevLives int
}

// New builds the model and deals a fresh session.
func New(cfg config.GameConfig, sounds *sound.Manager) *Model {
	return newModel(session.Options{
		HandSize:      cfg.HandSize,
		StartingLives: cfg.StartingLives,
	}, sounds)
}

func newModel(opts session.Options, sounds *sound.Manager) *Model {
	m := &Model{
		sounds: sounds,
		width:  80,
		height: 24,
	}
	opts.Sink = m
	m.sess = session.New(opts)
	m.prevLives = m.sess.Lives()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.width = msg.Width - h
		m.height = msg.Height - v
		return m, nil

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
			m.resolving = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		if m.showingHelp {
			m.showingHelp = false
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.showingHelp = !m.showingHelp
		return m, nil

	case key.Matches(msg, keys.NewGame):
		m.sess.NewGame()
		m.cursor = 0
		m.resolving = false
		m.setNotice("New game dealt", false)

	case m.resolving:
		// Game input is parked until the resolve flash clears.

	case key.Matches(msg, keys.Draw):
		m.sess.Draw()

	case key.Matches(msg, keys.Discard):
		m.sess.Discard()

	case key.Matches(msg, keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Right):
		if m.cursor < len(m.sess.Hand())-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.MoveLeft):
		if m.sess.MoveCard(m.cursor, m.cursor-1) {
			m.cursor--
		}

	case key.Matches(msg, keys.MoveRight):
		if m.sess.MoveCard(m.cursor, m.cursor+1) {
			m.cursor++
		}

	case key.Matches(msg, keys.Confirm):
		m.actOn(m.cursor)

	default:
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			idx := int(s[0] - '1')
			if idx < len(m.sess.Hand()) {
				m.cursor = idx
				m.actOn(idx)
			}
		}
	}

	m.clampCursor()

	if m.noticeFresh {
		m.noticeFresh = false
		m.noticeSeq++
		return m, clearNoticeAfter(m.noticeSeq)
	}
	return m, nil
}

// actOn applies the context action for a hand index: replace while a
// drawn card is pending, toggle selection otherwise.
func (m *Model) actOn(index int) {
	if _, pending := m.sess.Pending(); pending {
		m.sess.Replace(index)
		return
	}
	m.sess.ToggleSelect(index)
}

func (m *Model) clampCursor() {
	if n := len(m.sess.Hand()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeIsErr = isErr
	m.noticeFresh = true
}

// EventSink implementation.

func (m *Model) CardRevealed(card.Card) {
	m.sounds.Play(sound.EffectDraw)
}

func (m *Model) HandRerendered([]card.Card) {
	// View reads the hand straight from the session.
}

func (m *Model) ComboResolved(success bool, result combo.Result, removed, drawn []card.Card) {
	if !success {
		m.setNotice("Not a pife, selection cleared", true)
		return
	}
	m.sounds.Play(sound.EffectCombo)
	m.resolving = true
	m.setNotice(fmt.Sprintf("✨ Pife! %s: +%d coins, +%d life", result.Type, result.Coins, result.LivesRestored), false)
}

func (m *Model) LifeChanged(lives int) {
	if lives < m.prevLives {
		m.sounds.Play(sound.EffectLifeLost)
	}
	m.prevLives = lives
}

func (m *Model) CoinsChanged(int) {}

func (m *Model) DeckExhausted() {
	m.setNotice("The deck is out of cards", true)
}

func (m *Model) GameOver() {
	m.sounds.Play(sound.EffectGameOver)
	m.prevLives = 0
}
