package ui

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reinaldo-Kn/pifatro/internal/game/combo"
	"github.com/Reinaldo-Kn/pifatro/internal/game/session"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	return newModel(session.Options{
		Rand: rand.NewPCG(7, 7),
	}, nil)
}

// press feeds one key through Update and returns the command.
func press(m *Model, key string) tea.Cmd {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func TestDrawKeyRevealsCard(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "d")

	assert.Equal(t, session.PhaseCardPending, m.sess.Phase())
	assert.Contains(t, m.View(), "Drawn card")
}

func TestNumberKeyReplacesWhilePending(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "d")
	pending, ok := m.sess.Pending()
	require.True(t, ok)

	press(m, "1")

	assert.Equal(t, session.PhaseIdle, m.sess.Phase())
	assert.Equal(t, pending.ID(), m.sess.Hand()[0].ID())
	assert.Equal(t, 2, m.sess.Lives())
}

func TestDiscardKey(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "d")
	pending, ok := m.sess.Pending()
	require.True(t, ok)

	press(m, "x")

	assert.Equal(t, session.PhaseIdle, m.sess.Phase())
	assert.Equal(t, 2, m.sess.Lives())
	discard, ok := m.sess.LastDiscard()
	require.True(t, ok)
	assert.Equal(t, pending.ID(), discard.ID())
}

func TestNumberKeyTogglesSelection(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	press(m, "1")
	press(m, "2")
	assert.Equal(t, []int{0, 1}, m.sess.Selection())

	// Toggling off again.
	press(m, "2")
	assert.Equal(t, []int{0}, m.sess.Selection())
}

func TestSpaceSelectsAtCursor(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "right")
	press(m, "right")
	press(m, " ")

	assert.Equal(t, []int{2}, m.sess.Selection())
}

func TestCursorStaysInBounds(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	press(m, "left")
	assert.Equal(t, 0, m.cursor)

	for range 20 {
		press(m, "right")
	}
	assert.Equal(t, len(m.sess.Hand())-1, m.cursor)
}

func TestBracketKeysRearrange(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	first := m.sess.Hand()[0]

	press(m, "]")

	assert.Equal(t, first.ID(), m.sess.Hand()[1].ID())
	assert.Equal(t, 1, m.cursor)

	press(m, "[")
	assert.Equal(t, first.ID(), m.sess.Hand()[0].ID())
	assert.Equal(t, 0, m.cursor)
}

func TestNewGameKeyResets(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "d")
	press(m, "x")
	require.Equal(t, 2, m.sess.Lives())

	press(m, "n")

	assert.Equal(t, 3, m.sess.Lives())
	assert.Equal(t, 0, m.sess.Coins())
	assert.Contains(t, m.View(), "New game dealt")
}

func TestHelpOverlay(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	press(m, "h")
	assert.Contains(t, m.View(), "How to play")

	// ESC closes the overlay instead of quitting.
	cmd := press(m, "esc")
	assert.Nil(t, cmd)
	assert.NotContains(t, m.View(), "How to play")
}

func TestQuitKey(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestGameOverScreen(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	// Burn through all lives plus the final zero-lives decision.
	for range 4 {
		press(m, "d")
		press(m, "x")
	}
	require.Equal(t, session.PhaseGameOver, m.sess.Phase())

	view := m.View()
	assert.Contains(t, view, "GAME OVER")

	// Game actions are dead, restart is not.
	press(m, "d")
	assert.Equal(t, session.PhaseGameOver, m.sess.Phase())

	press(m, "n")
	assert.Equal(t, session.PhaseIdle, m.sess.Phase())
	assert.Equal(t, 3, m.sess.Lives())
}

func TestResolveFlashParksInput(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	// Simulate a successful resolve through the sink callback.
	m.ComboResolved(true, combo.Result{Type: combo.ThreeOfAKind, Coins: 50, LivesRestored: 1}, nil, nil)
	require.True(t, m.resolving)

	press(m, "d")
	assert.Equal(t, session.PhaseIdle, m.sess.Phase(), "draw is parked during the flash")

	m.Update(clearNoticeMsg{seq: m.noticeSeq})
	require.False(t, m.resolving)

	press(m, "d")
	assert.Equal(t, session.PhaseCardPending, m.sess.Phase())
}

func TestNoticeExpires(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	cmd := press(m, "n")
	require.NotNil(t, cmd, "a fresh notice schedules its expiry")
	require.NotEmpty(t, m.notice)

	m.Update(clearNoticeMsg{seq: m.noticeSeq})
	assert.Empty(t, m.notice)
}

func TestStatusBarShowsEconomy(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, CoinIcon+" 0")
	assert.True(t, strings.Contains(view, DeckIcon+" 43"), "deck count after the deal")
}
