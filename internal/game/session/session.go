// Package session composes deck, hand, economy and the turn state
// machine into one playable Pife session. A Session is owned by exactly
// one caller; all mutation is caller-driven and runs to completion
// before the next action is accepted. There is no internal locking and
// no process-wide state.
package session

import (
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"

	"github.com/Reinaldo-Kn/pifatro/internal/game/card"
	"github.com/Reinaldo-Kn/pifatro/internal/game/combo"
)

// Phase describes which player actions are currently legal.
type Phase int

const (
	// PhaseIdle: no pending card, no active selection. Draw, select and
	// reorder are legal.
	PhaseIdle Phase = iota
	// PhaseCardPending: a drawn card awaits replace-or-discard. Drawing
	// and selecting are disabled.
	PhaseCardPending
	// PhaseSelecting: one or two cards are marked for a combination
	// attempt. Drawing is still legal from the rules' point of view but
	// clears nothing; selection and reorder remain legal.
	PhaseSelecting
	// PhaseGameOver: terminal until NewGame.
	PhaseGameOver
)

// phaseNames map phases to their display names.
var phaseNames = map[Phase]string{
	PhaseIdle:        "idle",
	PhaseCardPending: "card_pending",
	PhaseSelecting:   "selecting",
	PhaseGameOver:    "game_over",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "idle"
}

// Default game parameters, matching the original rules.
const (
	DefaultHandSize      = 9
	DefaultStartingLives = 3
	MaxLives             = 3
	ComboSize            = 3
)

// Options tune a new session. Zero values fall back to the defaults.
type Options struct {
	HandSize      int
	StartingLives int
	// Rand seeds the shuffle; nil uses the global RNG.
	Rand rand.Source
	// Sink receives presentation events; nil installs NopSink.
	Sink EventSink
}

func (o *Options) normalize() {
	if o.HandSize <= 0 {
		o.HandSize = DefaultHandSize
	}
	if o.StartingLives <= 0 {
		o.StartingLives = DefaultStartingLives
	}
	if o.Sink == nil {
		o.Sink = NopSink{}
	}
}

// Session is one play of the game: a deck, a hand, the lives/coins
// economy and the interaction state that gates legal actions.
type Session struct {
	id   string
	opts Options
	sink EventSink

	deck card.Deck
	hand []card.Card

	lives int
	coins int

	// Interaction state. At most one of pending/selection is populated;
	// the phase is derived from them so contradictory flags cannot exist.
	pending   *card.Card
	selection []int // hand indices, accumulates up to ComboSize-1
	over      bool

	// lastDiscard is presentation-visible only: the most recent card
	// dropped by a replace or discard.
	lastDiscard *card.Card
}

// New creates a session with a freshly shuffled deck and a dealt hand.
func New(opts Options) *Session {
	opts.normalize()
	s := &Session{
		id:   uuid.NewString(),
		opts: opts,
		sink: opts.Sink,
	}
	s.reset()
	return s
}

// reset re-deals without emitting events; callers emit as appropriate.
func (s *Session) reset() {
	s.deck = card.NewDeck()
	s.deck.Shuffle(s.opts.Rand)

	s.hand = make([]card.Card, 0, s.opts.HandSize)
	for range s.opts.HandSize {
		c, ok := s.deck.Draw()
		if !ok {
			break
		}
		s.hand = append(s.hand, c)
	}

	s.lives = s.opts.StartingLives
	s.coins = 0
	s.pending = nil
	s.selection = s.selection[:0]
	s.over = false
	s.lastDiscard = nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Phase derives the current interaction phase.
func (s *Session) Phase() Phase {
	switch {
	case s.over:
		return PhaseGameOver
	case s.pending != nil:
		return PhaseCardPending
	case len(s.selection) > 0:
		return PhaseSelecting
	default:
		return PhaseIdle
	}
}

// Lives returns the current life count (never below 0 from the
// caller's view: the transient -1 immediately becomes GameOver).
func (s *Session) Lives() int {
	return max(s.lives, 0)
}

// Coins returns the coin total.
func (s *Session) Coins() int { return s.coins }

// Hand returns a copy of the player's cards in display order.
func (s *Session) Hand() []card.Card {
	return slices.Clone(s.hand)
}

// DeckRemaining returns the number of undrawn cards.
func (s *Session) DeckRemaining() int {
	return s.deck.Remaining()
}

// Pending returns the drawn-but-undecided card, if any.
func (s *Session) Pending() (card.Card, bool) {
	if s.pending == nil {
		return card.Card{}, false
	}
	return *s.pending, true
}

// Selection returns a copy of the selected hand indices.
func (s *Session) Selection() []int {
	return slices.Clone(s.selection)
}

// LastDiscard returns the most recently discarded card, if any.
func (s *Session) LastDiscard() (card.Card, bool) {
	if s.lastDiscard == nil {
		return card.Card{}, false
	}
	return *s.lastDiscard, true
}

// Draw pops the top deck card and holds it as the pending card. Legal
// only in Idle; everywhere else it is a silent no-op. An empty deck is
// a no-op too, reported through DeckExhausted.
func (s *Session) Draw() {
	if s.Phase() != PhaseIdle {
		return
	}
	c, ok := s.deck.Draw()
	if !ok {
		s.sink.DeckExhausted()
		return
	}
	s.pending = &c
	s.sink.CardRevealed(c)
}

// Replace swaps the pending card into the hand at index, at the cost of
// one life. The displaced card becomes the new discard. Legal only in
// CardPending with a valid index.
func (s *Session) Replace(index int) {
	if s.Phase() != PhaseCardPending {
		return
	}
	if index < 0 || index >= len(s.hand) {
		return
	}
	if s.spendLife() {
		// Terminal: the pending card is dropped, the hand unchanged.
		return
	}

	displaced := s.hand[index]
	s.hand[index] = *s.pending
	s.lastDiscard = &displaced
	s.pending = nil

	s.sink.HandRerendered(s.Hand())
}

// Discard drops the pending card, at the cost of one life. Legal only
// in CardPending.
func (s *Session) Discard() {
	if s.Phase() != PhaseCardPending {
		return
	}
	if s.spendLife() {
		return
	}

	s.lastDiscard = s.pending
	s.pending = nil
}

// spendLife applies the shared life-decrement rule for decision
// actions. The terminal comparison is deliberately < 0, not <= 0: a
// player at exactly 0 lives gets one more decision before losing.
// Returns true when the game just ended.
func (s *Session) spendLife() bool {
	s.lives--
	if s.lives < 0 {
		s.over = true
		s.pending = nil
		s.selection = s.selection[:0]
		s.sink.GameOver()
		return true
	}
	s.sink.LifeChanged(s.lives)
	return false
}

// ToggleSelect adds or removes the hand card at index from the current
// combination selection. Legal in Idle and Selecting, never while a
// card is pending. Reaching three cards immediately evaluates and
// resolves the attempt; the selection always ends empty.
func (s *Session) ToggleSelect(index int) {
	phase := s.Phase()
	if phase != PhaseIdle && phase != PhaseSelecting {
		return
	}
	if index < 0 || index >= len(s.hand) {
		return
	}

	if i := slices.Index(s.selection, index); i >= 0 {
		s.selection = slices.Delete(s.selection, i, i+1)
		return
	}
	if len(s.selection) >= ComboSize {
		return
	}
	s.selection = append(s.selection, index)
	if len(s.selection) == ComboSize {
		s.resolveCombo()
	}
}

// resolveCombo evaluates the three selected cards and applies the
// outcome. Success awards the reward, removes the cards by id and
// replenishes from the deck; failure leaves the hand untouched. The
// selection is cleared unconditionally.
func (s *Session) resolveCombo() {
	selected := make([]card.Card, 0, ComboSize)
	for _, idx := range s.selection {
		selected = append(selected, s.hand[idx])
	}
	s.selection = s.selection[:0]

	result := combo.Evaluate(selected)
	if !result.Valid() {
		s.sink.ComboResolved(false, result, nil, nil)
		return
	}

	s.coins += result.Coins
	s.lives = min(s.lives+result.LivesRestored, MaxLives)

	// Remove by id, not by position: indices may have shifted between
	// the clicks that built the selection.
	removeIDs := make(map[string]bool, ComboSize)
	for _, c := range selected {
		removeIDs[c.ID()] = true
	}
	s.hand = slices.DeleteFunc(s.hand, func(c card.Card) bool {
		return removeIDs[c.ID()]
	})

	drawn := make([]card.Card, 0, ComboSize)
	for range ComboSize {
		c, ok := s.deck.Draw()
		if !ok {
			// The hand legitimately stays short; there is no
			// reshuffle-from-discard in this game.
			s.sink.DeckExhausted()
			break
		}
		drawn = append(drawn, c)
	}
	s.hand = append(s.hand, drawn...)

	s.sink.ComboResolved(true, result, selected, slices.Clone(drawn))
	s.sink.CoinsChanged(s.coins)
	s.sink.LifeChanged(s.lives)
	s.sink.HandRerendered(s.Hand())
}

// MoveCard swaps the cards at the two hand positions. It is a free
// re-arrangement of the player-visible order, legal in Idle and
// Selecting; starting a move clears any in-progress selection. Returns
// false when the indices are out of range or the move is illegal.
func (s *Session) MoveCard(from, to int) bool {
	phase := s.Phase()
	if phase != PhaseIdle && phase != PhaseSelecting {
		return false
	}
	if from < 0 || from >= len(s.hand) || to < 0 || to >= len(s.hand) {
		return false
	}
	s.selection = s.selection[:0]
	s.hand[from], s.hand[to] = s.hand[to], s.hand[from]
	s.sink.HandRerendered(s.Hand())
	return true
}

// NewGame restarts the session: full lives, zero coins, a fresh
// shuffled deck and a newly dealt hand. Legal in any phase, including
// GameOver.
func (s *Session) NewGame() {
	s.reset()
	s.sink.LifeChanged(s.lives)
	s.sink.CoinsChanged(s.coins)
	s.sink.HandRerendered(s.Hand())
}
