package session

import (
	"github.com/Reinaldo-Kn/pifatro/internal/game/card"
	"github.com/Reinaldo-Kn/pifatro/internal/game/combo"
)

// EventSink receives logical state transitions so a presentation layer
// can animate without owning game rules. All calls are synchronous and
// fire-and-forget: the session never waits on the sink, and sink
// callbacks must not call back into the session.
type EventSink interface {
	// CardRevealed fires when a draw succeeds and the card awaits a
	// replace-or-discard decision.
	CardRevealed(c card.Card)

	// HandRerendered fires whenever the hand's contents or order change.
	HandRerendered(hand []card.Card)

	// ComboResolved fires after a three-card selection was evaluated.
	// removed and drawn are nil when the attempt failed.
	ComboResolved(success bool, result combo.Result, removed, drawn []card.Card)

	// LifeChanged fires with the new life count, always within [0,3].
	LifeChanged(lives int)

	// CoinsChanged fires with the new coin total.
	CoinsChanged(coins int)

	// DeckExhausted fires when a draw or a combo replenishment could not
	// be fully supplied.
	DeckExhausted()

	// GameOver fires once when lives drop below zero.
	GameOver()
}

// NopSink discards all events. Useful for tests and headless sessions.
type NopSink struct{}

func (NopSink) CardRevealed(card.Card)                                     {}
func (NopSink) HandRerendered([]card.Card)                                 {}
func (NopSink) ComboResolved(bool, combo.Result, []card.Card, []card.Card) {}
func (NopSink) LifeChanged(int)                                            {}
func (NopSink) CoinsChanged(int)                                           {}
func (NopSink) DeckExhausted()                                             {}
func (NopSink) GameOver()                                                  {}
