package session

import (
	"fmt"
	"time"

	"github.com/Reinaldo-Kn/pifatro/internal/game/card"
)

// Snapshot is the persistence payload exchanged with the storage
// collaborator at session boundaries. The deck is deliberately not
// part of it: a restored session keeps playing with its own deck.
type Snapshot struct {
	Lives   int       `json:"lives"`
	Coins   int       `json:"coins"`
	Hand    []string  `json:"hand"` // card ids, display order
	SavedAt time.Time `json:"saved_at,omitempty"`
}

// Snapshot captures the saveable state of the session.
func (s *Session) Snapshot() Snapshot {
	hand := make([]string, len(s.hand))
	for i, c := range s.hand {
		hand[i] = c.ID()
	}
	return Snapshot{
		Lives: s.Lives(),
		Coins: s.coins,
		Hand:  hand,
	}
}

// Restore applies a loaded snapshot. Lives are clamped into [0,3] and
// coins floored at 0 before being applied; a malformed hand leaves the
// session at its prior state and returns the error. Pending card and
// selection are cleared, matching a session-boundary load.
func (s *Session) Restore(snap Snapshot) error {
	hand := make([]card.Card, 0, len(snap.Hand))
	for _, id := range snap.Hand {
		c, err := card.FromID(id)
		if err != nil {
			return fmt.Errorf("restore: %w", err)
		}
		hand = append(hand, c)
	}

	s.lives = min(max(snap.Lives, 0), MaxLives)
	s.coins = max(snap.Coins, 0)
	s.hand = hand
	s.pending = nil
	s.selection = s.selection[:0]
	s.over = false
	s.lastDiscard = nil

	s.sink.LifeChanged(s.lives)
	s.sink.CoinsChanged(s.coins)
	s.sink.HandRerendered(s.Hand())
	return nil
}
