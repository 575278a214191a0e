// Package combo evaluates three-card Pife combinations. Evaluation is a
// pure function over the cards themselves; it never touches hand, deck
// or economy state.
package combo

import (
	"sort"

	"github.com/Reinaldo-Kn/pifatro/internal/game/card"
)

// Type identifies a combination kind.
type Type int

const (
	None Type = iota
	ThreeOfAKind
	Straight
	StraightFlush
)

// typeNames map combination kinds to their display names.
var typeNames = map[Type]string{
	None:          "none",
	ThreeOfAKind:  "trinca",
	Straight:      "sequence",
	StraightFlush: "straight flush",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "none"
}

// Result is the outcome of evaluating a selection, with its reward.
type Result struct {
	Type          Type
	LivesRestored int
	Coins         int
}

// Valid reports whether the result is a paying combination.
func (r Result) Valid() bool {
	return r.Type != None
}

// Rewards per combination kind.
var rewards = map[Type]Result{
	ThreeOfAKind:  {Type: ThreeOfAKind, LivesRestored: 1, Coins: 50},
	Straight:      {Type: Straight, LivesRestored: 1, Coins: 100},
	StraightFlush: {Type: StraightFlush, LivesRestored: 2, Coins: 200},
}

// Evaluate classifies exactly three cards. Any other input length is an
// invalid attempt and yields None. The result is independent of card
// order.
//
// A sequence uses the fixed rank order A,2..10,J,Q,K with no wraparound:
// Q-K-A is not consecutive, the ace is low only.
func Evaluate(cards []card.Card) Result {
	if len(cards) != 3 {
		return Result{}
	}

	if cards[0].Rank == cards[1].Rank && cards[1].Rank == cards[2].Rank {
		return rewards[ThreeOfAKind]
	}

	pos := []int{cards[0].Rank.Pos(), cards[1].Rank.Pos(), cards[2].Rank.Pos()}
	sort.Ints(pos)
	if pos[1] != pos[0]+1 || pos[2] != pos[1]+1 {
		return Result{}
	}

	if cards[0].Suit == cards[1].Suit && cards[1].Suit == cards[2].Suit {
		return rewards[StraightFlush]
	}
	return rewards[Straight]
}
