package card

import (
	"fmt"
	"math/rand/v2"
)

// Suit identifies one of the four french suits.
type Suit int

// Rank identifies a card face value.
type Rank int

const (
	Spade Suit = iota
	Heart
	Club
	Diamond
)

// Rank values double as positions in the sequence order A,2..10,J,Q,K.
// Ace is always low; the order does not wrap.
const (
	RankA Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
)

// NumSuits and NumRanks describe a standard deck without jokers.
const (
	NumSuits = 4
	NumRanks = 13
	DeckSize = NumSuits * NumRanks
)

// suitCodes are the single-letter codes used in card IDs.
var suitCodes = map[Suit]string{
	Spade:   "S",
	Heart:   "H",
	Club:    "C",
	Diamond: "D",
}

// suitSymbols map suits to their display glyphs.
var suitSymbols = map[Suit]string{
	Spade:   "♠",
	Heart:   "♥",
	Club:    "♣",
	Diamond: "♦",
}

// suitNames are the spelled-out names used for asset keys.
var suitNames = map[Suit]string{
	Spade:   "spades",
	Heart:   "hearts",
	Club:    "clubs",
	Diamond: "diamonds",
}

// Code returns the suit letter used in card IDs ("S", "H", "C", "D").
func (s Suit) Code() string {
	return suitCodes[s]
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return "?"
}

// rankNames map ranks to their short display strings.
var rankNames = map[Rank]string{
	RankA:  "A",
	Rank2:  "2",
	Rank3:  "3",
	Rank4:  "4",
	Rank5:  "5",
	Rank6:  "6",
	Rank7:  "7",
	Rank8:  "8",
	Rank9:  "9",
	Rank10: "10",
	RankJ:  "J",
	RankQ:  "Q",
	RankK:  "K",
}

// rankAssetNames map ranks to the spelled-out names used for asset keys.
var rankAssetNames = map[Rank]string{
	RankA: "ace",
	RankJ: "jack",
	RankQ: "queen",
	RankK: "king",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "?"
}

// Pos returns the 0-based position of the rank in the sequence order.
func (r Rank) Pos() int {
	return int(r)
}

// Card is an immutable rank/suit pair.
type Card struct {
	Rank Rank
	Suit Suit
}

// ID returns the unique rank+suit identifier, e.g. "AS", "10H", "KD".
func (c Card) ID() string {
	return c.Rank.String() + c.Suit.Code()
}

func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}

// AssetName returns the presentation asset key, e.g. "ace_of_spades".
// It is a derived projection only; no game logic depends on it.
func (c Card) AssetName() string {
	rankName, ok := rankAssetNames[c.Rank]
	if !ok {
		rankName = c.Rank.String()
	}
	return fmt.Sprintf("%s_of_%s", rankName, suitNames[c.Suit])
}

// idToCard provides fast lookup of a card by its ID.
var idToCard = func() map[string]Card {
	m := make(map[string]Card, DeckSize)
	for s := Spade; s <= Diamond; s++ {
		for r := RankA; r <= RankK; r++ {
			c := Card{Rank: r, Suit: s}
			m[c.ID()] = c
		}
	}
	return m
}()

// FromID parses a card ID back into a Card.
func FromID(id string) (Card, error) {
	if c, ok := idToCard[id]; ok {
		return c, nil
	}
	return Card{}, fmt.Errorf("unknown card id: %q", id)
}

// Deck is an ordered sequence of cards; the draw position is the end.
type Deck []Card

// NewDeck returns all 52 cards in canonical suit-major order, unshuffled.
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for s := Spade; s <= Diamond; s++ {
		for r := RankA; r <= RankK; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// Shuffle performs an in-place Fisher-Yates shuffle. A non-nil source
// makes the permutation deterministic for tests; nil uses the global RNG.
func (d Deck) Shuffle(src rand.Source) {
	swap := func(i, j int) {
		d[i], d[j] = d[j], d[i]
	}
	if src == nil {
		rand.Shuffle(len(d), swap)
		return
	}
	r := rand.New(src)
	for i := len(d) - 1; i > 0; i-- {
		swap(i, r.IntN(i+1))
	}
}

// Draw removes and returns the top (last) card. The second return is
// false when the deck is empty; an empty deck is not an error, the
// caller treats it as supply exhaustion.
func (d *Deck) Draw() (Card, bool) {
	if len(*d) == 0 {
		return Card{}, false
	}
	top := (*d)[len(*d)-1]
	*d = (*d)[:len(*d)-1]
	return top, true
}

// Remaining returns the number of undrawn cards.
func (d Deck) Remaining() int {
	return len(d)
}
