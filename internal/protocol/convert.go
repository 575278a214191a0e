package protocol

import (
	"github.com/Reinaldo-Kn/pifatro/internal/game/card"
)

// ToCardInfo converts an engine card to its wire representation.
func ToCardInfo(c card.Card) CardInfo {
	return CardInfo{
		ID:    c.ID(),
		Rank:  c.Rank.String(),
		Suit:  c.Suit.Code(),
		Asset: c.AssetName(),
	}
}

// ToCardInfos converts a slice of engine cards.
func ToCardInfos(cards []card.Card) []CardInfo {
	if cards == nil {
		return nil
	}
	infos := make([]CardInfo, len(cards))
	for i, c := range cards {
		infos[i] = ToCardInfo(c)
	}
	return infos
}

// FromCardInfo parses a wire card back into an engine card by id.
func FromCardInfo(info CardInfo) (card.Card, error) {
	return card.FromID(info.ID)
}
