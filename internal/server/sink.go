package server

import (
	"github.com/Reinaldo-Kn/pifatro/internal/game/card"
	"github.com/Reinaldo-Kn/pifatro/internal/game/combo"
	"github.com/Reinaldo-Kn/pifatro/internal/protocol"
	"github.com/Reinaldo-Kn/pifatro/internal/protocol/encoding"
)

// wsSink forwards engine events to the client as protocol messages.
// Calls arrive synchronously from the read-loop goroutine.
type wsSink struct {
	client *Client
}

func (w *wsSink) CardRevealed(c card.Card) {
	w.client.SendMessage(encoding.MustNewMessage(protocol.MsgCardRevealed, protocol.CardRevealedPayload{
		Card: protocol.ToCardInfo(c),
	}))
}

func (w *wsSink) HandRerendered(hand []card.Card) {
	w.client.SendMessage(encoding.MustNewMessage(protocol.MsgHandRerendered, protocol.HandPayload{
		Hand: protocol.ToCardInfos(hand),
	}))
}

func (w *wsSink) ComboResolved(success bool, result combo.Result, removed, drawn []card.Card) {
	w.client.SendMessage(encoding.MustNewMessage(protocol.MsgComboResolved, protocol.ComboResolvedPayload{
		Success:       success,
		Combo:         result.Type.String(),
		Coins:         result.Coins,
		LivesRestored: result.LivesRestored,
		Removed:       protocol.ToCardInfos(removed),
		Drawn:         protocol.ToCardInfos(drawn),
	}))
}

func (w *wsSink) LifeChanged(lives int) {
	w.client.SendMessage(encoding.MustNewMessage(protocol.MsgLifeChanged, protocol.LifeChangedPayload{
		Lives: lives,
	}))
}

func (w *wsSink) CoinsChanged(coins int) {
	w.client.SendMessage(encoding.MustNewMessage(protocol.MsgCoinsChanged, protocol.CoinsChangedPayload{
		Coins: coins,
	}))
}

func (w *wsSink) DeckExhausted() {
	w.client.SendMessage(encoding.MustNewMessage(protocol.MsgDeckExhausted, nil))
}

func (w *wsSink) GameOver() {
	w.client.SendMessage(encoding.MustNewMessage(protocol.MsgGameOver, nil))
}
