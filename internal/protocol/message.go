// Package protocol defines the JSON wire contract between the engine
// server and its clients: player intents flow in, presentation events
// flow out. The engine itself never touches this package.
package protocol

import "encoding/json"

// Message is the envelope for every frame in both directions.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType identifies the frame kind.
type MessageType string

// Client → server intents. The server forwards them to the engine,
// which silently ignores whatever is illegal in the current phase.
const (
	MsgDraw         MessageType = "draw"          // take the top deck card
	MsgReplace      MessageType = "replace"       // swap pending card into the hand
	MsgDiscard      MessageType = "discard"       // drop the pending card
	MsgToggleSelect MessageType = "toggle_select" // toggle a combo selection slot
	MsgMoveCard     MessageType = "move_card"     // re-arrange two hand positions
	MsgNewGame      MessageType = "new_game"      // restart the session

	MsgLogin MessageType = "login" // authenticate for persistence
	MsgSave  MessageType = "save"  // persist the current snapshot
	MsgLoad  MessageType = "load"  // restore the latest snapshot
	MsgPing  MessageType = "ping"  // heartbeat
)

// Server → client events, mirroring the engine's event sink.
const (
	MsgConnected MessageType = "connected" // session created, initial state follows

	MsgCardRevealed   MessageType = "card_revealed"   // draw succeeded
	MsgHandRerendered MessageType = "hand_rerendered" // hand contents or order changed
	MsgComboResolved  MessageType = "combo_resolved"  // a selection was evaluated
	MsgLifeChanged    MessageType = "life_changed"    // new life count
	MsgCoinsChanged   MessageType = "coins_changed"   // new coin total
	MsgDeckExhausted  MessageType = "deck_exhausted"  // supply shortfall
	MsgGameOver       MessageType = "game_over"       // terminal, awaits new_game

	MsgState    MessageType = "state"     // full session state
	MsgLoggedIn MessageType = "logged_in" // login accepted, token issued
	MsgSaved    MessageType = "saved"     // save acknowledged
	MsgLoaded   MessageType = "loaded"    // load applied
	MsgPong     MessageType = "pong"      // heartbeat reply
	MsgError    MessageType = "error"     // structured collaborator failure
)
