package protocol

// CardInfo is the wire representation of a card. Rank and suit are the
// short codes ("A".."K", "S"/"H"/"C"/"D"); Asset carries the derived
// presentation key so thin clients need no mapping tables.
type CardInfo struct {
	ID    string `json:"id"`
	Rank  string `json:"rank"`
	Suit  string `json:"suit"`
	Asset string `json:"asset,omitempty"`
}

// --- Client → server payloads ---

// ReplacePayload names the hand slot the pending card goes into.
type ReplacePayload struct {
	Index int `json:"index"`
}

// ToggleSelectPayload toggles one hand card in the combo selection.
type ToggleSelectPayload struct {
	Index int `json:"index"`
}

// MoveCardPayload swaps two hand positions.
type MoveCardPayload struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// LoginPayload requests an identity token for persistence.
type LoginPayload struct {
	Username string `json:"username"`
	Token    string `json:"token,omitempty"` // re-presenting a prior token
}

// PingPayload carries the client timestamp in milliseconds.
type PingPayload struct {
	Timestamp int64 `json:"timestamp"`
}

// --- Server → client payloads ---

// ConnectedPayload confirms the connection and names the session.
type ConnectedPayload struct {
	SessionID string `json:"session_id"`
}

// CardRevealedPayload carries the freshly drawn pending card.
type CardRevealedPayload struct {
	Card CardInfo `json:"card"`
}

// HandPayload carries the full hand in display order.
type HandPayload struct {
	Hand []CardInfo `json:"hand"`
}

// ComboResolvedPayload reports an evaluated selection.
type ComboResolvedPayload struct {
	Success       bool       `json:"success"`
	Combo         string     `json:"combo"`
	Coins         int        `json:"coins"`
	LivesRestored int        `json:"lives_restored"`
	Removed       []CardInfo `json:"removed,omitempty"`
	Drawn         []CardInfo `json:"drawn,omitempty"`
}

// LifeChangedPayload carries the new life count.
type LifeChangedPayload struct {
	Lives int `json:"lives"`
}

// CoinsChangedPayload carries the new coin total.
type CoinsChangedPayload struct {
	Coins int `json:"coins"`
}

// StatePayload is the full session state for (re)synchronization.
type StatePayload struct {
	Phase         string     `json:"phase"`
	Lives         int        `json:"lives"`
	Coins         int        `json:"coins"`
	Hand          []CardInfo `json:"hand"`
	DeckRemaining int        `json:"deck_remaining"`
	Pending       *CardInfo  `json:"pending,omitempty"`
	Selection     []int      `json:"selection,omitempty"`
	LastDiscard   *CardInfo  `json:"last_discard,omitempty"`
}

// LoggedInPayload returns the issued identity token.
type LoggedInPayload struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// SavedPayload acknowledges a persisted snapshot.
type SavedPayload struct {
	SavedAt int64 `json:"saved_at"` // unix seconds
}

// LoadedPayload reports whether a snapshot existed and was applied.
type LoadedPayload struct {
	Found bool `json:"found"`
}

// PongPayload echoes the ping timestamp.
type PongPayload struct {
	Timestamp int64 `json:"timestamp"`
}

// ErrorPayload is the structured failure surface for collaborator
// errors (storage, identity). Engine rule violations never appear
// here; they are silent no-ops.
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
