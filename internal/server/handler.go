package server

import (
	"context"
	"log"
	"time"

	"github.com/Reinaldo-Kn/pifatro/internal/apperrors"
	"github.com/Reinaldo-Kn/pifatro/internal/protocol"
	"github.com/Reinaldo-Kn/pifatro/internal/protocol/encoding"
)

const storeTimeout = 5 * time.Second

// dispatch routes one intent. Game intents go straight to the engine,
// which already no-ops anything illegal in the current phase; only
// persistence and identity intents can produce error replies.
func (c *Client) dispatch(msg *protocol.Message) {
	switch msg.Type {
	case protocol.MsgDraw:
		c.sess.Draw()

	case protocol.MsgReplace:
		payload, err := encoding.ParsePayload[protocol.ReplacePayload](msg)
		if err != nil {
			c.SendMessage(encoding.NewErrorMessage(protocol.ErrCodeInvalidMsg))
			return
		}
		c.sess.Replace(payload.Index)

	case protocol.MsgDiscard:
		c.sess.Discard()

	case protocol.MsgToggleSelect:
		payload, err := encoding.ParsePayload[protocol.ToggleSelectPayload](msg)
		if err != nil {
			c.SendMessage(encoding.NewErrorMessage(protocol.ErrCodeInvalidMsg))
			return
		}
		c.sess.ToggleSelect(payload.Index)

	case protocol.MsgMoveCard:
		payload, err := encoding.ParsePayload[protocol.MoveCardPayload](msg)
		if err != nil {
			c.SendMessage(encoding.NewErrorMessage(protocol.ErrCodeInvalidMsg))
			return
		}
		c.sess.MoveCard(payload.From, payload.To)

	case protocol.MsgNewGame:
		c.sess.NewGame()
		c.sendState()

	case protocol.MsgLogin:
		c.handleLogin(msg)

	case protocol.MsgSave:
		c.handleSave()

	case protocol.MsgLoad:
		c.handleLoad()

	case protocol.MsgPing:
		payload, _ := encoding.ParsePayload[protocol.PingPayload](msg)
		c.SendMessage(encoding.MustNewMessage(protocol.MsgPong, protocol.PongPayload{
			Timestamp: payload.Timestamp,
		}))

	default:
		c.SendMessage(encoding.NewErrorMessage(protocol.ErrCodeInvalidMsg))
	}
}

// handleLogin verifies or issues a token and then restores the user's
// saved game, if any. Load at this point is the session-boundary load:
// a failure leaves the freshly dealt session in place.
func (c *Client) handleLogin(msg *protocol.Message) {
	payload, err := encoding.ParsePayload[protocol.LoginPayload](msg)
	if err != nil {
		c.SendMessage(encoding.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	var username, token string
	switch {
	case payload.Token != "":
		username, err = c.server.tokens.Verify(payload.Token)
		if err != nil {
			c.SendMessage(encoding.NewErrorMessage(apperrors.CodeOf(err, protocol.ErrCodeBadToken)))
			return
		}
		token = payload.Token
	case payload.Username != "":
		username = payload.Username
		token, err = c.server.tokens.Issue(username)
		if err != nil {
			log.Printf("client %s token issue failed: %v", c.ID, err)
			c.SendMessage(encoding.NewErrorMessage(protocol.ErrCodeUnknown))
			return
		}
	default:
		c.SendMessage(encoding.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	c.user = username
	c.SendMessage(encoding.MustNewMessage(protocol.MsgLoggedIn, protocol.LoggedInPayload{
		Username: username,
		Token:    token,
	}))

	c.handleLoad()
}

// handleSave persists the current snapshot. The in-memory session is
// the source of truth; a failed save changes nothing.
func (c *Client) handleSave() {
	if c.user == "" {
		c.SendMessage(encoding.NewErrorMessage(protocol.ErrCodeNotLoggedIn))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := c.server.store.SaveState(ctx, c.user, c.sess.Snapshot()); err != nil {
		log.Printf("client %s save failed: %v", c.ID, err)
		c.SendMessage(encoding.NewErrorMessage(apperrors.CodeOf(err, protocol.ErrCodeStoreFailed)))
		return
	}

	c.SendMessage(encoding.MustNewMessage(protocol.MsgSaved, protocol.SavedPayload{
		SavedAt: time.Now().Unix(),
	}))
}

// handleLoad restores the latest saved snapshot. A missing save is not
// an error; a storage failure or malformed snapshot leaves the session
// at its prior state.
func (c *Client) handleLoad() {
	if c.user == "" {
		c.SendMessage(encoding.NewErrorMessage(protocol.ErrCodeNotLoggedIn))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	snap, err := c.server.store.LoadState(ctx, c.user)
	if err != nil {
		log.Printf("client %s load failed: %v", c.ID, err)
		c.SendMessage(encoding.NewErrorMessage(apperrors.CodeOf(err, protocol.ErrCodeStoreFailed)))
		return
	}
	if snap == nil {
		c.SendMessage(encoding.MustNewMessage(protocol.MsgLoaded, protocol.LoadedPayload{Found: false}))
		return
	}

	if err := c.sess.Restore(*snap); err != nil {
		log.Printf("client %s restore failed: %v", c.ID, err)
		c.SendMessage(encoding.NewErrorMessage(protocol.ErrCodeStoreFailed))
		return
	}

	c.SendMessage(encoding.MustNewMessage(protocol.MsgLoaded, protocol.LoadedPayload{Found: true}))
	c.sendState()
}
