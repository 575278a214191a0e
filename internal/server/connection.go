package server

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Reinaldo-Kn/pifatro/internal/game/session"
	"github.com/Reinaldo-Kn/pifatro/internal/protocol"
	"github.com/Reinaldo-Kn/pifatro/internal/protocol/encoding"
)

// Client is one connection and the session it owns. All engine calls
// happen on the read-loop goroutine, so the session needs no locking;
// only the outbound writer is shared (sink events and pongs).
type Client struct {
	ID     string
	server *Server
	conn   *websocket.Conn
	sess   *session.Session

	// user is the verified identity, empty while in guest mode.
	user string

	writeMu   sync.Mutex
	closeOnce sync.Once
}

// NewClient creates the client and its dedicated engine session.
func NewClient(s *Server, conn *websocket.Conn) *Client {
	c := &Client{
		ID:     uuid.NewString(),
		server: s,
		conn:   conn,
	}
	c.sess = session.New(session.Options{
		HandSize:      s.config.Game.HandSize,
		StartingLives: s.config.Game.StartingLives,
		Sink:          &wsSink{client: c},
	})
	return c
}

// Run reads intents until the connection drops.
func (c *Client) Run() {
	defer c.Close()

	c.SendMessage(encoding.MustNewMessage(protocol.MsgConnected, protocol.ConnectedPayload{
		SessionID: c.sess.ID(),
	}))
	c.sendState()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("client %s read error: %v", c.ID, err)
			}
			return
		}

		msg, err := encoding.Decode(data)
		if err != nil {
			c.SendMessage(encoding.NewErrorMessage(protocol.ErrCodeInvalidMsg))
			continue
		}

		c.dispatch(msg)
	}
}

// SendMessage writes one frame, safe for concurrent callers.
func (c *Client) SendMessage(msg *protocol.Message) {
	data, err := encoding.Encode(msg)
	if err != nil {
		log.Printf("client %s encode error: %v", c.ID, err)
		return
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("client %s write error: %v", c.ID, err)
	}
}

// Close tears the connection down and unregisters the client.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		_ = c.conn.Close()
		c.server.unregisterClient(c)
	})
}

// sendState pushes the full session state for (re)synchronization.
func (c *Client) sendState() {
	st := protocol.StatePayload{
		Phase:         c.sess.Phase().String(),
		Lives:         c.sess.Lives(),
		Coins:         c.sess.Coins(),
		Hand:          protocol.ToCardInfos(c.sess.Hand()),
		DeckRemaining: c.sess.DeckRemaining(),
		Selection:     c.sess.Selection(),
	}
	if pending, ok := c.sess.Pending(); ok {
		info := protocol.ToCardInfo(pending)
		st.Pending = &info
	}
	if last, ok := c.sess.LastDiscard(); ok {
		info := protocol.ToCardInfo(last)
		st.LastDiscard = &info
	}
	c.SendMessage(encoding.MustNewMessage(protocol.MsgState, st))
}
