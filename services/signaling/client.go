package signaling

import (
	"time"

	"lexhub/utils"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 64 * 1024
)

// Client is one WebSocket participant in a signaling room.
type Client struct {
	RoomID string
	UserID string
	Conn   *websocket.Conn
	Hub    *Hub
	Send   chan Envelope
}

// NewClient wraps an upgraded connection for a room participant.
func NewClient(hub *Hub, conn *websocket.Conn, roomID, userID string) *Client {
	return &Client{
		RoomID: roomID,
		UserID: userID,
		Conn:   conn,
		Hub:    hub,
		Send:   make(chan Envelope, 256),
	}
}

// ReadPump reads envelopes from the socket and hands them to the hub
// until the connection drops.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Leave(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var env Envelope
		if err := c.Conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				utils.GetLogger().Warn("Signaling read error",
					zap.String("roomID", c.RoomID), zap.Error(err))
			}
			return
		}
		switch env.Type {
		case TypeOffer, TypeAnswer, TypeICECandidate, TypeChatMessage:
			c.Hub.Relay(c, env)
		default:
			utils.GetLogger().Debug("Ignoring unknown signaling message",
				zap.String("type", env.Type), zap.String("roomID", c.RoomID))
		}
	}
}

// WritePump drains the send channel onto the socket and keeps the
// connection alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case env, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteJSON(env); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
