package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	writeWait      = 10 * time.Second
	pingInterval   = 30 * time.Second
	maxMessageSize = 4096
	sendBufSize    = 64
)

// Client es una conexión websocket de un usuario.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID string

	send chan []byte
	done chan struct{}
	once sync.Once
}

func newClient(hub *Hub, conn *websocket.Conn, userID string) *Client {
	conn.SetReadLimit(maxMessageSize)
	return &Client{
		hub:    hub,
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, sendBufSize),
		done:   make(chan struct{}),
	}
}

// enqueue devuelve false si el buffer está lleno o el cliente ya cerró.
func (c *Client) enqueue(data []byte) bool {
	select {
	case <-c.done:
		return true
	default:
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.once.Do(func() { close(c.done) })
}

// readPump solo atiende ping/pong de aplicación; cualquier error cierra la conexión.
func (c *Client) readPump(ctx context.Context) {
	defer c.hub.unregister(c)

	for {
		var evt Event
		if err := wsjson.Read(ctx, c.conn, &evt); err != nil {
			if websocket.CloseStatus(err) == -1 {
				c.hub.log.Debug("ws read error", map[string]any{"user_id": c.userID, "error": err})
			}
			return
		}

		switch evt.Type {
		case EventTypePing:
			c.reply(EventTypePong, nil)
		default:
			c.reply(EventTypeError, ErrorPayload{Code: "UNKNOWN_EVENT", Message: "unknown event type: " + evt.Type})
		}
	}
}

// writePump es el único que escribe en conn.
func (c *Client) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case msg := <-c.send:
			wctx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Write(wctx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				c.hub.log.Debug("ws write error", map[string]any{"user_id": c.userID, "error": err})
				c.hub.unregister(c)
				return
			}

		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pctx)
			cancel()
			if err != nil {
				c.hub.unregister(c)
				return
			}

		case <-c.done:
			return
		case <-ctx.Done():
			c.hub.unregister(c)
			return
		}
	}
}

func (c *Client) reply(eventType string, payload any) {
	evt, err := NewEvent(eventType, payload)
	if err != nil {
		return
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return
	}
	c.enqueue(data)
}
