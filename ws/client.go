package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var (
	pongWait     = 10 * time.Second
	pingInterval = (pongWait * 9) / 10
)

const maxMessageSize = 512

// Client is the per-connection record: one websocket, one player id minted at
// connect time, and the code of the room the player currently occupies (empty
// until create_room or join_room). roomCode is only written by the client's
// own read goroutine; the serve handler waits on readDone before teardown
// reads it, so the final room association is always observed.
type Client struct {
	ID         string
	roomCode   string
	connection *websocket.Conn
	manager    *Manager
	egress     chan any
	done       chan struct{}
	readDone   chan struct{}
	err        chan error
}

func NewClient(conn *websocket.Conn, manager *Manager) *Client {
	return &Client{
		ID:         uuid.NewString(),
		connection: conn,
		manager:    manager,
		egress:     make(chan any),
		done:       make(chan struct{}),
		readDone:   make(chan struct{}),
		err:        make(chan error, 2), // room for both pumps to report
	}
}

// Send queues a message for delivery on the client's websocket. Fire and
// forget: a send to a client that has already disconnected is skipped.
func (c *Client) Send(message any) {
	select {
	case c.egress <- message:
	case <-c.done:
	}
}

// Err reports the first read or write failure; the serve handler waits on it
// to tear the connection down.
func (c *Client) Err() <-chan error {
	return c.err
}

// Reads incoming frames from the websocket connection and routes them.
// Closing readDone signals that no more handlers will run for this client.
func (c *Client) readMessages(ctx context.Context) {
	defer close(c.readDone)

	c.connection.SetReadLimit(maxMessageSize)

	if err := c.connection.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.handleError(err)
		return
	}

	c.connection.SetPongHandler(c.pongHandler)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			_, payload, err := c.connection.ReadMessage()

			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
					c.manager.logger.WithField("client", c.ID).Warnf("unexpected socket closure: %v", err)
				}
				c.handleError(err)
				return
			}

			if err := c.manager.routeMessage(payload, c); err != nil {
				// a bad frame never kills the connection
				c.manager.logger.WithFields(logrus.Fields{
					"client": c.ID,
					"room":   c.roomCode,
				}).Warnf("dropping message: %v", err)
			}
		}
	}
}

// Writes messages pushed to the client's egress channel.
func (c *Client) writeMessages(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)

	defer func() {
		ticker.Stop()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case message := <-c.egress:
			data, err := json.Marshal(message)

			if err != nil {
				c.handleError(err)
				return
			}

			if err := c.connection.WriteMessage(websocket.TextMessage, data); err != nil {
				c.handleError(err)
				return
			}
		case <-ticker.C:
			if err := c.connection.WriteMessage(websocket.PingMessage, []byte("")); err != nil {
				c.handleError(err)
				return
			}
		}
	}
}

// Sets a new read deadline when a pong is received for a ping message.
func (c *Client) pongHandler(pongMsg string) error {
	return c.connection.SetReadDeadline(time.Now().Add(pongWait))
}

func (c *Client) handleError(e error) {
	c.err <- e
}
