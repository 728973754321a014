package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"pongrelay/http_utils"
)

type MessageHandler func(raw json.RawMessage, c *Client) error

// Manager pairs connections into rooms and relays gameplay messages between
// them. The registry is injected so tests can run isolated room tables.
type Manager struct {
	registry *Registry
	clients  map[string]*Client
	handlers map[string]MessageHandler
	upgrader websocket.Upgrader
	validate *validator.Validate
	logger   *logrus.Logger
	sync.RWMutex
}

func NewManager(registry *Registry, allowedOrigins []string, logger *logrus.Logger) *Manager {
	m := &Manager{
		registry: registry,
		clients:  make(map[string]*Client),
		handlers: make(map[string]MessageHandler),
		validate: validator.New(),
		logger:   logger,
	}

	m.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     checkOrigin(allowedOrigins),
	}

	m.setupMessageHandlers()

	return m
}

func (m *Manager) setupMessageHandlers() {
	m.handlers[MessageCreateRoom] = createRoomHandler
	m.handlers[MessageJoinRoom] = joinRoomHandler
	m.handlers[MessagePaddleMove] = paddleMoveHandler
	m.handlers[MessageBallUpdate] = ballUpdateHandler
	m.handlers[MessageScoreUpdate] = scoreUpdateHandler
}

// routeMessage dispatches one inbound frame. Unknown types are dropped
// without a reply; the counterpart client only sends the types above.
func (m *Manager) routeMessage(payload []byte, c *Client) error {
	var env envelope

	if err := json.Unmarshal(payload, &env); err != nil {
		return fmt.Errorf("malformed frame: %w", err)
	}

	handler, ok := m.handlers[env.Type]

	if !ok {
		return nil
	}

	return handler(payload, c)
}

func (m *Manager) addClient(client *Client) {
	m.Lock()
	defer m.Unlock()

	m.clients[client.ID] = client
}

func (m *Manager) removeClient(client *Client) {
	m.Lock()
	defer m.Unlock()

	if _, ok := m.clients[client.ID]; ok {
		client.connection.Close()
		delete(m.clients, client.ID)
	}
}

// teardown runs when a connection is gone for any reason. The client's room,
// if still registered, is discarded immediately and the surviving player is
// told the peer left. Rooms never outlive a disconnect.
func (m *Manager) teardown(client *Client) {
	if client.roomCode != "" {
		if players, ok := m.registry.Remove(client.roomCode); ok {
			for _, player := range players {
				if player.ID != client.ID {
					player.Send(newPlayerDisconnected())
				}
			}

			m.logger.WithFields(logrus.Fields{
				"client": client.ID,
				"room":   client.roomCode,
			}).Info("room discarded")
		}
	}

	m.removeClient(client)
}

// Websocket connection handler.
func (m *Manager) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)

	if err != nil {
		m.logger.Warnf("error upgrading to websocket connection: %v", err)
		return
	}

	client := NewClient(conn, m)
	m.addClient(client)

	m.logger.WithField("client", client.ID).Info("client connected")

	ctx, cancel := context.WithCancel(r.Context())

	defer func() {
		cancel()

		// Unblock in-flight handler sends and the read pump, then wait for
		// the read pump to exit before touching room state: a handler may
		// still be registering a room when the write pump fails, and
		// teardown has to observe that association.
		close(client.done)
		client.connection.Close()
		<-client.readDone

		m.teardown(client)
		m.logger.WithField("client", client.ID).Info("client disconnected")
	}()

	go client.readMessages(ctx)
	go client.writeMessages(ctx)

	err = <-client.Err()

	m.logger.WithField("client", client.ID).Debugf("connection closed: %v", err)
}

type checkRoomRequest struct {
	Code string `validate:"required,len=6,alphanum"`
}

// CheckRoom lets the client probe a room code over plain HTTP before opening
// a socket: 200 when the room exists with a free slot, 400 otherwise.
func (m *Manager) CheckRoom(w http.ResponseWriter, r *http.Request) {
	req := checkRoomRequest{
		Code: strings.ToUpper(r.URL.Query().Get("code")),
	}

	if vErr := http_utils.ValidateStruct(m.validate, req); len(vErr.Errors) > 0 {
		http_utils.SendResponse(w, http.StatusBadRequest, vErr)
		return
	}

	players, ok := m.registry.Participants(req.Code)

	if !ok {
		http_utils.SendResponse(w, http.StatusBadRequest, http_utils.NewBaseResponse(false, ErrRoomNotFound.Error()))
		return
	}

	if len(players) >= maxRoomPlayers {
		http_utils.SendResponse(w, http.StatusBadRequest, http_utils.NewBaseResponse(false, ErrRoomFull.Error()))
		return
	}

	http_utils.SendResponse(w, http.StatusOK, http_utils.DataResponse{
		BaseResponse: http_utils.NewBaseResponse(true, "Room is open"),
		Data: map[string]any{
			"code": req.Code,
		},
	})
}

// checkOrigin admits configured browser origins. Requests without an Origin
// header (non-browser clients) pass through.
func checkOrigin(allowedOrigins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")

		if origin == "" {
			return true
		}

		return lo.Contains(allowedOrigins, origin)
	}
}
