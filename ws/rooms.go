package ws

import (
	"crypto/rand"
	"errors"
	"sync"
)

const (
	roomCodeLength  = 6
	roomCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	maxRoomPlayers = 2
)

// Error strings double as the user-facing message field of error frames.
var (
	ErrRoomNotFound = errors.New("Room not found")
	ErrRoomFull     = errors.New("Room is full")
)

// Room is a matched pair (or pending single) of players sharing one game
// session. Slot order is the role assignment: players[0] is the host
// (player 1), players[1] the guest (player 2). Scores hold the last pair
// reported by the host.
type Room struct {
	Code    string
	players []*Client
	scores  [2]int
}

// Registry owns the table of active rooms. All room state (the table itself,
// each room's player list and scores) is guarded by the embedded mutex, so
// handlers running on different connection goroutines can touch the same room
// safely. Codes are stored upper-case; callers normalize before lookup.
type Registry struct {
	rooms map[string]*Room
	sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]*Room),
	}
}

// Create allocates a fresh room with host in slot 1. Code generation retries
// inside the lock until the code is unused.
func (r *Registry) Create(host *Client) *Room {
	r.Lock()
	defer r.Unlock()

	var code string
	for {
		code = generateRoomCode()
		if _, taken := r.rooms[code]; !taken {
			break
		}
	}

	room := &Room{
		Code:    code,
		players: []*Client{host},
	}
	r.rooms[code] = room

	return room
}

// Join appends guest as slot 2 and returns the resulting player snapshot,
// host first. Fails with ErrRoomNotFound or ErrRoomFull.
func (r *Registry) Join(code string, guest *Client) ([]*Client, error) {
	r.Lock()
	defer r.Unlock()

	room, ok := r.rooms[code]
	if !ok {
		return nil, ErrRoomNotFound
	}

	if len(room.players) >= maxRoomPlayers {
		return nil, ErrRoomFull
	}

	room.players = append(room.players, guest)

	return append([]*Client(nil), room.players...), nil
}

// Participants returns a snapshot of the room's players in slot order.
func (r *Registry) Participants(code string) ([]*Client, bool) {
	r.RLock()
	defer r.RUnlock()

	room, ok := r.rooms[code]
	if !ok {
		return nil, false
	}

	return append([]*Client(nil), room.players...), true
}

// SetScores records the last authoritative score pair and returns the player
// snapshot for the broadcast.
func (r *Registry) SetScores(code string, scores [2]int) ([]*Client, bool) {
	r.Lock()
	defer r.Unlock()

	room, ok := r.rooms[code]
	if !ok {
		return nil, false
	}

	room.scores = scores

	return append([]*Client(nil), room.players...), true
}

// Remove deletes the room unconditionally and returns the players that were
// in it, so the caller can notify the survivor.
func (r *Registry) Remove(code string) ([]*Client, bool) {
	r.Lock()
	defer r.Unlock()

	room, ok := r.rooms[code]
	if !ok {
		return nil, false
	}

	delete(r.rooms, code)

	return room.players, true
}

func generateRoomCode() string {
	// rejection sampling: bytes at or above the largest multiple of the
	// charset size would skew the distribution toward its first characters
	limit := byte(256 - 256%len(roomCodeCharset))

	code := make([]byte, 0, roomCodeLength)
	buf := make([]byte, roomCodeLength)

	for len(code) < roomCodeLength {
		if _, err := rand.Read(buf); err != nil {
			panic(err)
		}

		for _, v := range buf {
			if v >= limit {
				continue
			}

			code = append(code, roomCodeCharset[int(v)%len(roomCodeCharset)])

			if len(code) == roomCodeLength {
				break
			}
		}
	}

	return string(code)
}
