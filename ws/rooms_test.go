package ws

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryCreate(t *testing.T) {
	registry := NewRegistry()

	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		host := &Client{ID: fmt.Sprintf("host-%d", i)}
		room := registry.Create(host)

		require.Regexp(t, "^[A-Z0-9]{6}$", room.Code)
		require.False(t, seen[room.Code], "duplicate room code %v", room.Code)
		seen[room.Code] = true

		players, ok := registry.Participants(room.Code)
		require.True(t, ok)
		require.Equal(t, []*Client{host}, players)
	}
}

func TestGenerateRoomCodeCoversCharset(t *testing.T) {
	counts := make(map[byte]int)

	for i := 0; i < 500; i++ {
		for _, ch := range []byte(generateRoomCode()) {
			counts[ch]++
		}
	}

	// every charset character shows up across 3000 drawn characters
	for i := 0; i < len(roomCodeCharset); i++ {
		require.Contains(t, counts, roomCodeCharset[i])
	}
	require.Len(t, counts, len(roomCodeCharset))
}

func TestRegistryJoin(t *testing.T) {
	registry := NewRegistry()

	host := &Client{ID: "host"}
	guest := &Client{ID: "guest"}

	room := registry.Create(host)

	t.Run("unknown code", func(t *testing.T) {
		_, err := registry.Join("ZZZZZZ", guest)
		require.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("seats guest in slot 2", func(t *testing.T) {
		players, err := registry.Join(room.Code, guest)
		require.NoError(t, err)
		require.Equal(t, []*Client{host, guest}, players)
	})

	t.Run("full room rejects a third player", func(t *testing.T) {
		_, err := registry.Join(room.Code, &Client{ID: "third"})
		require.ErrorIs(t, err, ErrRoomFull)

		players, ok := registry.Participants(room.Code)
		require.True(t, ok)
		require.Equal(t, []*Client{host, guest}, players)
	})
}

func TestRegistrySetScores(t *testing.T) {
	registry := NewRegistry()

	host := &Client{ID: "host"}
	room := registry.Create(host)

	players, ok := registry.SetScores(room.Code, [2]int{3, 1})
	require.True(t, ok)
	require.Equal(t, []*Client{host}, players)
	require.Equal(t, [2]int{3, 1}, room.scores)

	_, ok = registry.SetScores("ZZZZZZ", [2]int{1, 0})
	require.False(t, ok)
}

func TestRegistryRemove(t *testing.T) {
	registry := NewRegistry()

	host := &Client{ID: "host"}
	room := registry.Create(host)

	players, ok := registry.Remove(room.Code)
	require.True(t, ok)
	require.Equal(t, []*Client{host}, players)

	_, ok = registry.Participants(room.Code)
	require.False(t, ok)

	_, ok = registry.Remove(room.Code)
	require.False(t, ok)
}
