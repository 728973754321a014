package ws

import (
	"encoding/json"
	"errors"
	"strings"
)

// createRoomHandler allocates a room with the sender as host. A client that
// already occupies a room keeps it; the repeat create is dropped.
func createRoomHandler(raw json.RawMessage, c *Client) error {
	if c.roomCode != "" {
		return nil
	}

	room := c.manager.registry.Create(c)
	c.roomCode = room.Code

	c.Send(newRoomCreated(room.Code, c.ID))

	return nil
}

// joinRoomHandler seats the sender as guest. On success both players get
// game_start, host first, with their slot number.
func joinRoomHandler(raw json.RawMessage, c *Client) error {
	var msg JoinRoomMessage

	if err := json.Unmarshal(raw, &msg); err != nil {
		return err
	}

	// codes compare case-insensitively on the wire
	code := strings.ToUpper(msg.RoomCode)

	players, err := c.manager.registry.Join(code, c)

	if errors.Is(err, ErrRoomNotFound) || errors.Is(err, ErrRoomFull) {
		c.Send(newErrorMessage(err.Error()))
		return nil
	}

	if err != nil {
		return err
	}

	c.roomCode = code

	c.Send(newJoinConfirmed(code))

	for i, player := range players {
		player.Send(newGameStart(i+1, len(players)))
	}

	return nil
}

// paddleMoveHandler relays the sender's paddle position to the opponent.
func paddleMoveHandler(raw json.RawMessage, c *Client) error {
	var msg PaddleMoveMessage

	if err := json.Unmarshal(raw, &msg); err != nil {
		return err
	}

	c.relayToOpponent(newOpponentMove(msg.Position))

	return nil
}

// ballUpdateHandler relays the host's ball state to the opponent. The sender
// is trusted; the relay does not verify it is actually the host.
func ballUpdateHandler(raw json.RawMessage, c *Client) error {
	var msg BallUpdateMessage

	if err := json.Unmarshal(raw, &msg); err != nil {
		return err
	}

	c.relayToOpponent(newBallSync(msg.Position, msg.Direction))

	return nil
}

// scoreUpdateHandler stores the reported score pair on the room and mirrors
// it back to both players, sender included.
func scoreUpdateHandler(raw json.RawMessage, c *Client) error {
	var msg ScoreUpdateMessage

	if err := json.Unmarshal(raw, &msg); err != nil {
		return err
	}

	if c.roomCode == "" {
		return nil
	}

	players, ok := c.manager.registry.SetScores(c.roomCode, msg.Scores)

	if !ok {
		return nil
	}

	for _, player := range players {
		player.Send(newScoreSync(msg.Scores))
	}

	return nil
}

// relayToOpponent forwards a message to every player in the sender's room
// except the sender. With no current room it does nothing.
func (c *Client) relayToOpponent(message any) {
	if c.roomCode == "" {
		return
	}

	players, ok := c.manager.registry.Participants(c.roomCode)

	if !ok {
		return
	}

	for _, player := range players {
		if player.ID != c.ID {
			player.Send(message)
		}
	}
}
