package ws

// Message types sent by the game client.
const (
	MessageCreateRoom  = "create_room"
	MessageJoinRoom    = "join_room"
	MessagePaddleMove  = "paddle_move"
	MessageBallUpdate  = "ball_update"
	MessageScoreUpdate = "score_update"
)

// Message types sent to the game client.
const (
	MessageRoomCreated        = "room_created"
	MessageJoinConfirmed      = "join_confirmed"
	MessageGameStart          = "game_start"
	MessageOpponentMove       = "opponent_move"
	MessageBallSync           = "ball_sync"
	MessageScoreSync          = "score_sync"
	MessagePlayerDisconnected = "player_disconnected"
	MessageError              = "error"
)

// envelope is decoded first to pick a handler; the handler decodes the full
// frame into its own message struct.
type envelope struct {
	Type string `json:"type"`
}

type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type JoinRoomMessage struct {
	RoomCode string `json:"roomCode"`
}

type PaddleMoveMessage struct {
	Position Vec2 `json:"position"`
}

type BallUpdateMessage struct {
	Position  Vec3 `json:"position"`
	Direction Vec3 `json:"direction"`
}

type ScoreUpdateMessage struct {
	Scores [2]int `json:"scores"`
}

type RoomCreatedMessage struct {
	Type     string `json:"type"`
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
}

type JoinConfirmedMessage struct {
	Type     string `json:"type"`
	RoomCode string `json:"roomCode"`
}

type GameStartMessage struct {
	Type         string `json:"type"`
	PlayerNumber int    `json:"playerNumber"`
	TotalPlayers int    `json:"totalPlayers"`
}

type OpponentMoveMessage struct {
	Type     string `json:"type"`
	Position Vec2   `json:"position"`
}

type BallSyncMessage struct {
	Type      string `json:"type"`
	Position  Vec3   `json:"position"`
	Direction Vec3   `json:"direction"`
}

type ScoreSyncMessage struct {
	Type   string `json:"type"`
	Scores [2]int `json:"scores"`
}

type PlayerDisconnectedMessage struct {
	Type string `json:"type"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func newRoomCreated(roomCode, playerID string) RoomCreatedMessage {
	return RoomCreatedMessage{Type: MessageRoomCreated, RoomCode: roomCode, PlayerID: playerID}
}

func newJoinConfirmed(roomCode string) JoinConfirmedMessage {
	return JoinConfirmedMessage{Type: MessageJoinConfirmed, RoomCode: roomCode}
}

func newGameStart(playerNumber, totalPlayers int) GameStartMessage {
	return GameStartMessage{Type: MessageGameStart, PlayerNumber: playerNumber, TotalPlayers: totalPlayers}
}

func newOpponentMove(position Vec2) OpponentMoveMessage {
	return OpponentMoveMessage{Type: MessageOpponentMove, Position: position}
}

func newBallSync(position, direction Vec3) BallSyncMessage {
	return BallSyncMessage{Type: MessageBallSync, Position: position, Direction: direction}
}

func newScoreSync(scores [2]int) ScoreSyncMessage {
	return ScoreSyncMessage{Type: MessageScoreSync, Scores: scores}
}

func newPlayerDisconnected() PlayerDisconnectedMessage {
	return PlayerDisconnectedMessage{Type: MessagePlayerDisconnected}
}

func newErrorMessage(message string) ErrorMessage {
	return ErrorMessage{Type: MessageError, Message: message}
}
