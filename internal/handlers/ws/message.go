package ws

import (
	"encoding/json"

	"github.com/KirkDiggler/colorcubes/internal/models"
)

// MessageType identifies an inbound command
type MessageType string

const (
	MessageTypeCreateRoom  MessageType = "createRoom"
	MessageTypeJoinRoom    MessageType = "joinRoom"
	MessageTypePlaceBet    MessageType = "placeBet"
	MessageTypeResetBets   MessageType = "resetBets"
	MessageTypeToggleReady MessageType = "toggleReady"
	MessageTypeRollCubes   MessageType = "rollCubes"
	MessageTypeResetGame   MessageType = "resetGame"
	MessageTypeGiveCoins   MessageType = "giveCoins"
	MessageTypeRollHistory MessageType = "rollHistory"
)

// Message is the inbound command envelope. Data is decoded per Type after
// dispatch.
type Message struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// CreateRoomPayload carries a createRoom command
type CreateRoomPayload struct {
	Name         string `json:"name"`
	InitialMoney int    `json:"initialMoney"`
	PotMoney     int    `json:"potMoney"`
	PlayerID     string `json:"playerId,omitempty"`
}

// JoinRoomPayload carries a joinRoom command
type JoinRoomPayload struct {
	Name     string `json:"name"`
	Passcode string `json:"passcode"`
	PlayerID string `json:"playerId,omitempty"`
}

// PlaceBetPayload carries a placeBet command
type PlaceBetPayload struct {
	Passcode string       `json:"passcode"`
	Color    models.Color `json:"color"`
	Amount   int          `json:"amount"`
}

// RoomPayload carries commands that only name a room
type RoomPayload struct {
	Passcode string `json:"passcode"`
}

// GiveCoinsPayload carries a giveCoins command
type GiveCoinsPayload struct {
	Passcode   string `json:"passcode"`
	ToPlayerID string `json:"toPlayerId"`
	Amount     int    `json:"amount"`
}

// RollHistoryPayload carries a rollHistory query
type RollHistoryPayload struct {
	Passcode string `json:"passcode"`
	Limit    int    `json:"limit,omitempty"`
}
