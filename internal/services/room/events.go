package room

import (
	"context"

	"github.com/samber/lo"

	"github.com/KirkDiggler/colorcubes/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_publisher.go github.com/KirkDiggler/colorcubes/internal/services/room Publisher

// Publisher delivers outbound events to connections. The transport layer
// implements it; the service never sees sockets.
type Publisher interface {
	// Broadcast sends an event to every connection subscribed to a room
	Broadcast(ctx context.Context, passcode string, event *Event)

	// SendTo sends an event to a single connection handle
	SendTo(ctx context.Context, handleID string, event *Event)

	// CloseRoom tears down a room's broadcast group after its final event
	CloseRoom(ctx context.Context, passcode string)
}

// EventType identifies an outbound event
type EventType string

const (
	EventGameCreated  EventType = "gameCreated"
	EventGameJoined   EventType = "gameJoined"
	EventPlayerUpdate EventType = "playerUpdate"
	EventRollResult   EventType = "rollResult"
	EventGameReset    EventType = "gameReset"
	EventGameOver     EventType = "gameOver"
	EventRoomClosed   EventType = "roomClosed"
	EventRollHistory  EventType = "rollHistory"
	EventError        EventType = "error"
)

// Event is a single outbound message. Data marshals as the event payload.
type Event struct {
	Type EventType `json:"type"`
	Data any       `json:"data,omitempty"`
}

// PlayerView is the wire representation of a player
type PlayerView struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Money     int                  `json:"money"`
	Bets      map[models.Color]int `json:"bets"`
	Ready     bool                 `json:"ready"`
	Connected bool                 `json:"connected"`
}

// WinnerView is the wire representation of one settlement winner
type WinnerView struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Winnings int    `json:"winnings"`
}

// GameCreatedPayload answers a successful createRoom
type GameCreatedPayload struct {
	Passcode  string               `json:"passcode"`
	PlayerID  string               `json:"playerId"`
	OwnerID   string               `json:"ownerId"`
	Players   []PlayerView         `json:"players"`
	PotMoney  int                  `json:"potMoney"`
	TotalBets map[models.Color]int `json:"totalBets"`
}

// GameJoinedPayload answers a successful joinRoom
type GameJoinedPayload struct {
	Passcode  string               `json:"passcode"`
	PlayerID  string               `json:"playerId"`
	OwnerID   string               `json:"ownerId"`
	Players   []PlayerView         `json:"players"`
	PotMoney  int                  `json:"potMoney"`
	TotalBets map[models.Color]int `json:"totalBets"`
}

// PlayerUpdatePayload is the authoritative room state push sent after
// every mutation
type PlayerUpdatePayload struct {
	Players   []PlayerView         `json:"players"`
	PotMoney  int                  `json:"potMoney"`
	TotalBets map[models.Color]int `json:"totalBets"`
}

// RollResultPayload carries one settled roll
type RollResultPayload struct {
	Cubes     []models.Color       `json:"cubes"`
	Players   []PlayerView         `json:"players"`
	PotMoney  int                  `json:"potMoney"`
	TotalBets map[models.Color]int `json:"totalBets"`
	Winners   []WinnerView         `json:"winners"`
}

// GameResetPayload carries the post-reset snapshot
type GameResetPayload struct {
	Players   []PlayerView         `json:"players"`
	PotMoney  int                  `json:"potMoney"`
	TotalBets map[models.Color]int `json:"totalBets"`
}

// RollRecordView is the wire representation of one historical roll
type RollRecordView struct {
	Cubes     []models.Color `json:"cubes"`
	Winners   []WinnerView   `json:"winners"`
	PotAfter  int            `json:"potAfter"`
	Timestamp int64          `json:"timestamp"`
}

// RollHistoryPayload answers a rollHistory query
type RollHistoryPayload struct {
	Passcode string           `json:"passcode"`
	Records  []RollRecordView `json:"records"`
}

// ErrorPayload is sent to the requesting connection only
type ErrorPayload struct {
	Message string `json:"message"`
}

func playersView(room *models.Room) []PlayerView {
	return lo.Map(room.Players, func(p *models.Player, _ int) PlayerView {
		return PlayerView{
			ID:        p.ID,
			Name:      p.Name,
			Money:     p.Money,
			Bets:      p.Bets,
			Ready:     p.Ready,
			Connected: p.Connected(),
		}
	})
}

func winnersView(winners []*models.Winner) []WinnerView {
	return lo.Map(winners, func(w *models.Winner, _ int) WinnerView {
		return WinnerView{
			PlayerID: w.PlayerID,
			Name:     w.Name,
			Winnings: w.Winnings,
		}
	})
}

func playerUpdateEvent(room *models.Room) *Event {
	return &Event{
		Type: EventPlayerUpdate,
		Data: PlayerUpdatePayload{
			Players:   playersView(room),
			PotMoney:  room.PotMoney,
			TotalBets: room.TotalBets,
		},
	}
}
