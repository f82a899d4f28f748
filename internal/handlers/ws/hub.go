package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/colorcubes/internal/common/uuid"
	roomService "github.com/KirkDiggler/colorcubes/internal/services/room"
)

var errMalformedMessage = errors.New("malformed message")

// Config holds the configuration for the hub
type Config struct {
	// Logger for connection lifecycle and dispatch problems
	Logger *log.Logger

	// UUIDGenerator mints connection handle IDs
	UUIDGenerator uuid.UUID
}

// Hub owns every live connection and the room broadcast groups. It is the
// transport side of the session engine: inbound frames dispatch into the
// service, and the service publishes back through the Publisher methods.
type Hub struct {
	logger   *log.Logger
	uuid     uuid.UUID
	upgrader websocket.Upgrader

	service roomService.Service

	mu      sync.RWMutex
	clients map[string]*Client
	rooms   map[string]map[string]*Client
}

// New creates a new hub
func New(cfg *Config) (*Hub, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.New()
	}

	return &Hub{
		logger: cfg.Logger.WithPrefix("hub"),
		uuid:   gen,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Clients are served from arbitrary hosts in development.
				return true
			},
		},
		clients: make(map[string]*Client),
		rooms:   make(map[string]map[string]*Client),
	}, nil
}

// SetService binds the session engine after construction. The hub is the
// engine's Publisher, so the two cannot be built in one step.
func (h *Hub) SetService(svc roomService.Service) {
	h.service = svc
}

// HandleWS upgrades an HTTP request and starts the connection pumps
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("upgrade failed", "error", err)
		return
	}

	client := newClient(h, conn, h.uuid.NewUUID(), h.logger)

	h.mu.Lock()
	h.clients[client.handleID] = client
	h.mu.Unlock()

	h.logger.Info("connection opened", "handle", client.handleID)

	go client.writePump()
	go client.readPump()
}

// dispatch decodes one command and routes it into the session engine.
// Rejections come back as error events to the sender only.
func (h *Hub) dispatch(client *Client, msg *Message) {
	ctx := context.Background()

	var err error
	switch msg.Type {
	case MessageTypeCreateRoom:
		var p CreateRoomPayload
		if err = json.Unmarshal(msg.Data, &p); err != nil {
			break
		}
		var out *roomService.CreateRoomOutput
		out, err = h.service.CreateRoom(ctx, &roomService.CreateRoomInput{
			HandleID:     client.handleID,
			Name:         p.Name,
			InitialMoney: p.InitialMoney,
			PotMoney:     p.PotMoney,
			PlayerID:     p.PlayerID,
		})
		if err == nil {
			h.subscribe(out.Passcode, client)
		}

	case MessageTypeJoinRoom:
		var p JoinRoomPayload
		if err = json.Unmarshal(msg.Data, &p); err != nil {
			break
		}
		var out *roomService.JoinRoomOutput
		out, err = h.service.JoinRoom(ctx, &roomService.JoinRoomInput{
			HandleID: client.handleID,
			Name:     p.Name,
			Passcode: p.Passcode,
			PlayerID: p.PlayerID,
		})
		if err == nil {
			h.subscribe(out.Passcode, client)
		}

	case MessageTypePlaceBet:
		var p PlaceBetPayload
		if err = json.Unmarshal(msg.Data, &p); err != nil {
			break
		}
		_, err = h.service.PlaceBet(ctx, &roomService.PlaceBetInput{
			HandleID: client.handleID,
			Passcode: p.Passcode,
			Color:    p.Color,
			Amount:   p.Amount,
		})

	case MessageTypeResetBets:
		var p RoomPayload
		if err = json.Unmarshal(msg.Data, &p); err != nil {
			break
		}
		_, err = h.service.ResetBets(ctx, &roomService.ResetBetsInput{
			HandleID: client.handleID,
			Passcode: p.Passcode,
		})

	case MessageTypeToggleReady:
		var p RoomPayload
		if err = json.Unmarshal(msg.Data, &p); err != nil {
			break
		}
		_, err = h.service.ToggleReady(ctx, &roomService.ToggleReadyInput{
			HandleID: client.handleID,
			Passcode: p.Passcode,
		})

	case MessageTypeRollCubes:
		var p RoomPayload
		if err = json.Unmarshal(msg.Data, &p); err != nil {
			break
		}
		_, err = h.service.RollCubes(ctx, &roomService.RollCubesInput{
			HandleID: client.handleID,
			Passcode: p.Passcode,
		})

	case MessageTypeResetGame:
		var p RoomPayload
		if err = json.Unmarshal(msg.Data, &p); err != nil {
			break
		}
		_, err = h.service.ResetGame(ctx, &roomService.ResetGameInput{
			HandleID: client.handleID,
			Passcode: p.Passcode,
		})

	case MessageTypeGiveCoins:
		var p GiveCoinsPayload
		if err = json.Unmarshal(msg.Data, &p); err != nil {
			break
		}
		_, err = h.service.GiveCoins(ctx, &roomService.GiveCoinsInput{
			HandleID:   client.handleID,
			Passcode:   p.Passcode,
			ToPlayerID: p.ToPlayerID,
			Amount:     p.Amount,
		})

	case MessageTypeRollHistory:
		var p RollHistoryPayload
		if err = json.Unmarshal(msg.Data, &p); err != nil {
			break
		}
		_, err = h.service.RollHistory(ctx, &roomService.RollHistoryInput{
			HandleID: client.handleID,
			Passcode: p.Passcode,
			Limit:    p.Limit,
		})

	default:
		err = errors.New("unknown command")
	}

	if err != nil {
		h.logger.Debug("command rejected", "type", msg.Type, "handle", client.handleID, "error", err)
		h.sendError(client, err)
	}
}

// subscribe adds a client to a room's broadcast group
func (h *Hub) subscribe(passcode string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	group, ok := h.rooms[passcode]
	if !ok {
		group = make(map[string]*Client)
		h.rooms[passcode] = group
	}
	group[client.handleID] = client
}

// dropClient removes a dead connection everywhere and tells the engine
func (h *Hub) dropClient(client *Client) {
	h.mu.Lock()
	delete(h.clients, client.handleID)
	for _, group := range h.rooms {
		delete(group, client.handleID)
	}
	h.mu.Unlock()

	client.close()
	_ = client.conn.Close()

	h.logger.Info("connection closed", "handle", client.handleID)

	if _, err := h.service.Disconnect(context.Background(), &roomService.DisconnectInput{
		HandleID: client.handleID,
	}); err != nil {
		h.logger.Error("disconnect handling failed", "handle", client.handleID, "error", err)
	}
}

// sendError answers the sender with an error event
func (h *Hub) sendError(client *Client, err error) {
	h.deliver(client, &roomService.Event{
		Type: roomService.EventError,
		Data: roomService.ErrorPayload{Message: err.Error()},
	})
}

func (h *Hub) deliver(client *Client, event *roomService.Event) {
	frame, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("marshal event failed", "type", event.Type, "error", err)
		return
	}
	client.enqueue(frame)
}

// Broadcast sends an event to every connection subscribed to a room.
// Implements roomService.Publisher.
func (h *Hub) Broadcast(ctx context.Context, passcode string, event *roomService.Event) {
	h.mu.RLock()
	group := make([]*Client, 0, len(h.rooms[passcode]))
	for _, client := range h.rooms[passcode] {
		group = append(group, client)
	}
	h.mu.RUnlock()

	for _, client := range group {
		h.deliver(client, event)
	}
}

// SendTo sends an event to a single connection handle.
// Implements roomService.Publisher.
func (h *Hub) SendTo(ctx context.Context, handleID string, event *roomService.Event) {
	h.mu.RLock()
	client, ok := h.clients[handleID]
	h.mu.RUnlock()

	if !ok {
		return
	}
	h.deliver(client, event)
}

// CloseRoom drops a room's broadcast group. Connections stay open; they
// just stop receiving that room's events.
// Implements roomService.Publisher.
func (h *Hub) CloseRoom(ctx context.Context, passcode string) {
	h.mu.Lock()
	delete(h.rooms, passcode)
	h.mu.Unlock()
}
