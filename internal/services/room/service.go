package room

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/colorcubes/internal/common/clock"
	"github.com/KirkDiggler/colorcubes/internal/common/passcode"
	"github.com/KirkDiggler/colorcubes/internal/common/uuid"
	"github.com/KirkDiggler/colorcubes/internal/dice"
	"github.com/KirkDiggler/colorcubes/internal/models"
	historyRepo "github.com/KirkDiggler/colorcubes/internal/repositories/history"
	roomRepo "github.com/KirkDiggler/colorcubes/internal/repositories/room"
)

const (
	defaultMaxPlayers       = 10
	defaultPasscodeAttempts = 10
	defaultHistoryLimit     = 20
	cubeSides               = 6
)

// service implements the Service interface
type service struct {
	maxPlayers       int
	payoutPolicy     PayoutPolicy
	passcodeAttempts int

	roomRepo    roomRepo.Repository
	historyRepo historyRepo.Repository

	publisher   Publisher
	diceRoller  dice.Roller
	clock       clock.Clock
	uuid        uuid.UUID
	passcodeGen passcode.Generator

	// Per-room named locks give each room the run-to-completion property:
	// lookup, mutation, and broadcast happen as one critical section.
	mu        sync.Mutex
	roomLocks map[string]*sync.Mutex
}

// New creates a new room service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RoomRepo == nil {
		return nil, errors.New("room repository cannot be nil")
	}

	if cfg.HistoryRepo == nil {
		return nil, errors.New("history repository cannot be nil")
	}

	if cfg.Publisher == nil {
		return nil, errors.New("publisher cannot be nil")
	}

	if cfg.DiceRoller == nil {
		return nil, errors.New("dice roller cannot be nil")
	}

	s := &service{
		maxPlayers:       cfg.MaxPlayers,
		payoutPolicy:     cfg.PayoutPolicy,
		passcodeAttempts: cfg.PasscodeAttempts,
		roomRepo:         cfg.RoomRepo,
		historyRepo:      cfg.HistoryRepo,
		publisher:        cfg.Publisher,
		diceRoller:       cfg.DiceRoller,
		clock:            cfg.Clock,
		uuid:             cfg.UUIDGenerator,
		passcodeGen:      cfg.PasscodeGenerator,
		roomLocks:        make(map[string]*sync.Mutex),
	}

	if s.maxPlayers <= 0 {
		s.maxPlayers = defaultMaxPlayers
	}
	if s.payoutPolicy == "" {
		s.payoutPolicy = PayoutStakeRefund
	}
	if s.passcodeAttempts <= 0 {
		s.passcodeAttempts = defaultPasscodeAttempts
	}
	if s.clock == nil {
		s.clock = &clock.DefaultClock{}
	}
	if s.uuid == nil {
		s.uuid = uuid.New()
	}
	if s.passcodeGen == nil {
		s.passcodeGen = passcode.New(nil)
	}

	return s, nil
}

// lockRoom acquires the named lock for a passcode and returns its release
func (s *service) lockRoom(code string) func() {
	s.mu.Lock()
	l, ok := s.roomLocks[code]
	if !ok {
		l = &sync.Mutex{}
		s.roomLocks[code] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// dropRoomLock forgets a deleted room's lock entry
func (s *service) dropRoomLock(code string) {
	s.mu.Lock()
	delete(s.roomLocks, code)
	s.mu.Unlock()
}

// loadRoom fetches a room, translating the repository sentinel
func (s *service) loadRoom(ctx context.Context, code string) (*models.Room, error) {
	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{Passcode: code})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

// actorOf resolves the player bound to a connection handle
func actorOf(room *models.Room, handleID string) (*models.Player, error) {
	player := room.FindPlayerByHandle(handleID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	return player, nil
}

// requireOpen rejects commands that are invalid for the room's state
func requireOpen(room *models.Room) error {
	switch room.Status {
	case models.RoomStatusRolling:
		return ErrRollInProgress
	case models.RoomStatusClosed:
		return ErrRoomClosed
	}
	return nil
}

// CreateRoom creates a new room with the caller as owner
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input.InitialMoney <= 0 || input.PotMoney < 0 {
		return nil, ErrInvalidAmount
	}

	code, err := s.generatePasscode(ctx)
	if err != nil {
		return nil, err
	}

	playerID := input.PlayerID
	if playerID == "" {
		playerID = s.uuid.NewUUID()
	}

	now := s.clock.Now()
	room := &models.Room{
		Passcode:        code,
		OwnerID:         playerID,
		Status:          models.RoomStatusOpen,
		PotMoney:        input.PotMoney,
		InitialPotMoney: input.PotMoney,
		InitialMoney:    input.InitialMoney,
		TotalBets:       models.EmptyBets(),
		Players: []*models.Player{
			{
				ID:       playerID,
				HandleID: input.HandleID,
				Name:     input.Name,
				Money:    input.InitialMoney,
				Bets:     models.EmptyBets(),
				JoinedAt: now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
		return nil, err
	}

	s.publisher.SendTo(ctx, input.HandleID, &Event{
		Type: EventGameCreated,
		Data: GameCreatedPayload{
			Passcode:  code,
			PlayerID:  playerID,
			OwnerID:   room.OwnerID,
			Players:   playersView(room),
			PotMoney:  room.PotMoney,
			TotalBets: room.TotalBets,
		},
	})

	return &CreateRoomOutput{
		Passcode: code,
		PlayerID: playerID,
	}, nil
}

// generatePasscode retries until it finds a code with no live room
func (s *service) generatePasscode(ctx context.Context) (string, error) {
	for i := 0; i < s.passcodeAttempts; i++ {
		code := s.passcodeGen.Generate()

		_, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{Passcode: code})
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", ErrPasscodeExhausted
}

// JoinRoom adds a player to a room, or resumes a retained player
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	code := passcode.Normalize(input.Passcode)

	unlock := s.lockRoom(code)
	defer unlock()

	room, err := s.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	rejoined := false
	playerID := input.PlayerID

	if existing := room.FindPlayerByID(playerID); existing != nil {
		// Reconnect: rebind the retained record to the new handle.
		existing.HandleID = input.HandleID
		rejoined = true
	} else {
		if len(room.Players) >= s.maxPlayers {
			return nil, ErrRoomFull
		}

		if playerID == "" {
			playerID = s.uuid.NewUUID()
		}

		room.Players = append(room.Players, &models.Player{
			ID:       playerID,
			HandleID: input.HandleID,
			Name:     input.Name,
			Money:    room.InitialMoney,
			Bets:     models.EmptyBets(),
			JoinedAt: now,
		})
	}

	room.UpdatedAt = now
	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
		return nil, err
	}

	s.publisher.Broadcast(ctx, code, playerUpdateEvent(room))
	s.publisher.SendTo(ctx, input.HandleID, &Event{
		Type: EventGameJoined,
		Data: GameJoinedPayload{
			Passcode:  code,
			PlayerID:  playerID,
			OwnerID:   room.OwnerID,
			Players:   playersView(room),
			PotMoney:  room.PotMoney,
			TotalBets: room.TotalBets,
		},
	})

	return &JoinRoomOutput{
		Passcode: code,
		PlayerID: playerID,
		Rejoined: rejoined,
	}, nil
}

// PlaceBet moves coins from the caller's balance into a color slot
func (s *service) PlaceBet(ctx context.Context, input *PlaceBetInput) (*PlaceBetOutput, error) {
	if !models.ValidColor(input.Color) {
		return nil, ErrInvalidColor
	}
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	code := passcode.Normalize(input.Passcode)

	unlock := s.lockRoom(code)
	defer unlock()

	room, err := s.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := requireOpen(room); err != nil {
		return nil, err
	}

	player, err := actorOf(room, input.HandleID)
	if err != nil {
		return nil, err
	}

	if input.Amount > player.Money {
		return nil, ErrInsufficientBalance
	}

	// The debit and the slot credit are one atomic step under the room
	// lock: balance + staked total never changes here.
	player.Money -= input.Amount
	player.Bets[input.Color] += input.Amount
	room.TotalBets[input.Color] += input.Amount
	room.UpdatedAt = s.clock.Now()

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
		return nil, err
	}

	s.publisher.Broadcast(ctx, code, playerUpdateEvent(room))

	return &PlaceBetOutput{
		Balance: player.Money,
	}, nil
}

// ResetBets refunds every staked coin back to the caller's balance
func (s *service) ResetBets(ctx context.Context, input *ResetBetsInput) (*ResetBetsOutput, error) {
	code := passcode.Normalize(input.Passcode)

	unlock := s.lockRoom(code)
	defer unlock()

	room, err := s.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := requireOpen(room); err != nil {
		return nil, err
	}

	player, err := actorOf(room, input.HandleID)
	if err != nil {
		return nil, err
	}

	refunded := 0
	for color, bet := range player.Bets {
		if bet == 0 {
			continue
		}
		player.Money += bet
		room.TotalBets[color] -= bet
		refunded += bet
	}
	player.Bets = models.EmptyBets()
	room.UpdatedAt = s.clock.Now()

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
		return nil, err
	}

	s.publisher.Broadcast(ctx, code, playerUpdateEvent(room))

	return &ResetBetsOutput{
		Refunded: refunded,
	}, nil
}

// ToggleReady flips the caller's ready flag
func (s *service) ToggleReady(ctx context.Context, input *ToggleReadyInput) (*ToggleReadyOutput, error) {
	code := passcode.Normalize(input.Passcode)

	unlock := s.lockRoom(code)
	defer unlock()

	room, err := s.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := requireOpen(room); err != nil {
		return nil, err
	}

	player, err := actorOf(room, input.HandleID)
	if err != nil {
		return nil, err
	}

	player.Ready = !player.Ready
	room.UpdatedAt = s.clock.Now()

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
		return nil, err
	}

	s.publisher.Broadcast(ctx, code, playerUpdateEvent(room))

	return &ToggleReadyOutput{
		Ready: player.Ready,
	}, nil
}

// RollCubes rolls three cubes and settles all bets; owner only
func (s *service) RollCubes(ctx context.Context, input *RollCubesInput) (*RollCubesOutput, error) {
	code := passcode.Normalize(input.Passcode)

	unlock := s.lockRoom(code)
	roomDeleted := false
	defer func() {
		// The lock entry may only be forgotten once no holder remains,
		// so the drop happens after the unlock.
		unlock()
		if roomDeleted {
			s.dropRoomLock(code)
		}
	}()

	room, err := s.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	player, err := actorOf(room, input.HandleID)
	if err != nil {
		return nil, err
	}
	if player.ID != room.OwnerID {
		return nil, ErrNotOwner
	}
	if err := requireOpen(room); err != nil {
		return nil, err
	}

	// Persist the rolling state before fanning out over players so a
	// duplicate roll against a shared backend is rejected, not doubled.
	room.Status = models.RoomStatusRolling
	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
		return nil, err
	}

	colors := models.Colors()
	values := s.diceRoller.RollN(models.CubeCount, cubeSides)
	cubes := make([]models.Color, len(values))
	for i, v := range values {
		cubes[i] = colors[v-1]
	}

	result := settle(room, cubes, s.payoutPolicy)

	now := s.clock.Now()
	room.Status = models.RoomStatusOpen
	room.UpdatedAt = now

	record := &models.RollRecord{
		ID:        s.uuid.NewUUID(),
		Passcode:  code,
		Cubes:     cubes,
		Winners:   result.Winners,
		PotAfter:  room.PotMoney,
		Timestamp: now,
	}
	if err := s.historyRepo.AddRollRecord(ctx, &historyRepo.AddRollRecordInput{Record: record}); err != nil {
		s.reopenRoom(ctx, code)
		return nil, err
	}

	gameOver := room.PotMoney <= 0

	rollEvent := &Event{
		Type: EventRollResult,
		Data: RollResultPayload{
			Cubes:     cubes,
			Players:   playersView(room),
			PotMoney:  room.PotMoney,
			TotalBets: room.TotalBets,
			Winners:   winnersView(result.Winners),
		},
	}

	if gameOver {
		room.Status = models.RoomStatusClosed

		s.publisher.Broadcast(ctx, code, rollEvent)
		s.publisher.Broadcast(ctx, code, &Event{Type: EventGameOver})
		s.publisher.CloseRoom(ctx, code)

		if err := s.roomRepo.DeleteRoom(ctx, &roomRepo.DeleteRoomInput{Passcode: code}); err != nil {
			return nil, err
		}
		if err := s.historyRepo.DeleteRollHistory(ctx, &historyRepo.DeleteRollHistoryInput{Passcode: code}); err != nil {
			return nil, err
		}
		roomDeleted = true
	} else {
		if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
			s.reopenRoom(ctx, code)
			return nil, err
		}
		s.publisher.Broadcast(ctx, code, rollEvent)
	}

	return &RollCubesOutput{
		Cubes:    cubes,
		Winners:  result.Winners,
		PotMoney: room.PotMoney,
		GameOver: gameOver,
	}, nil
}

// reopenRoom reverts a persisted rolling status after a failed settlement
// write. The stored room still holds its pre-roll state, so flipping it
// back to open makes the failed roll a no-op instead of wedging the room.
func (s *service) reopenRoom(ctx context.Context, code string) {
	room, err := s.loadRoom(ctx, code)
	if err != nil {
		return
	}

	room.Status = models.RoomStatusOpen
	_ = s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room})
}

// ResetGame restores balances and pot to their initial values; owner only
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	code := passcode.Normalize(input.Passcode)

	unlock := s.lockRoom(code)
	defer unlock()

	room, err := s.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	player, err := actorOf(room, input.HandleID)
	if err != nil {
		return nil, err
	}
	if player.ID != room.OwnerID {
		return nil, ErrNotOwner
	}
	if room.Status == models.RoomStatusRolling {
		return nil, ErrRollInProgress
	}

	for _, p := range room.Players {
		p.Money = room.InitialMoney
		p.Bets = models.EmptyBets()
		p.Ready = false
	}
	room.PotMoney = room.InitialPotMoney
	room.TotalBets = models.EmptyBets()
	room.LastRoll = nil
	room.Status = models.RoomStatusOpen
	room.UpdatedAt = s.clock.Now()

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
		return nil, err
	}

	s.publisher.Broadcast(ctx, code, &Event{
		Type: EventGameReset,
		Data: GameResetPayload{
			Players:   playersView(room),
			PotMoney:  room.PotMoney,
			TotalBets: room.TotalBets,
		},
	})

	return &ResetGameOutput{}, nil
}

// GiveCoins transfers coins from the caller to another player
func (s *service) GiveCoins(ctx context.Context, input *GiveCoinsInput) (*GiveCoinsOutput, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	code := passcode.Normalize(input.Passcode)

	unlock := s.lockRoom(code)
	defer unlock()

	room, err := s.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := requireOpen(room); err != nil {
		return nil, err
	}

	giver, err := actorOf(room, input.HandleID)
	if err != nil {
		return nil, err
	}

	if giver.ID == input.ToPlayerID {
		return nil, ErrSelfTransfer
	}

	receiver := room.FindPlayerByID(input.ToPlayerID)
	if receiver == nil {
		return nil, ErrPlayerNotFound
	}

	if input.Amount > giver.Money {
		return nil, ErrInsufficientBalance
	}

	giver.Money -= input.Amount
	receiver.Money += input.Amount
	room.UpdatedAt = s.clock.Now()

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
		return nil, err
	}

	s.publisher.Broadcast(ctx, code, playerUpdateEvent(room))

	return &GiveCoinsOutput{
		Balance: giver.Money,
	}, nil
}

// RollHistory replies to the caller with the room's recent rolls
func (s *service) RollHistory(ctx context.Context, input *RollHistoryInput) (*RollHistoryOutput, error) {
	code := passcode.Normalize(input.Passcode)

	if _, err := s.loadRoom(ctx, code); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	out, err := s.historyRepo.GetRollHistory(ctx, &historyRepo.GetRollHistoryInput{
		Passcode: code,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	records := make([]RollRecordView, 0, len(out.Records))
	for _, r := range out.Records {
		records = append(records, RollRecordView{
			Cubes:     r.Cubes,
			Winners:   winnersView(r.Winners),
			PotAfter:  r.PotAfter,
			Timestamp: r.Timestamp.Unix(),
		})
	}

	s.publisher.SendTo(ctx, input.HandleID, &Event{
		Type: EventRollHistory,
		Data: RollHistoryPayload{
			Passcode: code,
			Records:  records,
		},
	})

	return &RollHistoryOutput{
		Records: out.Records,
	}, nil
}

// Disconnect handles a dropped connection across every room holding it
func (s *service) Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error) {
	if input.HandleID == "" {
		return &DisconnectOutput{}, nil
	}

	listed, err := s.roomRepo.ListRooms(ctx, &roomRepo.ListRoomsInput{})
	if err != nil {
		return nil, err
	}

	output := &DisconnectOutput{}

	for _, candidate := range listed.Rooms {
		if candidate.FindPlayerByHandle(input.HandleID) == nil {
			continue
		}

		closed, err := s.disconnectFromRoom(ctx, candidate.Passcode, input.HandleID)
		if err != nil {
			return nil, err
		}
		if closed {
			output.ClosedRooms = append(output.ClosedRooms, candidate.Passcode)
		}
	}

	return output, nil
}

// disconnectFromRoom applies the disconnect policy to one room under its
// lock. The listing above is a snapshot, so membership is re-checked.
func (s *service) disconnectFromRoom(ctx context.Context, code, handleID string) (bool, error) {
	unlock := s.lockRoom(code)
	roomDeleted := false
	defer func() {
		unlock()
		if roomDeleted {
			s.dropRoomLock(code)
		}
	}()

	room, err := s.loadRoom(ctx, code)
	if err != nil {
		// Deleted between the listing and the lock; nothing to do.
		if errors.Is(err, ErrRoomNotFound) {
			return false, nil
		}
		return false, err
	}

	player := room.FindPlayerByHandle(handleID)
	if player == nil {
		return false, nil
	}

	if player.ID == room.OwnerID {
		// Owner exit tears the room down for everyone.
		s.publisher.Broadcast(ctx, code, &Event{Type: EventRoomClosed})
		s.publisher.CloseRoom(ctx, code)

		if err := s.roomRepo.DeleteRoom(ctx, &roomRepo.DeleteRoomInput{Passcode: code}); err != nil {
			return false, err
		}
		if err := s.historyRepo.DeleteRollHistory(ctx, &historyRepo.DeleteRollHistoryInput{Passcode: code}); err != nil {
			return false, err
		}
		roomDeleted = true

		return true, nil
	}

	// Member exit retains the record so the player can resume later.
	player.HandleID = ""
	room.UpdatedAt = s.clock.Now()

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
		return false, err
	}

	s.publisher.Broadcast(ctx, code, playerUpdateEvent(room))

	return false, nil
}
