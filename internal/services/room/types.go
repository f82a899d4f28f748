package room

import (
	"github.com/KirkDiggler/colorcubes/internal/common/clock"
	"github.com/KirkDiggler/colorcubes/internal/common/passcode"
	"github.com/KirkDiggler/colorcubes/internal/common/uuid"
	"github.com/KirkDiggler/colorcubes/internal/dice"
	"github.com/KirkDiggler/colorcubes/internal/models"
	historyRepo "github.com/KirkDiggler/colorcubes/internal/repositories/history"
	roomRepo "github.com/KirkDiggler/colorcubes/internal/repositories/room"
)

// PayoutPolicy names the formula applied to a matched bet. The two
// observed formulas are not equivalent for multiple matches and are never
// blended.
type PayoutPolicy string

const (
	// PayoutStakeRefund pays bet*matches plus the original stake back
	PayoutStakeRefund PayoutPolicy = "stake-refund"

	// PayoutDoubleMatch pays bet*matches*2 with no separate refund
	PayoutDoubleMatch PayoutPolicy = "double-match"
)

// Config holds configuration for the room service
type Config struct {
	// Maximum number of players per room
	MaxPlayers int

	// Payout formula applied at settlement
	PayoutPolicy PayoutPolicy

	// Maximum attempts at generating an unused passcode
	PasscodeAttempts int

	// Repository dependencies
	RoomRepo    roomRepo.Repository
	HistoryRepo historyRepo.Repository

	// Service dependencies
	Publisher         Publisher
	DiceRoller        dice.Roller
	Clock             clock.Clock
	UUIDGenerator     uuid.UUID
	PasscodeGenerator passcode.Generator
}

// CreateRoomInput contains parameters for creating a new room
type CreateRoomInput struct {
	// HandleID is the connection handle of the creator
	HandleID string

	// Name is the creator's display name
	Name string

	// InitialMoney is the starting balance given to every player
	InitialMoney int

	// PotMoney is the starting shared pot
	PotMoney int

	// PlayerID optionally reuses a client-held identity
	PlayerID string
}

// CreateRoomOutput contains the result of creating a room
type CreateRoomOutput struct {
	// Passcode is the generated room passcode
	Passcode string

	// PlayerID is the owner's player identity
	PlayerID string
}

// JoinRoomInput contains parameters for joining a room
type JoinRoomInput struct {
	// HandleID is the connection handle of the joiner
	HandleID string

	// Name is the joiner's display name
	Name string

	// Passcode identifies the room, case-insensitive
	Passcode string

	// PlayerID optionally resumes a retained player
	PlayerID string
}

// JoinRoomOutput contains the result of joining a room
type JoinRoomOutput struct {
	// Passcode is the normalized room passcode
	Passcode string

	// PlayerID is the joiner's player identity
	PlayerID string

	// Rejoined indicates the player resumed a retained record
	Rejoined bool
}

// PlaceBetInput contains parameters for placing a bet
type PlaceBetInput struct {
	HandleID string
	Passcode string

	// Color is the outcome being staked on
	Color models.Color

	// Amount is the stake, debited from the balance
	Amount int
}

// PlaceBetOutput contains the result of placing a bet
type PlaceBetOutput struct {
	// Balance is the caller's balance after the debit
	Balance int
}

// ResetBetsInput contains parameters for refunding bets
type ResetBetsInput struct {
	HandleID string
	Passcode string
}

// ResetBetsOutput contains the result of refunding bets
type ResetBetsOutput struct {
	// Refunded is the total amount returned to the balance
	Refunded int
}

// ToggleReadyInput contains parameters for flipping the ready flag
type ToggleReadyInput struct {
	HandleID string
	Passcode string
}

// ToggleReadyOutput contains the result of flipping the ready flag
type ToggleReadyOutput struct {
	// Ready is the flag's new value
	Ready bool
}

// RollCubesInput contains parameters for rolling
type RollCubesInput struct {
	HandleID string
	Passcode string
}

// RollCubesOutput contains the result of a settled roll
type RollCubesOutput struct {
	// Cubes is the three-color outcome
	Cubes []models.Color

	// Winners lists every player credited by the settlement
	Winners []*models.Winner

	// PotMoney is the pot after settlement
	PotMoney int

	// GameOver indicates the pot was exhausted and the room deleted
	GameOver bool
}

// ResetGameInput contains parameters for resetting a room
type ResetGameInput struct {
	HandleID string
	Passcode string
}

// ResetGameOutput contains the result of resetting a room
type ResetGameOutput struct {
}

// GiveCoinsInput contains parameters for a coin transfer
type GiveCoinsInput struct {
	HandleID string
	Passcode string

	// ToPlayerID is the receiving player's identity
	ToPlayerID string

	// Amount is the transfer size
	Amount int
}

// GiveCoinsOutput contains the result of a coin transfer
type GiveCoinsOutput struct {
	// Balance is the giver's balance after the debit
	Balance int
}

// RollHistoryInput contains parameters for a history query
type RollHistoryInput struct {
	HandleID string
	Passcode string

	// Limit caps the number of records returned; 0 uses the service default
	Limit int
}

// RollHistoryOutput contains the result of a history query
type RollHistoryOutput struct {
	Records []*models.RollRecord
}

// DisconnectInput contains parameters for a dropped connection
type DisconnectInput struct {
	// HandleID is the connection handle that went away
	HandleID string
}

// DisconnectOutput contains the result of handling a disconnect
type DisconnectOutput struct {
	// ClosedRooms lists passcodes torn down because their owner left
	ClosedRooms []string
}
