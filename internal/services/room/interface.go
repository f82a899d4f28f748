package room

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/colorcubes/internal/services/room Service

// Service defines the interface for session engine operations. Every
// command carries the connection handle it arrived on; the engine decides
// what the handle is allowed to do.
type Service interface {
	// CreateRoom creates a new room with the caller as owner
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom adds a player to a room, or resumes a retained player
	// presenting the same player ID
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// PlaceBet moves coins from the caller's balance into a color slot
	PlaceBet(ctx context.Context, input *PlaceBetInput) (*PlaceBetOutput, error)

	// ResetBets refunds every staked coin back to the caller's balance
	ResetBets(ctx context.Context, input *ResetBetsInput) (*ResetBetsOutput, error)

	// ToggleReady flips the caller's ready flag
	ToggleReady(ctx context.Context, input *ToggleReadyInput) (*ToggleReadyOutput, error)

	// RollCubes rolls three cubes and settles all bets; owner only
	RollCubes(ctx context.Context, input *RollCubesInput) (*RollCubesOutput, error)

	// ResetGame restores balances and pot to their initial values; owner only
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)

	// GiveCoins transfers coins from the caller to another player
	GiveCoins(ctx context.Context, input *GiveCoinsInput) (*GiveCoinsOutput, error)

	// RollHistory replies to the caller with the room's recent rolls
	RollHistory(ctx context.Context, input *RollHistoryInput) (*RollHistoryOutput, error)

	// Disconnect handles a dropped connection: owner exit tears the room
	// down, member exit retains the player with a nulled handle
	Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error)
}
