package room

import "errors"

// Define errors
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrPlayerNotFound      = errors.New("player not found in room")
	ErrNotOwner            = errors.New("only the room owner can do that")
	ErrRollInProgress      = errors.New("a roll is already in progress")
	ErrRoomClosed          = errors.New("room is closed")
	ErrRoomFull            = errors.New("room is at maximum capacity")
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrInsufficientBalance = errors.New("amount exceeds current balance")
	ErrInvalidColor        = errors.New("not a betable color")
	ErrSelfTransfer        = errors.New("cannot give coins to yourself")
	ErrPasscodeExhausted   = errors.New("could not generate an unused passcode")
)
