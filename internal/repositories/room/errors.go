package room

import "errors"

// ErrRoomNotFound is returned when no room exists for a passcode
var ErrRoomNotFound = errors.New("room not found")
