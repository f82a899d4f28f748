package models

import (
	"time"
)

// RoomStatus represents the current state of a room
type RoomStatus string

const (
	// RoomStatusOpen indicates a room is accepting bets and commands
	RoomStatusOpen RoomStatus = "open"

	// RoomStatusRolling indicates a roll is being settled
	RoomStatusRolling RoomStatus = "rolling"

	// RoomStatusClosed indicates the pot has been exhausted
	RoomStatusClosed RoomStatus = "closed"
)

// Room represents a betting room keyed by passcode
type Room struct {
	// Passcode is the unique identifier players use to join the room
	Passcode string

	// OwnerID is the player ID with exclusive roll/reset authority
	OwnerID string

	// Status is the current state of the room
	Status RoomStatus

	// Players holds the room members in join order
	Players []*Player

	// PotMoney is the shared bank absorbing net payouts
	PotMoney int

	// InitialPotMoney is the pot value at creation, used on reset
	InitialPotMoney int

	// InitialMoney is the per-player starting balance
	InitialMoney int

	// TotalBets aggregates staked amounts per color across all players
	TotalBets map[Color]int

	// LastRoll is the most recent cube outcome, empty before the first roll
	LastRoll []Color

	// CreatedAt is when the room was created
	CreatedAt time.Time

	// UpdatedAt is when the room was last updated
	UpdatedAt time.Time
}

// FindPlayerByID returns the player with the given ID, or nil
func (r *Room) FindPlayerByID(playerID string) *Player {
	for _, p := range r.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// FindPlayerByHandle returns the player bound to the given connection
// handle, or nil
func (r *Room) FindPlayerByHandle(handleID string) *Player {
	if handleID == "" {
		return nil
	}
	for _, p := range r.Players {
		if p.HandleID == handleID {
			return p
		}
	}
	return nil
}

// Clone returns a deep copy of the room so stored state cannot be
// mutated through a previously returned pointer
func (r *Room) Clone() *Room {
	if r == nil {
		return nil
	}

	clone := *r

	clone.Players = make([]*Player, len(r.Players))
	for i, p := range r.Players {
		clone.Players[i] = p.Clone()
	}

	clone.TotalBets = make(map[Color]int, len(r.TotalBets))
	for color, amount := range r.TotalBets {
		clone.TotalBets[color] = amount
	}

	clone.LastRoll = append([]Color(nil), r.LastRoll...)

	return &clone
}
