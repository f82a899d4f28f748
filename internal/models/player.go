package models

import (
	"time"
)

// Player represents a member of a room
type Player struct {
	// ID is the stable player identity, surviving reconnects
	ID string

	// HandleID is the transport connection handle, empty while disconnected
	HandleID string

	// Name is the display name of the player, not unique
	Name string

	// Money is the player's current balance, never negative
	Money int

	// Bets maps each color to the amount currently staked on it
	Bets map[Color]int

	// Ready is the player's ready-check flag, cleared after every roll
	Ready bool

	// JoinedAt is when the player joined the room
	JoinedAt time.Time
}

// Connected reports whether the player has a live connection handle
func (p *Player) Connected() bool {
	return p.HandleID != ""
}

// TotalBet returns the sum staked across all colors
func (p *Player) TotalBet() int {
	total := 0
	for _, amount := range p.Bets {
		total += amount
	}
	return total
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}

	clone := *p
	clone.Bets = make(map[Color]int, len(p.Bets))
	for color, amount := range p.Bets {
		clone.Bets[color] = amount
	}

	return &clone
}
