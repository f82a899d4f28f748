package models

import (
	"time"
)

// Color is one of the six cube faces players can bet on
type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorWhite  Color = "white"
	ColorPink   Color = "pink"
)

// CubeCount is the number of cubes rolled per round
const CubeCount = 3

// Colors returns all betable colors in display order
func Colors() []Color {
	return []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorWhite, ColorPink}
}

// ValidColor reports whether c is one of the six betable colors
func ValidColor(c Color) bool {
	switch c {
	case ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorWhite, ColorPink:
		return true
	}
	return false
}

// EmptyBets returns a bet map with every color present at zero
func EmptyBets() map[Color]int {
	bets := make(map[Color]int, len(Colors()))
	for _, c := range Colors() {
		bets[c] = 0
	}
	return bets
}

// Winner records a player's total winnings from one roll
type Winner struct {
	// PlayerID is the ID of the winning player
	PlayerID string

	// Name is the display name of the winning player
	Name string

	// Winnings is the total amount credited, stake refund included
	Winnings int
}

// RollRecord is a settled roll as stored in the history ledger
type RollRecord struct {
	// ID is the unique identifier for the roll
	ID string

	// Passcode is the room the roll belongs to
	Passcode string

	// Cubes is the three-color outcome
	Cubes []Color

	// Winners lists every player credited by the settlement
	Winners []*Winner

	// PotAfter is the pot balance after settlement
	PotAfter int

	// Timestamp is when the roll was settled
	Timestamp time.Time
}
