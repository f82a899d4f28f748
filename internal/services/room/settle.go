package room

import (
	"github.com/KirkDiggler/colorcubes/internal/models"
)

// settlementResult is what one roll did to a room
type settlementResult struct {
	// Winners lists credited players in join order
	Winners []*models.Winner

	// NetChange is total net winnings minus total losses; the pot moves
	// by its negation
	NetChange int
}

// payout computes the credit for a single matched bet slot
func payout(bet, matches int, policy PayoutPolicy) int {
	switch policy {
	case PayoutDoubleMatch:
		return bet * matches * 2
	default:
		return bet*matches + bet
	}
}

// settle applies one cube outcome to every player's bets and the pot.
// It runs synchronously inside the room's critical section: balances are
// credited, all bet slots and ready flags clear, and the pot absorbs the
// net result. Money is conserved across players plus pot.
func settle(room *models.Room, cubes []models.Color, policy PayoutPolicy) *settlementResult {
	matches := make(map[models.Color]int, len(cubes))
	for _, c := range cubes {
		matches[c]++
	}

	var winners []*models.Winner
	totalWinnings := 0
	totalLosses := 0

	for _, player := range room.Players {
		winnings := 0
		totalBet := player.TotalBet()

		for color, bet := range player.Bets {
			if bet <= 0 {
				continue
			}
			if m := matches[color]; m > 0 {
				winnings += payout(bet, m, policy)
			}
		}

		if winnings > 0 {
			player.Money += winnings
			// A winner's losing slots count against their winnings, not
			// the loss column.
			totalWinnings += winnings - totalBet
			winners = append(winners, &models.Winner{
				PlayerID: player.ID,
				Name:     player.Name,
				Winnings: winnings,
			})
		} else {
			totalLosses += totalBet
		}

		player.Bets = models.EmptyBets()
		player.Ready = false
	}

	netChange := totalWinnings - totalLosses
	room.PotMoney -= netChange
	room.TotalBets = models.EmptyBets()
	room.LastRoll = cubes

	return &settlementResult{
		Winners:   winners,
		NetChange: netChange,
	}
}
