package room

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/colorcubes/internal/models"
)

func testRoomWithPlayers(players ...*models.Player) *models.Room {
	room := &models.Room{
		Passcode:        "ABC123",
		Status:          models.RoomStatusOpen,
		PotMoney:        500,
		InitialPotMoney: 500,
		InitialMoney:    1000,
		TotalBets:       models.EmptyBets(),
		Players:         players,
	}
	for _, p := range players {
		for color, bet := range p.Bets {
			room.TotalBets[color] += bet
		}
	}
	return room
}

func betsWith(color models.Color, amount int) map[models.Color]int {
	bets := models.EmptyBets()
	bets[color] = amount
	return bets
}

func totalMoney(room *models.Room) int {
	total := room.PotMoney
	for _, p := range room.Players {
		total += p.Money + p.TotalBet()
	}
	return total
}

func TestSettleSingleMatchStakeRefund(t *testing.T) {
	player := &models.Player{ID: "p1", Name: "Alice", Money: 900, Bets: betsWith(models.ColorRed, 100)}
	room := testRoomWithPlayers(player)
	before := totalMoney(room)

	result := settle(room, []models.Color{models.ColorRed, models.ColorBlue, models.ColorGreen}, PayoutStakeRefund)

	// bet*matches + bet = 100 + 100
	assert.Equal(t, 1100, player.Money)
	assert.Equal(t, 400, room.PotMoney)
	assert.Len(t, result.Winners, 1)
	assert.Equal(t, 200, result.Winners[0].Winnings)
	assert.Equal(t, before, totalMoney(room))
}

func TestSettleDoubleMatchPolicy(t *testing.T) {
	player := &models.Player{ID: "p1", Name: "Alice", Money: 900, Bets: betsWith(models.ColorRed, 100)}
	room := testRoomWithPlayers(player)

	result := settle(room, []models.Color{models.ColorRed, models.ColorRed, models.ColorBlue}, PayoutDoubleMatch)

	// bet*matches*2 = 100*2*2
	assert.Equal(t, 1300, player.Money)
	assert.Equal(t, 200, room.PotMoney)
	assert.Len(t, result.Winners, 1)
	assert.Equal(t, 400, result.Winners[0].Winnings)
}

func TestSettleTripleMatchStakeRefund(t *testing.T) {
	player := &models.Player{ID: "p1", Name: "Alice", Money: 900, Bets: betsWith(models.ColorPink, 100)}
	room := testRoomWithPlayers(player)

	settle(room, []models.Color{models.ColorPink, models.ColorPink, models.ColorPink}, PayoutStakeRefund)

	// 100*3 + 100 = 400 credited, net +300 paid by the pot
	assert.Equal(t, 1300, player.Money)
	assert.Equal(t, 200, room.PotMoney)
}

func TestSettleAllLosersFeedThePot(t *testing.T) {
	p1 := &models.Player{ID: "p1", Name: "Alice", Money: 900, Bets: betsWith(models.ColorRed, 100)}
	p2 := &models.Player{ID: "p2", Name: "Bob", Money: 750, Bets: betsWith(models.ColorBlue, 250)}
	room := testRoomWithPlayers(p1, p2)
	before := totalMoney(room)

	result := settle(room, []models.Color{models.ColorWhite, models.ColorWhite, models.ColorPink}, PayoutStakeRefund)

	assert.Empty(t, result.Winners)
	assert.Equal(t, 850, room.PotMoney)
	assert.Equal(t, 900, p1.Money)
	assert.Equal(t, 750, p2.Money)
	assert.Equal(t, before, totalMoney(room))
}

func TestSettleWinnerLosingSlotsOffsetWinnings(t *testing.T) {
	bets := models.EmptyBets()
	bets[models.ColorRed] = 100
	bets[models.ColorBlue] = 50
	player := &models.Player{ID: "p1", Name: "Alice", Money: 850, Bets: bets}
	room := testRoomWithPlayers(player)
	before := totalMoney(room)

	result := settle(room, []models.Color{models.ColorRed, models.ColorGreen, models.ColorGreen}, PayoutStakeRefund)

	// Credited 200 for red; the 50 on blue stays lost. Net +50 from pot.
	assert.Equal(t, 1050, player.Money)
	assert.Equal(t, 450, room.PotMoney)
	assert.Len(t, result.Winners, 1)
	assert.Equal(t, before, totalMoney(room))
}

func TestSettleClearsBetsAndReadyFlags(t *testing.T) {
	player := &models.Player{ID: "p1", Name: "Alice", Money: 900, Bets: betsWith(models.ColorRed, 100), Ready: true}
	room := testRoomWithPlayers(player)

	settle(room, []models.Color{models.ColorRed, models.ColorBlue, models.ColorGreen}, PayoutStakeRefund)

	assert.Equal(t, 0, player.TotalBet())
	assert.False(t, player.Ready)
	for _, c := range models.Colors() {
		assert.Equal(t, 0, room.TotalBets[c])
	}
	assert.Equal(t, []models.Color{models.ColorRed, models.ColorBlue, models.ColorGreen}, room.LastRoll)
}

func TestPayoutFormulas(t *testing.T) {
	assert.Equal(t, 200, payout(100, 1, PayoutStakeRefund))
	assert.Equal(t, 300, payout(100, 2, PayoutStakeRefund))
	assert.Equal(t, 400, payout(100, 3, PayoutStakeRefund))

	assert.Equal(t, 200, payout(100, 1, PayoutDoubleMatch))
	assert.Equal(t, 400, payout(100, 2, PayoutDoubleMatch))
	assert.Equal(t, 600, payout(100, 3, PayoutDoubleMatch))
}
