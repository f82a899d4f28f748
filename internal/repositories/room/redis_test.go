package room

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/colorcubes/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testRoom(passcode string) *models.Room {
	return &models.Room{
		Passcode:        passcode,
		OwnerID:         "test-owner-id",
		Status:          models.RoomStatusOpen,
		InitialMoney:    1000,
		PotMoney:        500,
		InitialPotMoney: 500,
		TotalBets:       models.EmptyBets(),
		Players: []*models.Player{
			{
				ID:       "test-owner-id",
				HandleID: "test-handle-id",
				Name:     "Test Owner",
				Money:    1000,
				Bets:     models.EmptyBets(),
				JoinedAt: s.testNow,
			},
		},
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetRoom() {
	room := s.testRoom("ABC123")

	err := s.repo.SaveRoom(context.Background(), &SaveRoomInput{
		Room: room,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetRoom(context.Background(), &GetRoomInput{
		Passcode: "ABC123",
	})
	s.Require().NoError(err)
	s.Equal(room.Passcode, retrieved.Passcode)
	s.Equal(room.OwnerID, retrieved.OwnerID)
	s.Equal(room.Status, retrieved.Status)
	s.Equal(room.PotMoney, retrieved.PotMoney)
	s.Require().Len(retrieved.Players, 1)
	s.Equal("Test Owner", retrieved.Players[0].Name)
	s.Equal(1000, retrieved.Players[0].Money)
}

func (s *RedisRepositoryTestSuite) TestGetRoomNotFound() {
	_, err := s.repo.GetRoom(context.Background(), &GetRoomInput{
		Passcode: "NOPE00",
	})
	s.Require().ErrorIs(err, ErrRoomNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteRoom() {
	room := s.testRoom("ABC123")

	err := s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: room})
	s.Require().NoError(err)

	err = s.repo.DeleteRoom(context.Background(), &DeleteRoomInput{
		Passcode: "ABC123",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetRoom(context.Background(), &GetRoomInput{
		Passcode: "ABC123",
	})
	s.Require().ErrorIs(err, ErrRoomNotFound)
}

func (s *RedisRepositoryTestSuite) TestListRooms() {
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: s.testRoom("AAAAAA")}))
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: s.testRoom("BBBBBB")}))

	out, err := s.repo.ListRooms(context.Background(), &ListRoomsInput{})
	s.Require().NoError(err)
	s.Len(out.Rooms, 2)

	passcodes := []string{out.Rooms[0].Passcode, out.Rooms[1].Passcode}
	s.ElementsMatch([]string{"AAAAAA", "BBBBBB"}, passcodes)
}

func (s *RedisRepositoryTestSuite) TestSaveRoomValidation() {
	err := s.repo.SaveRoom(context.Background(), nil)
	s.Require().Error(err)

	err = s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: &models.Room{}})
	s.Require().Error(err)
}
