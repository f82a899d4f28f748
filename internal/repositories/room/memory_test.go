package room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/colorcubes/internal/models"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	repo Repository
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.repo = NewMemory()
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

func (s *MemoryRepositoryTestSuite) TestSaveAndGetRoom() {
	room := &models.Room{
		Passcode:  "ABC123",
		OwnerID:   "owner-1",
		Status:    models.RoomStatusOpen,
		TotalBets: models.EmptyBets(),
		Players: []*models.Player{
			{ID: "owner-1", Name: "Owner", Money: 1000, Bets: models.EmptyBets()},
		},
	}

	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: room}))

	retrieved, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Passcode: "ABC123"})
	s.Require().NoError(err)
	s.Equal("owner-1", retrieved.OwnerID)
	s.Require().Len(retrieved.Players, 1)
}

func (s *MemoryRepositoryTestSuite) TestGetRoomReturnsACopy() {
	room := &models.Room{
		Passcode:  "ABC123",
		OwnerID:   "owner-1",
		Status:    models.RoomStatusOpen,
		TotalBets: models.EmptyBets(),
		Players: []*models.Player{
			{ID: "owner-1", Name: "Owner", Money: 1000, Bets: models.EmptyBets()},
		},
	}

	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: room}))

	first, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Passcode: "ABC123"})
	s.Require().NoError(err)

	// Mutating the returned room must not leak into the stored copy.
	first.Players[0].Money = 0
	first.TotalBets[models.ColorRed] = 999

	second, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Passcode: "ABC123"})
	s.Require().NoError(err)
	s.Equal(1000, second.Players[0].Money)
	s.Equal(0, second.TotalBets[models.ColorRed])
}

func (s *MemoryRepositoryTestSuite) TestDeleteRoom() {
	room := &models.Room{
		Passcode:  "ABC123",
		Status:    models.RoomStatusOpen,
		TotalBets: models.EmptyBets(),
	}

	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: room}))
	s.Require().NoError(s.repo.DeleteRoom(context.Background(), &DeleteRoomInput{Passcode: "ABC123"}))

	_, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Passcode: "ABC123"})
	s.Require().ErrorIs(err, ErrRoomNotFound)
}

func (s *MemoryRepositoryTestSuite) TestListRooms() {
	for _, code := range []string{"AAAAAA", "BBBBBB", "CCCCCC"} {
		s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{
			Room: &models.Room{Passcode: code, Status: models.RoomStatusOpen, TotalBets: models.EmptyBets()},
		}))
	}

	out, err := s.repo.ListRooms(context.Background(), &ListRoomsInput{})
	s.Require().NoError(err)
	s.Len(out.Rooms, 3)
}
