package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/colorcubes/internal/models"
)

type MemoryHistoryTestSuite struct {
	suite.Suite
	repo Repository
}

func (s *MemoryHistoryTestSuite) SetupTest() {
	s.repo = NewMemory()
}

func TestMemoryHistoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryHistoryTestSuite))
}

func (s *MemoryHistoryTestSuite) TestAddGetAndDelete() {
	now := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	for _, id := range []string{"roll-1", "roll-2"} {
		err := s.repo.AddRollRecord(context.Background(), &AddRollRecordInput{
			Record: &models.RollRecord{
				ID:        id,
				Passcode:  "ABC123",
				Cubes:     []models.Color{models.ColorPink, models.ColorWhite, models.ColorPink},
				PotAfter:  100,
				Timestamp: now,
			},
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.GetRollHistory(context.Background(), &GetRollHistoryInput{
		Passcode: "ABC123",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 2)
	s.Equal("roll-2", out.Records[0].ID)

	limited, err := s.repo.GetRollHistory(context.Background(), &GetRollHistoryInput{
		Passcode: "ABC123",
		Limit:    1,
	})
	s.Require().NoError(err)
	s.Require().Len(limited.Records, 1)
	s.Equal("roll-2", limited.Records[0].ID)

	s.Require().NoError(s.repo.DeleteRollHistory(context.Background(), &DeleteRollHistoryInput{
		Passcode: "ABC123",
	}))

	out, err = s.repo.GetRollHistory(context.Background(), &GetRollHistoryInput{
		Passcode: "ABC123",
	})
	s.Require().NoError(err)
	s.Empty(out.Records)
}
