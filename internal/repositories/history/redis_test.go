package history

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/colorcubes/internal/models"
)

type RedisHistoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisHistoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisHistoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisHistoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisHistoryTestSuite))
}

func (s *RedisHistoryTestSuite) record(id string, at time.Time) *models.RollRecord {
	return &models.RollRecord{
		ID:       id,
		Passcode: "ABC123",
		Cubes:    []models.Color{models.ColorRed, models.ColorRed, models.ColorBlue},
		Winners: []*models.Winner{
			{PlayerID: "p1", Name: "Alice", Winnings: 300},
		},
		PotAfter:  400,
		Timestamp: at,
	}
}

func (s *RedisHistoryTestSuite) TestAddAndGetRollHistory() {
	err := s.repo.AddRollRecord(context.Background(), &AddRollRecordInput{
		Record: s.record("roll-1", s.testNow),
	})
	s.Require().NoError(err)

	out, err := s.repo.GetRollHistory(context.Background(), &GetRollHistoryInput{
		Passcode: "ABC123",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 1)
	s.Equal("roll-1", out.Records[0].ID)
	s.Equal([]models.Color{models.ColorRed, models.ColorRed, models.ColorBlue}, out.Records[0].Cubes)
	s.Require().Len(out.Records[0].Winners, 1)
	s.Equal(300, out.Records[0].Winners[0].Winnings)
}

func (s *RedisHistoryTestSuite) TestHistoryIsNewestFirst() {
	for i, id := range []string{"roll-1", "roll-2", "roll-3"} {
		err := s.repo.AddRollRecord(context.Background(), &AddRollRecordInput{
			Record: s.record(id, s.testNow.Add(time.Duration(i)*time.Minute)),
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.GetRollHistory(context.Background(), &GetRollHistoryInput{
		Passcode: "ABC123",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 3)
	s.Equal("roll-3", out.Records[0].ID)
	s.Equal("roll-1", out.Records[2].ID)
}

func (s *RedisHistoryTestSuite) TestHistoryLimit() {
	for i, id := range []string{"roll-1", "roll-2", "roll-3"} {
		err := s.repo.AddRollRecord(context.Background(), &AddRollRecordInput{
			Record: s.record(id, s.testNow.Add(time.Duration(i)*time.Minute)),
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.GetRollHistory(context.Background(), &GetRollHistoryInput{
		Passcode: "ABC123",
		Limit:    2,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 2)
	s.Equal("roll-3", out.Records[0].ID)
	s.Equal("roll-2", out.Records[1].ID)
}

func (s *RedisHistoryTestSuite) TestDeleteRollHistory() {
	err := s.repo.AddRollRecord(context.Background(), &AddRollRecordInput{
		Record: s.record("roll-1", s.testNow),
	})
	s.Require().NoError(err)

	err = s.repo.DeleteRollHistory(context.Background(), &DeleteRollHistoryInput{
		Passcode: "ABC123",
	})
	s.Require().NoError(err)

	out, err := s.repo.GetRollHistory(context.Background(), &GetRollHistoryInput{
		Passcode: "ABC123",
	})
	s.Require().NoError(err)
	s.Empty(out.Records)
}
