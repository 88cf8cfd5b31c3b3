package leaderboard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	uuidMocks "github.com/KirkDiggler/wordlive/internal/common/uuid/mocks"
	"github.com/KirkDiggler/wordlive/internal/models"
	leaderboardRepo "github.com/KirkDiggler/wordlive/internal/repositories/leaderboard"
	repoMocks "github.com/KirkDiggler/wordlive/internal/repositories/leaderboard/mocks"
)

type LeaderboardServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	mockUUID *uuidMocks.MockUUID
	repo     leaderboardRepo.Repository
	service  *service
}

func (s *LeaderboardServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockUUID = uuidMocks.NewMockUUID(s.ctrl)
	s.repo = leaderboardRepo.NewMemory()

	s.mockUUID.EXPECT().NewUUID().Return("board-1")

	svc, err := New(&Config{
		Repository: s.repo,
		UUID:       s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *LeaderboardServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLeaderboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaderboardServiceTestSuite))
}

func (s *LeaderboardServiceTestSuite) win(id string) *RecordWinOutput {
	out, err := s.service.RecordWin(s.ctx, &RecordWinInput{
		Player: models.Player{ID: id, DisplayName: "player " + id},
	})
	s.Require().NoError(err)
	return out
}

func (s *LeaderboardServiceTestSuite) topIDs() []string {
	out, err := s.service.GetTopEntries(s.ctx, &GetTopEntriesInput{})
	s.Require().NoError(err)

	ids := make([]string, 0, len(out.Entries))
	for _, e := range out.Entries {
		ids = append(ids, e.Player.ID)
	}
	return ids
}

func (s *LeaderboardServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilRepository)

	_, err = New(&Config{Repository: s.repo})
	s.ErrorIs(err, ErrNilUUID)

	svc, err := New(&Config{Repository: s.repo, BoardID: "fixed"})
	s.Require().NoError(err)
	s.Equal("fixed", svc.BoardID())
	s.Equal("board-1", s.service.BoardID())
}

func (s *LeaderboardServiceTestSuite) TestRankingKeepsTopThree() {
	s.win("A")
	s.win("B")
	s.win("B")
	s.win("B")
	s.win("C")
	s.win("C")
	s.win("D")

	if diff := cmp.Diff([]string{"B", "C", "A"}, s.topIDs()); diff != "" {
		s.Failf("unexpected ranking", "(-want +got):\n%s", diff)
	}

	out, err := s.service.GetTopEntries(s.ctx, &GetTopEntriesInput{})
	s.Require().NoError(err)
	s.Equal(3, out.Entries[0].Wins)
	s.Equal(2, out.Entries[1].Wins)
	s.Equal(1, out.Entries[2].Wins)
}

func (s *LeaderboardServiceTestSuite) TestTiesKeepInsertionOrder() {
	s.win("D")
	s.win("A")
	s.win("E")
	s.win("F")

	if diff := cmp.Diff([]string{"D", "A", "E"}, s.topIDs()); diff != "" {
		s.Failf("unexpected ranking", "(-want +got):\n%s", diff)
	}

	// F overtakes everyone, the tied players keep their order behind it
	s.win("F")
	if diff := cmp.Diff([]string{"F", "D", "A"}, s.topIDs()); diff != "" {
		s.Failf("unexpected ranking", "(-want +got):\n%s", diff)
	}
}

func (s *LeaderboardServiceTestSuite) TestPlayerSnapshotTakenAtFirstWin() {
	_, err := s.service.RecordWin(s.ctx, &RecordWinInput{
		Player: models.Player{ID: "A", DisplayName: "First", AvatarURL: "first.png"},
	})
	s.Require().NoError(err)

	out, err := s.service.RecordWin(s.ctx, &RecordWinInput{
		Player: models.Player{ID: "A", DisplayName: "Renamed", AvatarURL: "second.png"},
	})
	s.Require().NoError(err)

	s.Equal(2, out.Entry.Wins)
	s.Equal("First", out.Entry.Player.DisplayName)
	s.Equal("first.png", out.Entry.Player.AvatarURL)
	s.Require().Len(out.Top, 1)
	s.Equal("First", out.Top[0].Player.DisplayName)
}

func (s *LeaderboardServiceTestSuite) TestRecordWinValidatesInput() {
	_, err := s.service.RecordWin(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.service.RecordWin(s.ctx, &RecordWinInput{})
	s.ErrorIs(err, ErrEmptyPlayerID)
}

func (s *LeaderboardServiceTestSuite) TestRepositoryErrors() {
	mockRepo := repoMocks.NewMockRepository(s.ctrl)
	svc, err := New(&Config{Repository: mockRepo, BoardID: "b"})
	s.Require().NoError(err)

	boom := errors.New("boom")

	mockRepo.EXPECT().GetEntries(s.ctx, &leaderboardRepo.GetEntriesInput{BoardID: "b"}).Return(nil, boom)
	_, err = svc.RecordWin(s.ctx, &RecordWinInput{Player: models.Player{ID: "A"}})
	s.ErrorIs(err, boom)

	mockRepo.EXPECT().GetEntries(s.ctx, gomock.Any()).Return(&leaderboardRepo.GetEntriesOutput{}, nil)
	mockRepo.EXPECT().SaveEntries(s.ctx, gomock.Any()).Return(boom)
	_, err = svc.RecordWin(s.ctx, &RecordWinInput{Player: models.Player{ID: "A"}})
	s.ErrorIs(err, boom)

	mockRepo.EXPECT().GetEntries(s.ctx, gomock.Any()).Return(nil, boom)
	_, err = svc.GetTopEntries(s.ctx, &GetTopEntriesInput{})
	s.ErrorIs(err, boom)
}
