package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/matchdoc"
	leaguemock "github.com/riskibarqy/football-data/internal/mocks/domain/league"
	matchdocmock "github.com/riskibarqy/football-data/internal/mocks/domain/matchdoc"
	"github.com/stretchr/testify/mock"
)

func TestScorerService_ListTopScorers_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	matchRepo := matchdocmock.NewRepository(t)

	service := NewScorerService(leagueRepo, matchRepo, nil)

	leagueRepo.
		On("GetByID", mock.Anything, int64(1)).
		Return(league.League{ID: 1, Name: "Premier League"}, true, nil).
		Once()
	leagueRepo.
		On("GetSeason", mock.Anything, int64(1), int64(10)).
		Return(league.Season{ID: 10, Name: "2025/2026", LeagueID: 1}, true, nil).
		Once()
	matchRepo.
		On("AppearancesBySeason", mock.Anything, int64(10)).
		Return([]matchdoc.PlayerAggregate{
			{PlayerID: 101, PlayerName: "Kane", TeamID: 7, TeamName: "Bayern", Count: 2},
		}, nil).
		Once()
	matchRepo.
		On("EffectiveActionsBySeason", mock.Anything, int64(10), matchdoc.DefaultScorerEvents()).
		Return([]matchdoc.PlayerAggregate{
			{PlayerID: 101, PlayerName: "Kane", TeamID: 7, TeamName: "Bayern", Count: 3},
		}, nil).
		Once()

	got, err := service.ListTopScorers(ctx, 1, 10)
	if err != nil {
		t.Fatalf("list top scorers: %v", err)
	}
	if got.Season.ID != 10 {
		t.Fatalf("unexpected season id: got=%d want=10", got.Season.ID)
	}
	if len(got.Players) != 1 {
		t.Fatalf("unexpected ranking size: got=%d want=1", len(got.Players))
	}
	if got.Players[0].EffectiveActions != 3 {
		t.Fatalf("unexpected effective actions: got=%d want=3", got.Players[0].EffectiveActions)
	}
}

func TestScorerService_ListTopScorers_SeasonNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	matchRepo := matchdocmock.NewRepository(t)

	service := NewScorerService(leagueRepo, matchRepo, nil)

	leagueRepo.
		On("GetByID", mock.Anything, int64(1)).
		Return(league.League{ID: 1}, true, nil).
		Once()
	leagueRepo.
		On("GetSeason", mock.Anything, int64(1), int64(99)).
		Return(league.Season{}, false, nil).
		Once()

	_, err := service.ListTopScorers(ctx, 1, 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
