package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/matchdoc"
)

func scorerLeagueRepo() *stubLeagueRepository {
	return &stubLeagueRepository{
		byID:      map[int64]league.League{1: {ID: 1, Name: "Premier League"}},
		seasonsBy: map[int64]league.Season{10: {ID: 10, Name: "2025/2026", LeagueID: 1}},
	}
}

func TestScorerService_ListTopScorers_RanksJoinedAggregates(t *testing.T) {
	t.Parallel()

	matchRepo := &stubMatchRepository{
		appearances: []matchdoc.PlayerAggregate{
			{PlayerID: 100, PlayerName: "Saka", TeamID: 3, TeamName: "Arsenal", Count: 2},
			{PlayerID: 200, PlayerName: "Palmer", TeamID: 4, TeamName: "Chelsea", Count: 1},
		},
		actions: []matchdoc.PlayerAggregate{
			{PlayerID: 100, Count: 2},
		},
	}
	service := NewScorerService(scorerLeagueRepo(), matchRepo, nil)

	view, err := service.ListTopScorers(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("ListTopScorers error: %v", err)
	}
	if view.Season.ID != 10 {
		t.Fatalf("unexpected season: %+v", view.Season)
	}
	if len(view.Players) != 2 {
		t.Fatalf("expected 2 ranked players, got %d", len(view.Players))
	}
	if view.Players[0].ID != 100 || view.Players[0].EffectiveActions != 2 || view.Players[0].Games != 2 {
		t.Fatalf("unexpected leader: %+v", view.Players[0])
	}
	if view.Players[1].ID != 200 || view.Players[1].EffectiveActions != 0 {
		t.Fatalf("player without actions should rank with zero, got %+v", view.Players[1])
	}
	if view.Players[0].TeamNumber != nil || view.Players[1].TeamNumber != nil {
		t.Fatal("ranking entries must not carry a team number")
	}
}

func TestScorerService_ListTopScorers_DefaultEventTypes(t *testing.T) {
	t.Parallel()

	matchRepo := &stubMatchRepository{}
	service := NewScorerService(scorerLeagueRepo(), matchRepo, nil)

	if _, err := service.ListTopScorers(context.Background(), 1, 10); err != nil {
		t.Fatalf("ListTopScorers error: %v", err)
	}

	want := matchdoc.DefaultScorerEvents()
	if len(matchRepo.gotTypes) != len(want) {
		t.Fatalf("expected %d event types, got %v", len(want), matchRepo.gotTypes)
	}
	for i, eventType := range want {
		if matchRepo.gotTypes[i] != eventType {
			t.Fatalf("expected default event types %v, got %v", want, matchRepo.gotTypes)
		}
	}
}

func TestScorerService_ListTopScorers_EmptySeason(t *testing.T) {
	t.Parallel()

	service := NewScorerService(scorerLeagueRepo(), &stubMatchRepository{}, nil)

	view, err := service.ListTopScorers(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("ListTopScorers error: %v", err)
	}
	if len(view.Players) != 0 {
		t.Fatalf("expected empty ranking, got %+v", view.Players)
	}
}

func TestScorerService_ListTopScorers_StoreFaultPropagates(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("aggregation cursor closed")
	service := NewScorerService(scorerLeagueRepo(), &stubMatchRepository{err: storeErr}, nil)

	_, err := service.ListTopScorers(context.Background(), 1, 10)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestScorerService_ListTopScorers_UnknownSeason(t *testing.T) {
	t.Parallel()

	service := NewScorerService(scorerLeagueRepo(), &stubMatchRepository{}, nil)

	if _, err := service.ListTopScorers(context.Background(), 1, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
