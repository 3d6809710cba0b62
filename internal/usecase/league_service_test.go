package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/person"
)

func TestLeagueService_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	service := NewLeagueService(&stubLeagueRepository{byID: map[int64]league.League{}}, &stubPersonRepository{})

	_, err := service.GetByID(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "league=42") {
		t.Fatalf("error should name the league id, got %q", err.Error())
	}
}

func TestLeagueService_GetSeason_DistinguishesMissingLeagueFromMissingSeason(t *testing.T) {
	t.Parallel()

	repo := &stubLeagueRepository{
		byID:      map[int64]league.League{1: {ID: 1, Name: "Premier League"}},
		seasonsBy: map[int64]league.Season{10: {ID: 10, Name: "2025/2026", LeagueID: 1}},
	}
	service := NewLeagueService(repo, &stubPersonRepository{})

	_, err := service.GetSeason(context.Background(), 2, 10)
	if !errors.Is(err, ErrNotFound) || !strings.Contains(err.Error(), "league=2") {
		t.Fatalf("missing league should report the league id, got %v", err)
	}
	if strings.Contains(err.Error(), "season=") {
		t.Fatalf("missing league must not be reported as a missing season, got %v", err)
	}

	_, err = service.GetSeason(context.Background(), 1, 99)
	if !errors.Is(err, ErrNotFound) || !strings.Contains(err.Error(), "season=99 league=1") {
		t.Fatalf("missing season should name both ids, got %v", err)
	}
}

func TestLeagueService_GetSeason_ReturnsStandings(t *testing.T) {
	t.Parallel()

	repo := &stubLeagueRepository{
		byID:      map[int64]league.League{1: {ID: 1}},
		seasonsBy: map[int64]league.Season{10: {ID: 10, LeagueID: 1, IsCurrent: true}},
		standings: map[int64][]league.Standing{
			10: {
				{SeasonID: 10, TeamID: 3, TeamName: "Arsenal", Position: 1, Points: 12},
				{SeasonID: 10, TeamID: 4, TeamName: "Chelsea", Position: 2, Points: 9},
			},
		},
	}
	service := NewLeagueService(repo, &stubPersonRepository{})

	view, err := service.GetSeason(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("GetSeason error: %v", err)
	}
	if view.Season.ID != 10 || !view.Season.IsCurrent {
		t.Fatalf("unexpected season: %+v", view.Season)
	}
	if len(view.Standings) != 2 || view.Standings[0].Position != 1 {
		t.Fatalf("unexpected standings: %+v", view.Standings)
	}
}

func TestLeagueService_ListSeasonPlayers_GroupsByTeam(t *testing.T) {
	t.Parallel()

	number := 9
	repo := &stubLeagueRepository{
		byID:      map[int64]league.League{1: {ID: 1}},
		seasonsBy: map[int64]league.Season{10: {ID: 10, LeagueID: 1}},
	}
	personRepo := &stubPersonRepository{
		seasonRoster: map[int64][]person.SeasonPlayer{
			10: {
				{ID: 100, Name: "Saliba", Team: person.TeamRef{ID: 3, Name: "Arsenal"}},
				{ID: 101, Name: "Saka", TeamNumber: &number, Team: person.TeamRef{ID: 3, Name: "Arsenal"}},
				{ID: 200, Name: "Palmer", Team: person.TeamRef{ID: 4, Name: "Chelsea"}},
			},
		},
	}
	service := NewLeagueService(repo, personRepo)

	view, err := service.ListSeasonPlayers(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("ListSeasonPlayers error: %v", err)
	}
	if len(view.Teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(view.Teams))
	}
	if view.Teams[0].Team.ID != 3 || len(view.Teams[0].Players) != 2 {
		t.Fatalf("unexpected first roster: %+v", view.Teams[0])
	}
	if view.Teams[1].Team.ID != 4 || len(view.Teams[1].Players) != 1 {
		t.Fatalf("unexpected second roster: %+v", view.Teams[1])
	}
}

func TestLeagueService_ListSeasons_RequiresLeague(t *testing.T) {
	t.Parallel()

	service := NewLeagueService(&stubLeagueRepository{byID: map[int64]league.League{}}, &stubPersonRepository{})

	if _, err := service.ListSeasons(context.Background(), 7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.ListSeasons(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
