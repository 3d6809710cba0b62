package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/football-data/internal/domain/game"
	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/matchdoc"
)

func TestGameService_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	service := NewGameService(&stubLeagueRepository{}, &stubGameRepository{byID: map[int64]game.Game{}}, &stubMatchRepository{})

	_, err := service.GetByID(context.Background(), 55)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "game=55") {
		t.Fatalf("error should name the game id, got %q", err.Error())
	}
}

func TestGameService_GetByID_MissingDocumentYieldsEmptyLists(t *testing.T) {
	t.Parallel()

	gameRepo := &stubGameRepository{
		byID: map[int64]game.Game{55: {ID: 55, Season: league.Season{ID: 10}}},
	}
	service := NewGameService(&stubLeagueRepository{}, gameRepo, &stubMatchRepository{})

	view, err := service.GetByID(context.Background(), 55)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if view.Game.ID != 55 {
		t.Fatalf("unexpected game: %+v", view.Game)
	}
	if view.HomeComposition == nil || len(view.HomeComposition) != 0 {
		t.Fatalf("home composition should be empty, got %+v", view.HomeComposition)
	}
	if view.GuestComposition == nil || len(view.GuestComposition) != 0 {
		t.Fatalf("guest composition should be empty, got %+v", view.GuestComposition)
	}
	if view.Events == nil || len(view.Events) != 0 {
		t.Fatalf("events should be empty, got %+v", view.Events)
	}
	if view.HomeManager != nil || view.GuestManager != nil {
		t.Fatal("managers should be absent without a match document")
	}
}

func TestGameService_GetByID_StartListWinsOverSubstitution(t *testing.T) {
	t.Parallel()

	arsenal := matchdoc.TeamSnapshot{ID: 3, Name: "Arsenal"}
	doc := matchdoc.Document{
		GameID:   55,
		SeasonID: 10,
		HomeStart: []matchdoc.PersonSnapshot{
			{ID: 100, Name: "Saka", Team: arsenal},
			{ID: 101, Name: "Saliba", Team: arsenal},
		},
		HomeSubstitution: []matchdoc.PersonSnapshot{
			{ID: 101, Name: "Saliba", Team: arsenal},
			{ID: 102, Name: "Nwaneri", Team: arsenal},
		},
		HomeManager: &matchdoc.PersonSnapshot{ID: 900, Name: "Arteta", Team: arsenal},
	}
	gameRepo := &stubGameRepository{byID: map[int64]game.Game{55: {ID: 55}}}
	matchRepo := &stubMatchRepository{docs: map[int64]matchdoc.Document{55: doc}}
	service := NewGameService(&stubLeagueRepository{}, gameRepo, matchRepo)

	view, err := service.GetByID(context.Background(), 55)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if len(view.HomeComposition) != 3 {
		t.Fatalf("expected 3 players, got %+v", view.HomeComposition)
	}

	statuses := map[int64]string{}
	for _, player := range view.HomeComposition {
		if _, seen := statuses[player.ID]; seen {
			t.Fatalf("player %d listed twice", player.ID)
		}
		statuses[player.ID] = player.Status
	}
	if statuses[100] != PlayerStatusStartingLineup {
		t.Fatalf("starter should be tagged %q, got %q", PlayerStatusStartingLineup, statuses[100])
	}
	if statuses[101] != PlayerStatusStartingLineup {
		t.Fatalf("player in both lists keeps the start status, got %q", statuses[101])
	}
	if statuses[102] != PlayerStatusSubstitute {
		t.Fatalf("substitute should be tagged %q, got %q", PlayerStatusSubstitute, statuses[102])
	}
	if view.HomeManager == nil || view.HomeManager.ID != 900 {
		t.Fatalf("unexpected home manager: %+v", view.HomeManager)
	}
	if view.GuestManager != nil {
		t.Fatal("guest manager should stay absent")
	}
}

func TestGameService_ListForSeason_RequiresSeason(t *testing.T) {
	t.Parallel()

	leagueRepo := &stubLeagueRepository{
		byID:      map[int64]league.League{1: {ID: 1}},
		seasonsBy: map[int64]league.Season{},
	}
	service := NewGameService(leagueRepo, &stubGameRepository{}, &stubMatchRepository{})

	if _, err := service.ListForSeason(context.Background(), 1, 10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGameService_ListForDate_RejectsZeroDate(t *testing.T) {
	t.Parallel()

	service := NewGameService(&stubLeagueRepository{}, &stubGameRepository{}, &stubMatchRepository{})

	if _, err := service.ListForDate(context.Background(), time.Time{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
