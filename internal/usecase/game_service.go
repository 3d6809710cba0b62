package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-data/internal/domain/game"
	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/matchdoc"
	"github.com/sourcegraph/conc/pool"
)

type GameService struct {
	leagueRepo league.Repository
	gameRepo   game.Repository
	matchRepo  matchdoc.Repository
}

func NewGameService(leagueRepo league.Repository, gameRepo game.Repository, matchRepo matchdoc.Repository) *GameService {
	return &GameService{
		leagueRepo: leagueRepo,
		gameRepo:   gameRepo,
		matchRepo:  matchRepo,
	}
}

// GetByID loads the fixture row and its match document concurrently. A
// fixture without a document is still a valid game; its compositions and
// events are just empty.
func (s *GameService) GetByID(ctx context.Context, gameID int64) (GameDetailView, error) {
	ctx, span := startUsecaseSpan(ctx, "GameService.GetByID")
	defer span.End()

	if gameID <= 0 {
		return GameDetailView{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	var (
		fixture    game.Game
		gameExists bool
		doc        matchdoc.Document
		docExists  bool
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		fixture, gameExists, err = s.gameRepo.GetByID(ctx, gameID)
		if err != nil {
			return fmt.Errorf("get game: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		doc, docExists, err = s.matchRepo.GetByGameID(ctx, gameID)
		if err != nil {
			return fmt.Errorf("get match document: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return GameDetailView{}, err
	}
	if !gameExists {
		return GameDetailView{}, fmt.Errorf("%w: game=%d", ErrNotFound, gameID)
	}

	view := GameDetailView{
		Game:             fixture,
		HomeComposition:  make([]PlayerInGame, 0),
		GuestComposition: make([]PlayerInGame, 0),
		Events:           make([]matchdoc.Event, 0),
	}
	if !docExists {
		return view, nil
	}

	view.HomeComposition = buildComposition(doc.HomeStart, doc.HomeSubstitution)
	view.GuestComposition = buildComposition(doc.GuestStart, doc.GuestSubstitution)
	view.HomeManager = doc.HomeManager
	view.GuestManager = doc.GuestManager
	view.Events = append(view.Events, doc.Events...)
	return view, nil
}

// buildComposition lists starters first, then substitutes. A player named in
// both lists keeps the starting lineup status.
func buildComposition(start, substitutions []matchdoc.PersonSnapshot) []PlayerInGame {
	out := make([]PlayerInGame, 0, len(start)+len(substitutions))
	started := make(map[int64]struct{}, len(start))
	for _, snapshot := range start {
		started[snapshot.ID] = struct{}{}
		out = append(out, PlayerInGame{
			ID:     snapshot.ID,
			Name:   snapshot.Name,
			Team:   snapshot.Team,
			Status: PlayerStatusStartingLineup,
		})
	}
	for _, snapshot := range substitutions {
		if _, ok := started[snapshot.ID]; ok {
			continue
		}
		out = append(out, PlayerInGame{
			ID:     snapshot.ID,
			Name:   snapshot.Name,
			Team:   snapshot.Team,
			Status: PlayerStatusSubstitute,
		})
	}
	return out
}

func (s *GameService) ListForDate(ctx context.Context, date time.Time) ([]game.WithLeague, error) {
	ctx, span := startUsecaseSpan(ctx, "GameService.ListForDate")
	defer span.End()

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	items, err := s.gameRepo.ListForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list games by date: %w", err)
	}
	return items, nil
}

func (s *GameService) ListForSeason(ctx context.Context, leagueID, seasonID int64) (SeasonGamesView, error) {
	ctx, span := startUsecaseSpan(ctx, "GameService.ListForSeason")
	defer span.End()

	season, err := resolveSeason(ctx, s.leagueRepo, leagueID, seasonID)
	if err != nil {
		return SeasonGamesView{}, err
	}

	games, err := s.gameRepo.ListForSeason(ctx, seasonID)
	if err != nil {
		return SeasonGamesView{}, fmt.Errorf("list season games: %w", err)
	}

	return SeasonGamesView{Season: season, Games: games}, nil
}
