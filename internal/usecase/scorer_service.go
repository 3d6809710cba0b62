package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/matchdoc"
	"github.com/riskibarqy/football-data/internal/domain/scorer"
	"github.com/sourcegraph/conc/pool"
)

type ScorerService struct {
	leagueRepo league.Repository
	matchRepo  matchdoc.Repository
	eventTypes []matchdoc.EventType
}

// NewScorerService wires the ranking over both stores. eventTypes selects
// which event types count as effective actions; nil keeps the default set.
func NewScorerService(leagueRepo league.Repository, matchRepo matchdoc.Repository, eventTypes []matchdoc.EventType) *ScorerService {
	if len(eventTypes) == 0 {
		eventTypes = matchdoc.DefaultScorerEvents()
	}
	return &ScorerService{
		leagueRepo: leagueRepo,
		matchRepo:  matchRepo,
		eventTypes: eventTypes,
	}
}

// ListTopScorers runs both season aggregations concurrently, joins them by
// player id and ranks the result. A season without match documents yields an
// empty ranking.
func (s *ScorerService) ListTopScorers(ctx context.Context, leagueID, seasonID int64) (TopScorersView, error) {
	ctx, span := startUsecaseSpan(ctx, "ScorerService.ListTopScorers")
	defer span.End()

	season, err := resolveSeason(ctx, s.leagueRepo, leagueID, seasonID)
	if err != nil {
		return TopScorersView{}, err
	}

	var appearances, actions []matchdoc.PlayerAggregate
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		appearances, err = s.matchRepo.AppearancesBySeason(ctx, seasonID)
		if err != nil {
			return fmt.Errorf("aggregate appearances: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		actions, err = s.matchRepo.EffectiveActionsBySeason(ctx, seasonID, s.eventTypes)
		if err != nil {
			return fmt.Errorf("aggregate effective actions: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return TopScorersView{}, err
	}

	return TopScorersView{
		Season:  season,
		Players: scorer.BuildRanking(appearances, actions),
	}, nil
}
