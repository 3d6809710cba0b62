package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-data/internal/domain/game"
	"github.com/riskibarqy/football-data/internal/domain/team"
)

type TeamService struct {
	teamRepo team.Repository
	gameRepo game.Repository
}

func NewTeamService(teamRepo team.Repository, gameRepo game.Repository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		gameRepo: gameRepo,
	}
}

func (s *TeamService) List(ctx context.Context) ([]team.Details, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.List")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

func (s *TeamService) GetByID(ctx context.Context, teamID int64) (team.Relations, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.GetByID")
	defer span.End()

	if teamID <= 0 {
		return team.Relations{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Relations{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Relations{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	return item, nil
}

// ListGames merges home and away fixtures into one history, most recent
// game first.
func (s *TeamService) ListGames(ctx context.Context, teamID int64) (TeamGamesView, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.ListGames")
	defer span.End()

	if teamID <= 0 {
		return TeamGamesView{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	summary, exists, err := s.teamRepo.GetSummary(ctx, teamID)
	if err != nil {
		return TeamGamesView{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return TeamGamesView{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	home, away, err := s.gameRepo.ListForTeam(ctx, teamID)
	if err != nil {
		return TeamGamesView{}, fmt.Errorf("list team games: %w", err)
	}

	return TeamGamesView{
		Team:  summary,
		Games: game.MergeByDateDesc(home, away),
	}, nil
}
