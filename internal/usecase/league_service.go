package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/person"
)

type LeagueService struct {
	leagueRepo league.Repository
	personRepo person.Repository
}

func NewLeagueService(leagueRepo league.Repository, personRepo person.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		personRepo: personRepo,
	}
}

func (s *LeagueService) List(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.List")
	defer span.End()

	items, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return items, nil
}

func (s *LeagueService) GetByID(ctx context.Context, leagueID int64) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.GetByID")
	defer span.End()

	if leagueID <= 0 {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}
	return item, nil
}

func (s *LeagueService) ListSeasons(ctx context.Context, leagueID int64) ([]league.SeasonWithLeader, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.ListSeasons")
	defer span.End()

	if _, err := s.GetByID(ctx, leagueID); err != nil {
		return nil, err
	}

	items, err := s.leagueRepo.ListSeasons(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return items, nil
}

func (s *LeagueService) GetSeason(ctx context.Context, leagueID, seasonID int64) (SeasonTableView, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.GetSeason")
	defer span.End()

	season, err := resolveSeason(ctx, s.leagueRepo, leagueID, seasonID)
	if err != nil {
		return SeasonTableView{}, err
	}

	standings, err := s.leagueRepo.ListStandings(ctx, seasonID)
	if err != nil {
		return SeasonTableView{}, fmt.Errorf("list standings: %w", err)
	}

	return SeasonTableView{Season: season, Standings: standings}, nil
}

// ListSeasonPlayers groups a season's rosters by team. The repository
// orders rows by team id so grouping is a single pass.
func (s *LeagueService) ListSeasonPlayers(ctx context.Context, leagueID, seasonID int64) (SeasonPlayersView, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.ListSeasonPlayers")
	defer span.End()

	season, err := resolveSeason(ctx, s.leagueRepo, leagueID, seasonID)
	if err != nil {
		return SeasonPlayersView{}, err
	}

	players, err := s.personRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return SeasonPlayersView{}, fmt.Errorf("list season players: %w", err)
	}

	view := SeasonPlayersView{Season: season, Teams: make([]TeamRoster, 0)}
	for _, player := range players {
		n := len(view.Teams)
		if n == 0 || view.Teams[n-1].Team.ID != player.Team.ID {
			view.Teams = append(view.Teams, TeamRoster{Team: player.Team})
			n++
		}
		view.Teams[n-1].Players = append(view.Teams[n-1].Players, player)
	}
	return view, nil
}

// resolveSeason checks the league before the season so a missing league and a
// missing season report different identifiers.
func resolveSeason(ctx context.Context, repo league.Repository, leagueID, seasonID int64) (league.Season, error) {
	if leagueID <= 0 {
		return league.Season{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if seasonID <= 0 {
		return league.Season{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	_, exists, err := repo.GetByID(ctx, leagueID)
	if err != nil {
		return league.Season{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.Season{}, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}

	season, exists, err := repo.GetSeason(ctx, leagueID, seasonID)
	if err != nil {
		return league.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return league.Season{}, fmt.Errorf("%w: season=%d league=%d", ErrNotFound, seasonID, leagueID)
	}
	return season, nil
}
