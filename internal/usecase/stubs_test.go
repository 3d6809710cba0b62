package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/football-data/internal/domain/game"
	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/matchdoc"
	"github.com/riskibarqy/football-data/internal/domain/person"
	"github.com/riskibarqy/football-data/internal/domain/team"
)

type stubLeagueRepository struct {
	leagues   []league.League
	byID      map[int64]league.League
	seasons   map[int64][]league.SeasonWithLeader
	seasonsBy map[int64]league.Season
	standings map[int64][]league.Standing
	err       error
}

func (s *stubLeagueRepository) List(context.Context) ([]league.League, error) {
	return s.leagues, s.err
}

func (s *stubLeagueRepository) GetByID(_ context.Context, leagueID int64) (league.League, bool, error) {
	if s.err != nil {
		return league.League{}, false, s.err
	}
	item, ok := s.byID[leagueID]
	return item, ok, nil
}

func (s *stubLeagueRepository) ListSeasons(_ context.Context, leagueID int64) ([]league.SeasonWithLeader, error) {
	return s.seasons[leagueID], s.err
}

func (s *stubLeagueRepository) GetSeason(_ context.Context, leagueID, seasonID int64) (league.Season, bool, error) {
	if s.err != nil {
		return league.Season{}, false, s.err
	}
	item, ok := s.seasonsBy[seasonID]
	if !ok || item.LeagueID != leagueID {
		return league.Season{}, false, nil
	}
	return item, true, nil
}

func (s *stubLeagueRepository) ListStandings(_ context.Context, seasonID int64) ([]league.Standing, error) {
	return s.standings[seasonID], s.err
}

type stubPersonRepository struct {
	players      map[int64]person.PlayerDetails
	managers     map[int64]person.ManagerDetails
	seasonRoster map[int64][]person.SeasonPlayer
	err          error
}

func (s *stubPersonRepository) GetPlayer(_ context.Context, playerID int64) (person.PlayerDetails, bool, error) {
	if s.err != nil {
		return person.PlayerDetails{}, false, s.err
	}
	item, ok := s.players[playerID]
	return item, ok, nil
}

func (s *stubPersonRepository) GetManager(_ context.Context, managerID int64) (person.ManagerDetails, bool, error) {
	if s.err != nil {
		return person.ManagerDetails{}, false, s.err
	}
	item, ok := s.managers[managerID]
	return item, ok, nil
}

func (s *stubPersonRepository) ListBySeason(_ context.Context, seasonID int64) ([]person.SeasonPlayer, error) {
	return s.seasonRoster[seasonID], s.err
}

type stubTeamRepository struct {
	teams []team.Details
	byID  map[int64]team.Relations
	err   error
}

func (s *stubTeamRepository) List(context.Context) ([]team.Details, error) {
	return s.teams, s.err
}

func (s *stubTeamRepository) GetByID(_ context.Context, teamID int64) (team.Relations, bool, error) {
	if s.err != nil {
		return team.Relations{}, false, s.err
	}
	item, ok := s.byID[teamID]
	return item, ok, nil
}

func (s *stubTeamRepository) GetSummary(_ context.Context, teamID int64) (team.Team, bool, error) {
	if s.err != nil {
		return team.Team{}, false, s.err
	}
	item, ok := s.byID[teamID]
	return item.Team, ok, nil
}

type stubGameRepository struct {
	byID      map[int64]game.Game
	byDate    []game.WithLeague
	bySeason  map[int64][]game.Game
	homeGames map[int64][]game.Game
	awayGames map[int64][]game.Game
	err       error
}

func (s *stubGameRepository) GetByID(_ context.Context, gameID int64) (game.Game, bool, error) {
	if s.err != nil {
		return game.Game{}, false, s.err
	}
	item, ok := s.byID[gameID]
	return item, ok, nil
}

func (s *stubGameRepository) ListForDate(context.Context, time.Time) ([]game.WithLeague, error) {
	return s.byDate, s.err
}

func (s *stubGameRepository) ListForSeason(_ context.Context, seasonID int64) ([]game.Game, error) {
	return s.bySeason[seasonID], s.err
}

func (s *stubGameRepository) ListForTeam(_ context.Context, teamID int64) ([]game.Game, []game.Game, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.homeGames[teamID], s.awayGames[teamID], nil
}

type stubMatchRepository struct {
	appearances []matchdoc.PlayerAggregate
	actions     []matchdoc.PlayerAggregate
	docs        map[int64]matchdoc.Document
	gotTypes    []matchdoc.EventType
	err         error
}

func (s *stubMatchRepository) AppearancesBySeason(context.Context, int64) ([]matchdoc.PlayerAggregate, error) {
	return s.appearances, s.err
}

func (s *stubMatchRepository) EffectiveActionsBySeason(_ context.Context, _ int64, types []matchdoc.EventType) ([]matchdoc.PlayerAggregate, error) {
	s.gotTypes = types
	return s.actions, s.err
}

func (s *stubMatchRepository) GetByGameID(_ context.Context, gameID int64) (matchdoc.Document, bool, error) {
	if s.err != nil {
		return matchdoc.Document{}, false, s.err
	}
	doc, ok := s.docs[gameID]
	return doc, ok, nil
}
