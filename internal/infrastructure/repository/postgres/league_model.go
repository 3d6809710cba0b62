package postgres

import (
	"database/sql"

	"github.com/riskibarqy/football-data/internal/domain/league"
)

type leagueRowModel struct {
	ID              int64          `db:"league_id"`
	Name            string         `db:"league_name"`
	CountryID       int64          `db:"country_id"`
	CountryName     string         `db:"country_name"`
	SeasonID        sql.NullInt64  `db:"season_id"`
	SeasonName      sql.NullString `db:"season_name"`
	SeasonIsCurrent sql.NullBool   `db:"season_is_current"`
}

// toDomain maps the left-joined current season: all-NULL columns become a
// nil CurrentSeason, never a zeroed struct.
func (m leagueRowModel) toDomain() league.League {
	out := league.League{
		ID:   m.ID,
		Name: m.Name,
		Country: league.Country{
			ID:   m.CountryID,
			Name: m.CountryName,
		},
	}
	if m.SeasonID.Valid {
		out.CurrentSeason = &league.Season{
			ID:        m.SeasonID.Int64,
			Name:      m.SeasonName.String,
			LeagueID:  m.ID,
			IsCurrent: m.SeasonIsCurrent.Bool,
		}
	}
	return out
}

type seasonRowModel struct {
	ID        int64  `db:"season_id"`
	Name      string `db:"season_name"`
	LeagueID  int64  `db:"league_id"`
	IsCurrent bool   `db:"is_current"`
}

func (m seasonRowModel) toDomain() league.Season {
	return league.Season{
		ID:        m.ID,
		Name:      m.Name,
		LeagueID:  m.LeagueID,
		IsCurrent: m.IsCurrent,
	}
}

type seasonWithLeaderRowModel struct {
	seasonRowModel
	LeaderTeamID   sql.NullInt64  `db:"leader_team_id"`
	LeaderTeamName sql.NullString `db:"leader_team_name"`
}

func (m seasonWithLeaderRowModel) toDomain() league.SeasonWithLeader {
	out := league.SeasonWithLeader{Season: m.seasonRowModel.toDomain()}
	if m.LeaderTeamID.Valid {
		out.Leader = &league.SeasonLeader{
			TeamID:   m.LeaderTeamID.Int64,
			TeamName: m.LeaderTeamName.String,
		}
	}
	return out
}

type standingRowModel struct {
	SeasonID      int64  `db:"season_id"`
	TeamID        int64  `db:"team_id"`
	TeamName      string `db:"team_name"`
	Position      int    `db:"position"`
	Games         int    `db:"games"`
	Wins          int    `db:"wins"`
	Draws         int    `db:"draws"`
	Loses         int    `db:"loses"`
	ScoredGoals   int    `db:"scored_goals"`
	ConcededGoals int    `db:"conceded_goals"`
	Points        int    `db:"points"`
}

func (m standingRowModel) toDomain() league.Standing {
	return league.Standing{
		SeasonID:      m.SeasonID,
		TeamID:        m.TeamID,
		TeamName:      m.TeamName,
		Position:      m.Position,
		Games:         m.Games,
		Wins:          m.Wins,
		Draws:         m.Draws,
		Loses:         m.Loses,
		ScoredGoals:   m.ScoredGoals,
		ConcededGoals: m.ConcededGoals,
		Points:        m.Points,
	}
}
