package postgres

import (
	"database/sql"

	"github.com/riskibarqy/football-data/internal/domain/game"
	"github.com/riskibarqy/football-data/internal/domain/league"
)

type gameRowModel struct {
	ID              int64         `db:"game_id"`
	GameDate        sql.NullTime  `db:"game_date"`
	HomeTeamID      int64         `db:"home_team_id"`
	HomeTeamName    string        `db:"home_team_name"`
	GuestTeamID     int64         `db:"guest_team_id"`
	GuestTeamName   string        `db:"guest_team_name"`
	HomeScored      sql.NullInt64 `db:"home_scored_goals"`
	GuestScored     sql.NullInt64 `db:"guest_scored_goals"`
	SeasonID        int64         `db:"season_id"`
	SeasonName      string        `db:"season_name"`
	SeasonLeagueID  int64         `db:"season_league_id"`
	SeasonIsCurrent bool          `db:"season_is_current"`
}

func (m gameRowModel) toDomain() game.Game {
	return game.Game{
		ID: m.ID,
		Season: league.Season{
			ID:        m.SeasonID,
			Name:      m.SeasonName,
			LeagueID:  m.SeasonLeagueID,
			IsCurrent: m.SeasonIsCurrent,
		},
		GameDate:    nullTimePtr(m.GameDate),
		HomeTeam:    game.TeamRef{ID: m.HomeTeamID, Name: m.HomeTeamName},
		GuestTeam:   game.TeamRef{ID: m.GuestTeamID, Name: m.GuestTeamName},
		HomeScored:  nullIntPtr(m.HomeScored),
		GuestScored: nullIntPtr(m.GuestScored),
	}
}

type gameWithLeagueRowModel struct {
	gameRowModel
	LeagueID    int64  `db:"league_id"`
	LeagueName  string `db:"league_name"`
	CountryID   int64  `db:"country_id"`
	CountryName string `db:"country_name"`
}

func (m gameWithLeagueRowModel) toDomain() game.WithLeague {
	return game.WithLeague{
		Game: m.gameRowModel.toDomain(),
		League: league.League{
			ID:      m.LeagueID,
			Name:    m.LeagueName,
			Country: league.Country{ID: m.CountryID, Name: m.CountryName},
		},
	}
}
