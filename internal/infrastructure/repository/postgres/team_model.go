package postgres

import (
	"database/sql"

	"github.com/riskibarqy/football-data/internal/domain/team"
)

type teamRowModel struct {
	ID      int64  `db:"team_id"`
	Name    string `db:"team_name"`
	Founded string `db:"founded"`
}

func (m teamRowModel) toDomain() team.Team {
	return team.Team{ID: m.ID, Name: m.Name, Founded: m.Founded}
}

type teamDetailsRowModel struct {
	teamRowModel
	ManagerID   sql.NullInt64  `db:"manager_id"`
	ManagerName sql.NullString `db:"manager_name"`
}

func (m teamDetailsRowModel) manager() *team.ManagerRef {
	if !m.ManagerID.Valid {
		return nil
	}
	return &team.ManagerRef{ID: m.ManagerID.Int64, Name: m.ManagerName.String}
}

func (m teamDetailsRowModel) toDomain() team.Details {
	return team.Details{
		Team:    m.teamRowModel.toDomain(),
		Manager: m.manager(),
	}
}

type teamRelationsRowModel struct {
	teamDetailsRowModel
	CountryID   int64  `db:"country_id"`
	CountryName string `db:"country_name"`
}

type teamPlayerRowModel struct {
	ID         int64         `db:"player_id"`
	Name       string        `db:"player_name"`
	TeamNumber sql.NullInt64 `db:"team_number"`
}

func (m teamPlayerRowModel) toDomain() team.PlayerRef {
	return team.PlayerRef{
		ID:         m.ID,
		Name:       m.Name,
		TeamNumber: nullIntPtr(m.TeamNumber),
	}
}
