package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/person"
)

// personRowModel carries the person identity fields of a player or manager
// row. ID is the role row id (players.id or managers.id), not persons.id;
// the detail views expose the id the caller looked up.
type personRowModel struct {
	ID          int64     `db:"id"`
	Name        string    `db:"person_name"`
	FullName    string    `db:"full_name"`
	BirthDate   time.Time `db:"birth_date"`
	CountryID   int64     `db:"country_id"`
	CountryName string    `db:"country_name"`
}

func (m personRowModel) toDomain() person.Person {
	return person.Person{
		ID:        m.ID,
		Name:      m.Name,
		FullName:  m.FullName,
		BirthDate: m.BirthDate,
		Country:   league.Country{ID: m.CountryID, Name: m.CountryName},
	}
}

type playerRowModel struct {
	personRowModel
	TeamNumber sql.NullInt64  `db:"team_number"`
	TeamID     sql.NullInt64  `db:"team_id"`
	TeamName   sql.NullString `db:"team_name"`
}

func (m playerRowModel) toDomain() person.PlayerDetails {
	return person.PlayerDetails{
		Person:     m.personRowModel.toDomain(),
		TeamNumber: nullIntPtr(m.TeamNumber),
		Team:       m.team(),
	}
}

func (m playerRowModel) team() *person.TeamRef {
	if !m.TeamID.Valid {
		return nil
	}
	return &person.TeamRef{ID: m.TeamID.Int64, Name: m.TeamName.String}
}

type managerRowModel struct {
	personRowModel
	TeamID   sql.NullInt64  `db:"team_id"`
	TeamName sql.NullString `db:"team_name"`
}

func (m managerRowModel) toDomain() person.ManagerDetails {
	details := person.ManagerDetails{Person: m.personRowModel.toDomain()}
	if m.TeamID.Valid {
		details.Team = &person.TeamRef{ID: m.TeamID.Int64, Name: m.TeamName.String}
	}
	return details
}

type seasonPlayerRowModel struct {
	ID         int64         `db:"player_id"`
	Name       string        `db:"player_name"`
	TeamNumber sql.NullInt64 `db:"team_number"`
	TeamID     int64         `db:"team_id"`
	TeamName   string        `db:"team_name"`
}

func (m seasonPlayerRowModel) toDomain() person.SeasonPlayer {
	return person.SeasonPlayer{
		ID:         m.ID,
		Name:       m.Name,
		TeamNumber: nullIntPtr(m.TeamNumber),
		Team:       person.TeamRef{ID: m.TeamID, Name: m.TeamName},
	}
}
