package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-data/internal/domain/person"
	qb "github.com/riskibarqy/football-data/internal/platform/querybuilder"
)

type PersonRepository struct {
	db *sqlx.DB
}

func NewPersonRepository(db *sqlx.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// playerSelect exposes pl.id as the view id: players and persons run on
// separate id sequences and the caller looked the player up by players.id.
func playerSelect() *qb.SelectBuilder {
	return qb.Select(
		"pl.id AS id",
		"per.name AS person_name",
		"per.full_name AS full_name",
		"per.birth_date AS birth_date",
		"c.id AS country_id",
		"c.name AS country_name",
		"pl.team_number AS team_number",
		"t.id AS team_id",
		"t.name AS team_name",
	).
		From("players pl").
		Join("persons per", "per.id = pl.person_id").
		Join("countries c", "c.id = per.country_id").
		LeftJoin("teams t", "t.id = pl.team_id")
}

func managerSelect() *qb.SelectBuilder {
	return qb.Select(
		"m.id AS id",
		"per.name AS person_name",
		"per.full_name AS full_name",
		"per.birth_date AS birth_date",
		"c.id AS country_id",
		"c.name AS country_name",
		"t.id AS team_id",
		"t.name AS team_name",
	).
		From("managers m").
		Join("persons per", "per.id = m.person_id").
		Join("countries c", "c.id = per.country_id").
		LeftJoin("teams t", "t.id = m.team_id")
}

func (r *PersonRepository) GetPlayer(ctx context.Context, playerID int64) (person.PlayerDetails, bool, error) {
	query, args, err := playerSelect().
		Where(qb.Eq("pl.id", playerID)).
		ToSQL()
	if err != nil {
		return person.PlayerDetails{}, false, errors.Wrap(err, "build get player query")
	}

	var row playerRowModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return person.PlayerDetails{}, false, nil
		}
		return person.PlayerDetails{}, false, errors.Wrapf(err, "get player %d", playerID)
	}
	return row.toDomain(), true, nil
}

func (r *PersonRepository) GetManager(ctx context.Context, managerID int64) (person.ManagerDetails, bool, error) {
	query, args, err := managerSelect().
		Where(qb.Eq("m.id", managerID)).
		ToSQL()
	if err != nil {
		return person.ManagerDetails{}, false, errors.Wrap(err, "build get manager query")
	}

	var row managerRowModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return person.ManagerDetails{}, false, nil
		}
		return person.ManagerDetails{}, false, errors.Wrapf(err, "get manager %d", managerID)
	}
	return row.toDomain(), true, nil
}

// ListBySeason returns the rosters of every team that appears in the season
// standings, grouped by team in team id order.
func (r *PersonRepository) ListBySeason(ctx context.Context, seasonID int64) ([]person.SeasonPlayer, error) {
	query, args, err := qb.Select(
		"pl.id AS player_id",
		"per.name AS player_name",
		"pl.team_number AS team_number",
		"t.id AS team_id",
		"t.name AS team_name",
	).
		From("players pl").
		Join("persons per", "per.id = pl.person_id").
		Join("teams t", "t.id = pl.team_id").
		Join("standings st", "st.team_id = t.id").
		Where(qb.Eq("st.season_id", seasonID)).
		OrderBy("t.id", "pl.id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build season players query")
	}

	var rows []seasonPlayerRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "list players of season %d", seasonID)
	}

	out := make([]person.SeasonPlayer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
