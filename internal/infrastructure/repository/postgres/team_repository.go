package postgres

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/team"
	qb "github.com/riskibarqy/football-data/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Details, error) {
	query, args, err := qb.Select(
		"t.id AS team_id",
		"t.name AS team_name",
		"t.founded AS founded",
		"m.id AS manager_id",
		"p.name AS manager_name",
	).
		From("teams t").
		LeftJoin("managers m", "m.team_id = t.id").
		LeftJoin("persons p", "p.id = m.person_id").
		OrderBy("t.id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list teams query")
	}

	var rows []teamDetailsRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "list teams")
	}

	out := make([]team.Details, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// GetByID loads the whole team subtree in one read-only transaction so the
// connection is scoped to this single logical operation.
func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Relations, bool, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return team.Relations{}, false, errors.Wrap(err, "begin team tx")
	}
	defer func() { _ = tx.Rollback() }()

	base, found, err := getTeamBase(ctx, tx, teamID)
	if err != nil || !found {
		return team.Relations{}, found, err
	}

	seasons, err := listTeamSeasons(ctx, tx, teamID)
	if err != nil {
		return team.Relations{}, false, err
	}

	players, err := listTeamPlayers(ctx, tx, teamID)
	if err != nil {
		return team.Relations{}, false, err
	}

	if err := tx.Commit(); err != nil {
		return team.Relations{}, false, errors.Wrap(err, "commit team tx")
	}

	base.Seasons = seasons
	base.Players = players
	return base, true, nil
}

func getTeamBase(ctx context.Context, tx *sqlx.Tx, teamID int64) (team.Relations, bool, error) {
	query, args, err := qb.Select(
		"t.id AS team_id",
		"t.name AS team_name",
		"t.founded AS founded",
		"c.id AS country_id",
		"c.name AS country_name",
		"m.id AS manager_id",
		"p.name AS manager_name",
	).
		From("teams t").
		Join("countries c", "c.id = t.country_id").
		LeftJoin("managers m", "m.team_id = t.id").
		LeftJoin("persons p", "p.id = m.person_id").
		Where(qb.Eq("t.id", teamID)).
		ToSQL()
	if err != nil {
		return team.Relations{}, false, errors.Wrap(err, "build get team query")
	}

	var row teamRelationsRowModel
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Relations{}, false, nil
		}
		return team.Relations{}, false, errors.Wrapf(err, "get team %d", teamID)
	}

	return team.Relations{
		Team:    row.teamRowModel.toDomain(),
		Country: league.Country{ID: row.CountryID, Name: row.CountryName},
		Manager: row.manager(),
	}, true, nil
}

func listTeamSeasons(ctx context.Context, tx *sqlx.Tx, teamID int64) ([]league.Season, error) {
	query, args, err := qb.Select(
		"s.id AS season_id",
		"s.name AS season_name",
		"s.league_id AS league_id",
		"s.is_current AS is_current",
	).
		From("seasons s").
		Join("standings st", "st.season_id = s.id").
		Where(qb.Eq("st.team_id", teamID)).
		OrderBy("s.id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build team seasons query")
	}

	var rows []seasonRowModel
	if err := tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "list seasons of team %d", teamID)
	}

	out := make([]league.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func listTeamPlayers(ctx context.Context, tx *sqlx.Tx, teamID int64) ([]team.PlayerRef, error) {
	query, args, err := qb.Select(
		"pl.id AS player_id",
		"per.name AS player_name",
		"pl.team_number AS team_number",
	).
		From("players pl").
		Join("persons per", "per.id = pl.person_id").
		Where(qb.Eq("pl.team_id", teamID)).
		OrderBy("pl.id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build team players query")
	}

	var rows []teamPlayerRowModel
	if err := tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "list players of team %d", teamID)
	}

	out := make([]team.PlayerRef, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) GetSummary(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select(
		"t.id AS team_id",
		"t.name AS team_name",
		"t.founded AS founded",
	).
		From("teams t").
		Where(qb.Eq("t.id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, errors.Wrap(err, "build team summary query")
	}

	var row teamRowModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, errors.Wrapf(err, "get team summary %d", teamID)
	}
	return row.toDomain(), true, nil
}
