package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-data/internal/domain/league"
	qb "github.com/riskibarqy/football-data/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

var leagueSelectColumns = []string{
	"l.id AS league_id",
	"l.name AS league_name",
	"c.id AS country_id",
	"c.name AS country_name",
	"s.id AS season_id",
	"s.name AS season_name",
	"s.is_current AS season_is_current",
}

func leagueSelect() *qb.SelectBuilder {
	return qb.Select(leagueSelectColumns...).
		From("leagues l").
		Join("countries c", "c.id = l.country_id").
		LeftJoin("seasons s", "s.league_id = l.id AND s.is_current")
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := leagueSelect().OrderBy("l.id").ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list leagues query")
	}

	var rows []leagueRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "list leagues")
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	query, args, err := leagueSelect().Where(qb.Eq("l.id", leagueID)).ToSQL()
	if err != nil {
		return league.League{}, false, errors.Wrap(err, "build get league query")
	}

	var row leagueRowModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, errors.Wrapf(err, "get league %d", leagueID)
	}
	return row.toDomain(), true, nil
}

func (r *LeagueRepository) ListSeasons(ctx context.Context, leagueID int64) ([]league.SeasonWithLeader, error) {
	query, args, err := qb.Select(
		"s.id AS season_id",
		"s.name AS season_name",
		"s.league_id AS league_id",
		"s.is_current AS is_current",
		"t.id AS leader_team_id",
		"t.name AS leader_team_name",
	).
		From("seasons s").
		LeftJoin("standings st", "st.season_id = s.id AND st.position = 1").
		LeftJoin("teams t", "t.id = st.team_id").
		Where(qb.Eq("s.league_id", leagueID)).
		OrderBy("s.id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list seasons query")
	}

	var rows []seasonWithLeaderRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "list seasons of league %d", leagueID)
	}

	out := make([]league.SeasonWithLeader, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *LeagueRepository) GetSeason(ctx context.Context, leagueID, seasonID int64) (league.Season, bool, error) {
	query, args, err := qb.Select(
		"s.id AS season_id",
		"s.name AS season_name",
		"s.league_id AS league_id",
		"s.is_current AS is_current",
	).
		From("seasons s").
		Where(
			qb.Eq("s.league_id", leagueID),
			qb.Eq("s.id", seasonID),
		).
		ToSQL()
	if err != nil {
		return league.Season{}, false, errors.Wrap(err, "build get season query")
	}

	var row seasonRowModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.Season{}, false, nil
		}
		return league.Season{}, false, errors.Wrapf(err, "get season %d of league %d", seasonID, leagueID)
	}
	return row.toDomain(), true, nil
}

func (r *LeagueRepository) ListStandings(ctx context.Context, seasonID int64) ([]league.Standing, error) {
	query, args, err := qb.Select(
		"st.season_id AS season_id",
		"st.team_id AS team_id",
		"t.name AS team_name",
		"st.position AS position",
		"st.games AS games",
		"st.wins AS wins",
		"st.draws AS draws",
		"st.loses AS loses",
		"st.scored_goals AS scored_goals",
		"st.conceded_goals AS conceded_goals",
		"st.points AS points",
	).
		From("standings st").
		Join("teams t", "t.id = st.team_id").
		Where(qb.Eq("st.season_id", seasonID)).
		OrderBy("st.position").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list standings query")
	}

	var rows []standingRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "list standings of season %d", seasonID)
	}

	out := make([]league.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
