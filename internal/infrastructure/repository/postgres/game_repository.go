package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-data/internal/domain/game"
	qb "github.com/riskibarqy/football-data/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func gameColumns() []string {
	return []string{
		"g.id AS game_id",
		"g.game_date AS game_date",
		"ht.id AS home_team_id",
		"ht.name AS home_team_name",
		"gt.id AS guest_team_id",
		"gt.name AS guest_team_name",
		"g.home_scored_goals AS home_scored_goals",
		"g.guest_scored_goals AS guest_scored_goals",
		"s.id AS season_id",
		"s.name AS season_name",
		"s.league_id AS season_league_id",
		"s.is_current AS season_is_current",
	}
}

func gameSelect(columns ...string) *qb.SelectBuilder {
	return qb.Select(append(gameColumns(), columns...)...).
		From("games g").
		Join("seasons s", "s.id = g.season_id").
		Join("teams ht", "ht.id = g.home_team_id").
		Join("teams gt", "gt.id = g.guest_team_id")
}

func (r *GameRepository) GetByID(ctx context.Context, gameID int64) (game.Game, bool, error) {
	query, args, err := gameSelect().
		Where(qb.Eq("g.id", gameID)).
		ToSQL()
	if err != nil {
		return game.Game{}, false, errors.Wrap(err, "build get game query")
	}

	var row gameRowModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, errors.Wrapf(err, "get game %d", gameID)
	}
	return row.toDomain(), true, nil
}

func (r *GameRepository) ListForSeason(ctx context.Context, seasonID int64) ([]game.Game, error) {
	query, args, err := gameSelect().
		Where(qb.Eq("g.season_id", seasonID)).
		OrderBy("g.game_date", "g.id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build season games query")
	}

	var rows []gameRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "list games of season %d", seasonID)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *GameRepository) ListForDate(ctx context.Context, date time.Time) ([]game.WithLeague, error) {
	query, args, err := gameSelect(
		"l.id AS league_id",
		"l.name AS league_name",
		"c.id AS country_id",
		"c.name AS country_name",
	).
		Join("leagues l", "l.id = s.league_id").
		Join("countries c", "c.id = l.country_id").
		Where(qb.Expr("g.game_date::date = ?::date", date.Format("2006-01-02"))).
		OrderBy("l.id", "g.id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build games by date query")
	}

	var rows []gameWithLeagueRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "list games on %s", date.Format("2006-01-02"))
	}

	out := make([]game.WithLeague, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// ListForTeam reads both sides of the fixture list inside one read-only
// transaction so home and away rows come from a consistent snapshot.
func (r *GameRepository) ListForTeam(ctx context.Context, teamID int64) (home []game.Game, away []game.Game, err error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, nil, errors.Wrap(err, "begin team games tx")
	}
	defer func() { _ = tx.Rollback() }()

	home, err = listTeamSideGames(ctx, tx, "g.home_team_id", teamID)
	if err != nil {
		return nil, nil, err
	}
	away, err = listTeamSideGames(ctx, tx, "g.guest_team_id", teamID)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, errors.Wrap(err, "commit team games tx")
	}
	return home, away, nil
}

func listTeamSideGames(ctx context.Context, tx *sqlx.Tx, sideColumn string, teamID int64) ([]game.Game, error) {
	query, args, err := gameSelect().
		Where(qb.Eq(sideColumn, teamID)).
		OrderBy("g.id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build team games query")
	}

	var rows []gameRowModel
	if err := tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "list games of team %d", teamID)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
