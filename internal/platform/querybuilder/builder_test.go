package querybuilder

import (
	"testing"
)

func TestSelect_SimpleWhereOrder(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id", "name").From("leagues").
		Where(Eq("country_id", int64(7))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "SELECT id, name FROM leagues WHERE country_id = $1 ORDER BY id"
	if query != want {
		t.Fatalf("query mismatch:\n got %q\nwant %q", query, want)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelect_JoinsAndConditions(t *testing.T) {
	t.Parallel()

	query, args, err := Select("s.id", "s.name", "t.name AS leader_name").
		From("seasons s").
		LeftJoin("standings st", "st.season_id = s.id AND st.position = 1").
		LeftJoin("teams t", "t.id = st.team_id").
		Where(
			Eq("s.league_id", int64(1)),
			Eq("s.id", int64(2)),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "SELECT s.id, s.name, t.name AS leader_name FROM seasons s" +
		" LEFT JOIN standings st ON st.season_id = s.id AND st.position = 1" +
		" LEFT JOIN teams t ON t.id = st.team_id" +
		" WHERE s.league_id = $1 AND s.id = $2"
	if query != want {
		t.Fatalf("query mismatch:\n got %q\nwant %q", query, want)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %v", args)
	}
}

func TestSelect_InEmptyValuesNeverMatches(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").From("games").
		Where(In("season_id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	if query != "SELECT id FROM games WHERE 1=0" {
		t.Fatalf("unexpected query: %q", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestSelect_ExprRewritesPlaceholders(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").From("games").
		Where(
			Eq("season_id", int64(3)),
			Expr("game_date::date = ?::date", "2025-02-01"),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "SELECT id FROM games WHERE season_id = $1 AND game_date::date = $2::date"
	if query != want {
		t.Fatalf("query mismatch:\n got %q\nwant %q", query, want)
	}
	if len(args) != 2 || args[1] != "2025-02-01" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelect_MissingTableFails(t *testing.T) {
	t.Parallel()

	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatal("expected error for missing table")
	}
	if _, _, err := Select().From("teams").ToSQL(); err == nil {
		t.Fatal("expected error for missing columns")
	}
}
