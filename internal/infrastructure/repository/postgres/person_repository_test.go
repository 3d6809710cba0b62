package postgres

import (
	"strings"
	"testing"
	"time"

	qb "github.com/riskibarqy/football-data/internal/platform/querybuilder"
)

// Players and managers run on their own id sequences, distinct from
// persons.id. The detail queries must expose the role row id the caller
// looked up, not the underlying person id.

func TestPlayerSelect_ExposesPlayerRowID(t *testing.T) {
	t.Parallel()

	query, args, err := playerSelect().Where(qb.Eq("pl.id", int64(5))).ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	if !strings.Contains(query, "pl.id AS id") {
		t.Fatalf("expected player row id as the exposed id, got %q", query)
	}
	if strings.Contains(query, "per.id AS id") {
		t.Fatalf("person id must not be exposed as the view id, got %q", query)
	}
	if len(args) != 1 || args[0] != int64(5) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestManagerSelect_ExposesManagerRowID(t *testing.T) {
	t.Parallel()

	query, _, err := managerSelect().Where(qb.Eq("m.id", int64(7))).ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	if !strings.Contains(query, "m.id AS id") {
		t.Fatalf("expected manager row id as the exposed id, got %q", query)
	}
	if strings.Contains(query, "per.id AS id") {
		t.Fatalf("person id must not be exposed as the view id, got %q", query)
	}
}

func TestPlayerRowModel_IDIsLookupID(t *testing.T) {
	t.Parallel()

	// Player row 5 backed by person row 9000: the view id must stay 5.
	row := playerRowModel{
		personRowModel: personRowModel{
			ID:          5,
			Name:        "Kane",
			FullName:    "Harry Kane",
			BirthDate:   time.Date(1993, 7, 28, 0, 0, 0, 0, time.UTC),
			CountryID:   44,
			CountryName: "England",
		},
	}

	got := row.toDomain()
	if got.ID != 5 {
		t.Fatalf("expected view id 5, got %d", got.ID)
	}
	if got.Team != nil || got.TeamNumber != nil {
		t.Fatalf("unassigned player must keep nil team fields: %+v", got)
	}
}
