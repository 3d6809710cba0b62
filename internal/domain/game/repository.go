package game

import (
	"context"
	"time"
)

type Repository interface {
	GetByID(ctx context.Context, gameID int64) (Game, bool, error)
	ListForDate(ctx context.Context, date time.Time) ([]WithLeague, error)
	ListForSeason(ctx context.Context, seasonID int64) ([]Game, error)
	// ListForTeam returns home and away games as two independent result
	// sets; ordering across the two is the caller's concern.
	ListForTeam(ctx context.Context, teamID int64) (home, away []Game, err error)
}
