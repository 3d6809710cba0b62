package game

import (
	"sort"
	"time"

	"github.com/riskibarqy/football-data/internal/domain/league"
)

type TeamRef struct {
	ID   int64
	Name string
}

// Game is the relational half of a match. Scores stay nil until the match
// has been played; GameDate is nil for unscheduled fixtures.
type Game struct {
	ID          int64
	Season      league.Season
	GameDate    *time.Time
	HomeTeam    TeamRef
	GuestTeam   TeamRef
	HomeScored  *int
	GuestScored *int
}

type WithLeague struct {
	Game
	League league.League
}

// MergeByDateDesc merges independently fetched home and away game lists into
// one history ordered by game date descending. Games without a date sink to
// the end; ties break by game id descending so the order is deterministic.
func MergeByDateDesc(home, away []Game) []Game {
	merged := make([]Game, 0, len(home)+len(away))
	merged = append(merged, home...)
	merged = append(merged, away...)

	sort.SliceStable(merged, func(i, j int) bool {
		left, right := merged[i].GameDate, merged[j].GameDate
		switch {
		case left == nil && right == nil:
			return merged[i].ID > merged[j].ID
		case left == nil:
			return false
		case right == nil:
			return true
		case left.Equal(*right):
			return merged[i].ID > merged[j].ID
		default:
			return left.After(*right)
		}
	})

	return merged
}
