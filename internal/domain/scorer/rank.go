package scorer

import (
	"sort"

	"github.com/riskibarqy/football-data/internal/domain/matchdoc"
)

// BuildRanking assembles the top-scorers view from the two season
// aggregations: the appearance set drives the output (every player with at
// least one start appears), the effective-actions set is a sparse lookup.
//
// Precondition: actions is sorted ascending by player id, as guaranteed by
// the matchdoc.Repository contract. Appearance order does not matter; the
// result is re-sorted by Rank.
func BuildRanking(appearances, actions []matchdoc.PlayerAggregate) []PlayerSeasonStats {
	stats := MatchEffectiveActions(appearances, actions)
	Rank(stats)
	return stats
}

// MatchEffectiveActions pairs every appearance row with its effective-actions
// count, defaulting to 0 when the player has none. Lookup is a binary search
// over the pre-sorted actions set; players beyond the last action entry and
// players absent from it both resolve to 0.
func MatchEffectiveActions(appearances, actions []matchdoc.PlayerAggregate) []PlayerSeasonStats {
	stats := make([]PlayerSeasonStats, 0, len(appearances))
	for _, appearance := range appearances {
		stats = append(stats, PlayerSeasonStats{
			ID:               appearance.PlayerID,
			Name:             appearance.PlayerName,
			Team:             TeamRef{ID: appearance.TeamID, Name: appearance.TeamName},
			Games:            appearance.Count,
			EffectiveActions: lookupActions(actions, appearance.PlayerID),
		})
	}
	return stats
}

func lookupActions(actions []matchdoc.PlayerAggregate, playerID int64) int {
	idx := sort.Search(len(actions), func(i int) bool {
		return actions[i].PlayerID >= playerID
	})
	if idx >= len(actions) || actions[idx].PlayerID != playerID {
		return 0
	}
	return actions[idx].Count
}

// Rank sorts the view in place: effective actions descending, then games
// ascending, then name ascending. The three keys make the order total for
// any two distinct players with distinct names.
func Rank(stats []PlayerSeasonStats) {
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].EffectiveActions != stats[j].EffectiveActions {
			return stats[i].EffectiveActions > stats[j].EffectiveActions
		}
		if stats[i].Games != stats[j].Games {
			return stats[i].Games < stats[j].Games
		}
		return stats[i].Name < stats[j].Name
	})
}
