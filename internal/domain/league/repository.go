package league

import "context"

// Repository describes league and season persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, leagueID int64) (League, bool, error)
	ListSeasons(ctx context.Context, leagueID int64) ([]SeasonWithLeader, error)
	GetSeason(ctx context.Context, leagueID, seasonID int64) (Season, bool, error)
	ListStandings(ctx context.Context, seasonID int64) ([]Standing, error)
}
