package person

import "context"

type Repository interface {
	GetPlayer(ctx context.Context, playerID int64) (PlayerDetails, bool, error)
	GetManager(ctx context.Context, managerID int64) (ManagerDetails, bool, error)
	ListBySeason(ctx context.Context, seasonID int64) ([]SeasonPlayer, error)
}
