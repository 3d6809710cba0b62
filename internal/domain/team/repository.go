package team

import "context"

type Repository interface {
	List(ctx context.Context) ([]Details, error)
	GetByID(ctx context.Context, teamID int64) (Relations, bool, error)
	GetSummary(ctx context.Context, teamID int64) (Team, bool, error)
}
