package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-data/internal/domain/person"
)

type PersonService struct {
	personRepo person.Repository
}

func NewPersonService(personRepo person.Repository) *PersonService {
	return &PersonService{personRepo: personRepo}
}

func (s *PersonService) GetPlayer(ctx context.Context, playerID int64) (person.PlayerDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "PersonService.GetPlayer")
	defer span.End()

	if playerID <= 0 {
		return person.PlayerDetails{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.personRepo.GetPlayer(ctx, playerID)
	if err != nil {
		return person.PlayerDetails{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return person.PlayerDetails{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return item, nil
}

func (s *PersonService) GetManager(ctx context.Context, managerID int64) (person.ManagerDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "PersonService.GetManager")
	defer span.End()

	if managerID <= 0 {
		return person.ManagerDetails{}, fmt.Errorf("%w: manager id is required", ErrInvalidInput)
	}

	item, exists, err := s.personRepo.GetManager(ctx, managerID)
	if err != nil {
		return person.ManagerDetails{}, fmt.Errorf("get manager: %w", err)
	}
	if !exists {
		return person.ManagerDetails{}, fmt.Errorf("%w: manager=%d", ErrNotFound, managerID)
	}
	return item, nil
}
