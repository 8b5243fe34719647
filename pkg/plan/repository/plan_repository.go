package repository

import (
	"context"

	"taskplanner/entities"
)

// PlanRepository persists plan records. Insert returns the store-assigned ID
// and wraps types.ErrStorageUnavailable when the store cannot be reached.
type PlanRepository interface {
	Insert(ctx context.Context, p *entities.PlanRecord) (string, error)
}
