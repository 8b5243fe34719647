package repositoryImp

import (
	"context"
	"fmt"

	"taskplanner/entities"
	"taskplanner/pkg/plan/repository"
	"taskplanner/pkg/plan/types"
)

type unavailableRepo struct{ reason string }

// NewUnavailable is used when no store could be opened at startup. Every
// insert fails with types.ErrStorageUnavailable.
func NewUnavailable(reason string) repository.PlanRepository { return &unavailableRepo{reason} }

func (r *unavailableRepo) Insert(ctx context.Context, p *entities.PlanRecord) (string, error) {
	return "", fmt.Errorf("%s: %w", r.reason, types.ErrStorageUnavailable)
}
