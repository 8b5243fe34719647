package repositoryImp

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskplanner/entities"
	"taskplanner/pkg/plan/repository"
	"taskplanner/pkg/plan/types"
)

type planRepo struct{ db *gorm.DB }

// New stores plan records in a relational table through gorm.
func New(db *gorm.DB) repository.PlanRepository { return &planRepo{db} }

func (r *planRepo) Insert(ctx context.Context, p *entities.PlanRecord) (string, error) {
	if r.db == nil {
		return "", fmt.Errorf("gorm db is nil: %w", types.ErrStorageUnavailable)
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) {
			return "", fmt.Errorf("insert plan: %v: %w", err, types.ErrStorageUnavailable)
		}
		return "", fmt.Errorf("insert plan: %w", err)
	}
	return p.ID, nil
}
