package service

import (
	"context"

	"taskplanner/pkg/plan/types"
)

type PlanService interface {
	CreatePlan(ctx context.Context, req types.GoalRequest) (*types.TaskPlan, error)
}
