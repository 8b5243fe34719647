package serviceImp

import (
	"context"
	"errors"
	"log"
	"time"

	"taskplanner/entities"
	"taskplanner/pkg/ai"
	planrepo "taskplanner/pkg/plan/repository"
	"taskplanner/pkg/plan/types"
)

const DefaultTemperature float32 = 0.3

// DefaultReferenceDate is the "current date" the prompt assumes unless
// configured otherwise.
var DefaultReferenceDate = time.Date(2025, time.October, 13, 0, 0, 0, 0, time.UTC)

type Options struct {
	Temperature float32 // passed through as is; use DefaultTemperature
	// ReferenceDate supplies the date deadlines are computed from.
	ReferenceDate func() time.Time
}

type PlanSvc struct {
	llm         ai.Client
	repo        planrepo.PlanRepository
	temperature float32
	today       func() time.Time
}

func NewPlanService(llm ai.Client, repo planrepo.PlanRepository, opts Options) *PlanSvc {
	if opts.ReferenceDate == nil {
		opts.ReferenceDate = func() time.Time { return DefaultReferenceDate }
	}
	return &PlanSvc{llm: llm, repo: repo, temperature: opts.Temperature, today: opts.ReferenceDate}
}

// CreatePlan validates the goal, generates a plan, stores it once and
// returns the plan. Every error is a *types.PlanError.
func (s *PlanSvc) CreatePlan(ctx context.Context, req types.GoalRequest) (*types.TaskPlan, error) {
	plan, id, err := s.createPlan(ctx, req)
	if err != nil {
		log.Printf("[plan] failed (%s) for goal %q: %v", types.KindOf(err), goalPrefix(req.GoalText), err)
		return nil, err
	}
	log.Printf("[plan] saved plan (ID: %s) with %d tasks for goal: %s", id, len(plan.Tasks), goalPrefix(req.GoalText))
	return plan, nil
}

func (s *PlanSvc) createPlan(ctx context.Context, req types.GoalRequest) (*types.TaskPlan, string, error) {
	if err := ValidateGoal(req); err != nil {
		return nil, "", err
	}

	prompt := BuildPrompt(req, s.today())

	raw, err := s.llm.Generate(ctx, ai.Request{Prompt: prompt, Schema: TaskPlanSchema, Temperature: s.temperature})
	if err != nil {
		return nil, "", types.NewError(types.KindGenerationFailed, err, "generate plan with %s", s.llm.Name())
	}

	plan, err := ParsePlan(raw)
	if err != nil {
		return nil, "", err
	}

	id, err := s.repo.Insert(ctx, entities.NewPlanRecord(req, plan))
	if err != nil {
		if errors.Is(err, types.ErrStorageUnavailable) {
			return nil, "", types.NewError(types.KindStorageUnavailable, err, "save plan")
		}
		return nil, "", types.NewError(types.KindUnknown, err, "save plan")
	}
	return plan, id, nil
}

func goalPrefix(goal string) string {
	r := []rune(goal)
	if len(r) <= 30 {
		return goal
	}
	return string(r[:30]) + "..."
}
