package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskplanner/pkg/plan/types"
)

// PlanRecord is the persisted form of a generated plan. Records are written
// once and never updated.
type PlanRecord struct {
	ID        string       `gorm:"primaryKey;size:36" bson:"_id,omitempty" json:"id"`
	UserID    *string      `gorm:"index" bson:"user_id" json:"user_id"`
	GoalText  string       `bson:"goal_text" json:"goal_text"`
	Context   *string      `bson:"context" json:"context"`
	Summary   string       `bson:"summary" json:"summary"`
	Tasks     []types.Task `gorm:"serializer:json" bson:"tasks" json:"tasks"`
	CreatedAt time.Time    `bson:"created_at" json:"created_at"`
}

// NewPlanRecord maps a validated plan and its request onto a record.
func NewPlanRecord(req types.GoalRequest, plan *types.TaskPlan) *PlanRecord {
	return &PlanRecord{
		UserID:   req.UserID,
		GoalText: req.GoalText,
		Context:  req.Context,
		Summary:  plan.Summary,
		Tasks:    plan.Tasks,
	}
}

func (p *PlanRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
