package types

// GoalRequest is the body of POST /api/v1/plans.
type GoalRequest struct {
	GoalText string  `json:"goal_text" validate:"required,min=10,max=500"`
	UserID   *string `json:"user_id"`
	Context  *string `json:"context" validate:"omitempty,max=1000"`
}

type Task struct {
	TaskID                string   `json:"task_id" yaml:"task_id" bson:"task_id"`
	Description           string   `json:"description" yaml:"description" bson:"description"`
	EstimatedDurationDays int      `json:"estimated_duration_days" yaml:"estimated_duration_days" bson:"estimated_duration_days"`
	Dependencies          []string `json:"dependencies" yaml:"dependencies" bson:"dependencies"`
	Priority              string   `json:"priority" yaml:"priority" bson:"priority"` // High|Medium|Low
	SuggestedDeadline     string   `json:"suggested_deadline" yaml:"suggested_deadline" bson:"suggested_deadline"` // YYYY-MM-DD
}

// TaskPlan is the structured output the model is asked to produce.
type TaskPlan struct {
	Tasks   []Task `json:"tasks" yaml:"tasks"`
	Summary string `json:"summary" yaml:"summary"`
}
