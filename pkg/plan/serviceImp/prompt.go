package serviceImp

import (
	"fmt"
	"time"

	"taskplanner/pkg/plan/types"
)

const noContext = "No additional context provided"

const promptTemplate = `
Goal: %s
CONTEXT: %s

You are an expert project manager. Break down the user's GOAL into 5 to 10 distinct, actionable tasks.
Ensure task IDs are sequential (T01, T02, T03, ...).
Calculate suggested deadlines based on the estimated durations, assuming the current date is %s.
The final output MUST strictly conform to the provided JSON schema (TaskPlan).
Return only valid JSON that exactly matches the schema.
`

// BuildPrompt renders the instruction sent to the model. The output depends
// only on its arguments.
func BuildPrompt(req types.GoalRequest, today time.Time) string {
	ctxText := noContext
	if req.Context != nil && *req.Context != "" {
		ctxText = *req.Context
	}
	return fmt.Sprintf(promptTemplate, req.GoalText, ctxText, today.Format("2006-01-02"))
}
