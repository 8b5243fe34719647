package serviceImp

import "taskplanner/pkg/ai"

var taskSchema = &ai.Schema{
	Type:        "object",
	Description: "A single, actionable task for the overall plan.",
	Properties: map[string]*ai.Schema{
		"task_id":     {Type: "string", Description: "A unique short ID for this task (e.g., 'T01', 'T02')."},
		"description": {Type: "string", Description: "A clear, actionable description of the task."},
		"estimated_duration_days": {
			Type:        "integer",
			Description: "Estimated time in full days to complete the task (e.g., 1, 3, 7).",
		},
		"dependencies": {
			Type:        "array",
			Items:       &ai.Schema{Type: "string"},
			Description: "Task IDs (e.g., ['T01', 'T03']) that must be completed before this task can start. Empty when none.",
		},
		"priority":           {Type: "string", Description: "The priority level of the task: 'High', 'Medium', or 'Low'."},
		"suggested_deadline": {Type: "string", Description: "The suggested completion date in YYYY-MM-DD format (e.g., 2025-10-20)."},
	},
	Required: taskFields,
	Ordering: taskFields,
}

var taskFields = []string{"task_id", "description", "estimated_duration_days", "dependencies", "priority", "suggested_deadline"}

// TaskPlanSchema is the structured-output contract handed to the model.
var TaskPlanSchema = &ai.Schema{
	Type:        "object",
	Description: "The final, complete structured task plan.",
	Properties: map[string]*ai.Schema{
		"tasks": {
			Type:        "array",
			Items:       taskSchema,
			Description: "All generated tasks with their details and dependencies.",
		},
		"summary": {Type: "string", Description: "A high-level summary of the entire generated plan."},
	},
	Required: []string{"tasks", "summary"},
	Ordering: []string{"tasks", "summary"},
}
