package serviceImp

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"taskplanner/pkg/plan/types"
)

// wire types mirror TaskPlan with pointers so missing fields are detectable.
type wireTask struct {
	TaskID                *string      `json:"task_id" validate:"required"`
	Description           *string      `json:"description" validate:"required,min=1"`
	EstimatedDurationDays *json.Number `json:"estimated_duration_days" validate:"required"`
	Dependencies          *[]*string   `json:"dependencies" validate:"required"`
	Priority              *string      `json:"priority" validate:"required"`
	SuggestedDeadline     *string      `json:"suggested_deadline" validate:"required"`
}

type wirePlan struct {
	Tasks   *[]*wireTask `json:"tasks" validate:"required"`
	Summary *string      `json:"summary" validate:"required"`
}

// CheckGenerated is the cheap pre-check on raw model text before parsing.
func CheckGenerated(raw string) error {
	if raw == "" {
		return types.NewError(types.KindGenerationEmpty, nil, "LLM returned empty response.")
	}
	stripped := strings.TrimSpace(raw)
	if !strings.HasPrefix(stripped, "{") && !strings.HasPrefix(stripped, "[") {
		return types.NewError(types.KindGenerationNotJSON, nil, "LLM failed to generate valid JSON.")
	}
	return nil
}

// ParsePlan pre-checks, decodes and structurally validates model output.
func ParsePlan(raw string) (*types.TaskPlan, error) {
	if err := CheckGenerated(raw); err != nil {
		return nil, err
	}

	var w wirePlan
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, types.NewError(types.KindGenerationMalformed, err, "invalid JSON from LLM")
		}
		// well-formed JSON whose values do not fit the plan's types
		return nil, types.NewError(types.KindSchemaViolation, err, "validation error for TaskPlan")
	}

	if fields := fieldErrors(validate.Struct(w)); len(fields) > 0 {
		return nil, schemaViolation(fields)
	}

	plan := &types.TaskPlan{Summary: *w.Summary, Tasks: make([]types.Task, 0, len(*w.Tasks))}
	var fields []types.FieldError
	for i, wt := range *w.Tasks {
		loc := []string{"tasks", strconv.Itoa(i)}
		if wt == nil {
			fields = append(fields, types.FieldError{Loc: loc, Msg: "Input should be a valid object", Type: "model_type"})
			continue
		}
		if fe := fieldErrors(validate.Struct(wt), loc...); len(fe) > 0 {
			fields = append(fields, fe...)
			continue
		}
		t, fe := convertTask(wt, loc)
		if len(fe) > 0 {
			fields = append(fields, fe...)
			continue
		}
		plan.Tasks = append(plan.Tasks, t)
	}
	if len(fields) > 0 {
		return nil, schemaViolation(fields)
	}
	return plan, nil
}

func convertTask(wt *wireTask, loc []string) (types.Task, []types.FieldError) {
	var fields []types.FieldError
	days, ok := integral(*wt.EstimatedDurationDays)
	if !ok {
		fields = append(fields, types.FieldError{
			Loc:  append(append([]string{}, loc...), "estimated_duration_days"),
			Msg:  "Input should be a valid integer",
			Type: "int_type",
		})
	}
	deps := make([]string, 0, len(*wt.Dependencies))
	for j, d := range *wt.Dependencies {
		if d == nil {
			fields = append(fields, types.FieldError{
				Loc:  append(append([]string{}, loc...), "dependencies", strconv.Itoa(j)),
				Msg:  "Input should be a valid string",
				Type: "string_type",
			})
			continue
		}
		deps = append(deps, *d)
	}
	return types.Task{
		TaskID:                *wt.TaskID,
		Description:           *wt.Description,
		EstimatedDurationDays: days,
		Dependencies:          deps,
		Priority:              *wt.Priority,
		SuggestedDeadline:     *wt.SuggestedDeadline,
	}, fields
}

// integral accepts whole numbers, including ones written as 3.0.
func integral(n json.Number) (int, bool) {
	if i, err := n.Int64(); err == nil {
		return int(i), true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func schemaViolation(fields []types.FieldError) error {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(f.Loc, "."), f.Msg))
	}
	return &types.PlanError{
		Kind:   types.KindSchemaViolation,
		Detail: fmt.Sprintf("%d validation error(s) for TaskPlan: %s", len(fields), strings.Join(parts, "; ")),
		Fields: fields,
	}
}
