package serviceImp

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"taskplanner/pkg/plan/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateGoal checks the request bounds. It has no side effects.
func ValidateGoal(req types.GoalRequest) error {
	fields := fieldErrors(validate.Struct(req), "body")
	if len(fields) == 0 {
		return nil
	}
	return &types.PlanError{Kind: types.KindValidation, Detail: "request validation failed", Fields: fields}
}

// fieldErrors flattens validator output into located field errors.
func fieldErrors(err error, loc ...string) []types.FieldError {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []types.FieldError{{Loc: loc, Msg: err.Error(), Type: "invalid"}}
	}
	out := make([]types.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		l := append(append([]string{}, loc...), fe.Field())
		out = append(out, types.FieldError{Loc: l, Msg: fieldMessage(fe), Type: fieldType(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "min":
		return fmt.Sprintf("String should have at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("String should have at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

func fieldType(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "missing"
	case "min":
		return "string_too_short"
	case "max":
		return "string_too_long"
	default:
		return fe.Tag()
	}
}
