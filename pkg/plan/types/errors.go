package types

import (
	"errors"
	"fmt"
)

// Kind classifies where in the pipeline a request failed.
type Kind string

const (
	KindValidation          Kind = "validation"
	KindGenerationEmpty     Kind = "generation_empty"
	KindGenerationNotJSON   Kind = "generation_not_json"
	KindGenerationMalformed Kind = "generation_malformed"
	KindSchemaViolation     Kind = "schema_violation"
	KindGenerationFailed    Kind = "generation_failed"
	KindStorageUnavailable  Kind = "storage_unavailable"
	KindUnknown             Kind = "unknown"
)

// ErrStorageUnavailable is returned by repositories when the store handle is
// missing or the connection to it failed.
var ErrStorageUnavailable = errors.New("database connection failed")

// FieldError is one field-level validation failure.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// PlanError is the single error type the plan pipeline returns.
type PlanError struct {
	Kind   Kind
	Detail string
	Fields []FieldError
	Err    error
}

func (e *PlanError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PlanError) Unwrap() error { return e.Err }

func NewError(kind Kind, err error, format string, args ...any) *PlanError {
	return &PlanError{Kind: kind, Detail: fmt.Sprintf(format, args...), Err: err}
}

// KindOf reports the pipeline kind of err. Errors that are not a PlanError
// are KindStorageUnavailable when they wrap ErrStorageUnavailable and
// KindUnknown otherwise.
func KindOf(err error) Kind {
	var pe *PlanError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	if errors.Is(err, ErrStorageUnavailable) {
		return KindStorageUnavailable
	}
	return KindUnknown
}
