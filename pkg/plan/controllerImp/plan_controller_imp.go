package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"taskplanner/pkg/plan/controller"
	"taskplanner/pkg/plan/service"
	"taskplanner/pkg/plan/types"
)

const storageUnavailableDetail = "Service Unavailable: Database connection failed."

type PlanCtrl struct{ svc service.PlanService }

func NewPlanCtrl(svc service.PlanService) controller.PlanController { return &PlanCtrl{svc: svc} }

// Create handles POST /api/v1/plans.
func (h *PlanCtrl) Create(c echo.Context) error {
	var req types.GoalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"detail": []types.FieldError{{
			Loc:  []string{"body"},
			Msg:  bindMessage(err),
			Type: "json_invalid",
		}}})
	}

	plan, err := h.svc.CreatePlan(c.Request().Context(), req)
	if err != nil {
		status, body := errorResponse(err)
		return c.JSON(status, body)
	}
	return c.JSON(http.StatusCreated, plan)
}

// errorResponse maps a pipeline error onto exactly one HTTP response.
func errorResponse(err error) (int, echo.Map) {
	var pe *types.PlanError
	errors.As(err, &pe)

	switch types.KindOf(err) {
	case types.KindValidation:
		if pe != nil && len(pe.Fields) > 0 {
			return http.StatusUnprocessableEntity, echo.Map{"detail": pe.Fields}
		}
		return http.StatusUnprocessableEntity, echo.Map{"detail": err.Error()}
	case types.KindStorageUnavailable:
		return http.StatusServiceUnavailable, echo.Map{"detail": storageUnavailableDetail}
	case types.KindGenerationEmpty, types.KindGenerationNotJSON:
		return http.StatusInternalServerError, echo.Map{"detail": pe.Detail}
	default:
		return http.StatusInternalServerError, echo.Map{"detail": "Internal Server Error: " + err.Error()}
	}
}

func bindMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			return he.Internal.Error()
		}
		if msg, ok := he.Message.(string); ok {
			return msg
		}
	}
	return err.Error()
}
