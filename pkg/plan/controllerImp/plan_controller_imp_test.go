package controllerImp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskplanner/entities"
	"taskplanner/pkg/ai"
	"taskplanner/pkg/plan/repository"
	"taskplanner/pkg/plan/repositoryImp"
	"taskplanner/pkg/plan/serviceImp"
)

const launchPlanJSON = `{"tasks":[{"task_id":"T01","description":"Draft launch brief","estimated_duration_days":2,"dependencies":[],"priority":"High","suggested_deadline":"2025-10-15"}],"summary":"Single-task launch plan"}`

type stubLLM struct {
	text  string
	calls int
}

func (s *stubLLM) Name() string { return "stub" }

func (s *stubLLM) Generate(ctx context.Context, r ai.Request) (string, error) {
	s.calls++
	return s.text, nil
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	if err := db.AutoMigrate(&entities.PlanRecord{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func doCreate(t *testing.T, llm ai.Client, repo repository.PlanRepository, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	ctrl := NewPlanCtrl(serviceImp.NewPlanService(llm, repo, serviceImp.Options{Temperature: serviceImp.DefaultTemperature}))
	e.POST("/api/v1/plans", ctrl.Create)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v: %s", err, rec.Body.String())
	}
	return body["detail"]
}

func TestCreateLaunchPlanEndToEnd(t *testing.T) {
	db := openTestDB(t)
	llm := &stubLLM{text: launchPlanJSON}

	rec := doCreate(t, llm, repositoryImp.New(db), `{"goal_text":"Plan a two-week product launch"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var got, want any
	json.Unmarshal(rec.Body.Bytes(), &got)
	json.Unmarshal([]byte(launchPlanJSON), &want)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("body = %s\nwant %s", rec.Body.String(), launchPlanJSON)
	}

	var records []entities.PlanRecord
	if err := db.Find(&records).Error; err != nil {
		t.Fatalf("read records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(records))
	}
	if records[0].UserID != nil {
		t.Errorf("user_id = %q, want null", *records[0].UserID)
	}
	if records[0].GoalText != "Plan a two-week product launch" {
		t.Errorf("goal_text = %q", records[0].GoalText)
	}
}

func TestCreateStorageUnavailable(t *testing.T) {
	rec := doCreate(t, &stubLLM{text: launchPlanJSON}, repositoryImp.NewUnavailable("database not initialized"), `{"goal_text":"Plan a two-week product launch"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if d := decodeDetail(t, rec); d != "Service Unavailable: Database connection failed." {
		t.Errorf("detail = %v", d)
	}
}

func TestCreateGenerationFailures(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantDetail string
	}{
		{"empty", "", "LLM returned empty response."},
		{"not json", "not json at all", "LLM failed to generate valid JSON."},
		{"missing summary", `{"tasks":[]}`, "Internal Server Error: 1 validation error(s) for TaskPlan: summary: Field required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := openTestDB(t)
			rec := doCreate(t, &stubLLM{text: tt.text}, repositoryImp.New(db), `{"goal_text":"Plan a two-week product launch"}`)
			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			if d := decodeDetail(t, rec); d != tt.wantDetail {
				t.Errorf("detail = %v, want %q", d, tt.wantDetail)
			}
			var n int64
			db.Model(&entities.PlanRecord{}).Count(&n)
			if n != 0 {
				t.Errorf("expected no records, got %d", n)
			}
		})
	}
}

func TestCreateValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"short goal", `{"goal_text":"too short"}`},
		{"long goal", `{"goal_text":"` + strings.Repeat("a", 501) + `"}`},
		{"missing goal", `{"user_id":"u1"}`},
		{"long context", `{"goal_text":"Plan a two-week product launch","context":"` + strings.Repeat("c", 1001) + `"}`},
		{"wrong type", `{"goal_text":12345678901}`},
		{"malformed", `{"goal_text":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &stubLLM{text: launchPlanJSON}
			rec := doCreate(t, llm, repositoryImp.NewUnavailable("unused"), tt.body)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			if _, ok := decodeDetail(t, rec).([]any); !ok {
				t.Errorf("detail should be a list of field errors: %s", rec.Body.String())
			}
			if llm.calls != 0 {
				t.Errorf("generation called %d times", llm.calls)
			}
		})
	}
}
