package main

import (
	"context"
	"fmt"

	"taskplanner/config"
	"taskplanner/database"
	"taskplanner/pkg/ai"
	"taskplanner/pkg/plan/repository"
	planRepoImp "taskplanner/pkg/plan/repositoryImp"
	planSvc "taskplanner/pkg/plan/serviceImp"
)

type app struct {
	cfg  config.AppConfig
	llm  ai.Client
	conn *database.Conn
	svc  *planSvc.PlanSvc
}

// buildApp loads config and opens the long-lived handles. The caller owns
// app.conn and must Close it.
func buildApp(ctx context.Context) (*app, error) {
	// 1) Config
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	clock, err := cfg.ReferenceClock()
	if err != nil {
		return nil, err
	}

	// 2) LLM
	llm, err := newLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// 3) Store: never fatal, a missing store answers 503 per request
	conn := database.Connect(ctx, cfg)

	svc := planSvc.NewPlanService(llm, planRepository(conn), planSvc.Options{
		Temperature:   cfg.LLMTemperature,
		ReferenceDate: clock,
	})
	return &app{cfg: cfg, llm: llm, conn: conn, svc: svc}, nil
}

func newLLM(ctx context.Context, cfg config.AppConfig) (ai.Client, error) {
	switch cfg.LLMProvider {
	case "gemini":
		return ai.NewGemini(ctx, cfg.LLMAPIKey, cfg.LLMModel)
	case "openai":
		return ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel), nil
	case "mock":
		return ai.NewMock(), nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
}

func planRepository(conn *database.Conn) repository.PlanRepository {
	switch {
	case conn.Mongo != nil:
		return planRepoImp.NewMongo(conn.MongoDB)
	case conn.SQL != nil:
		return planRepoImp.New(conn.SQL)
	case conn.Err != nil:
		return planRepoImp.NewUnavailable(conn.Err.Error())
	default:
		return planRepoImp.NewUnavailable("database is not initialized")
	}
}
