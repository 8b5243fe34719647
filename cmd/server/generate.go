package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"taskplanner/pkg/plan/types"
)

var generateFlags struct {
	goal    string
	context string
	userID  string
	format  string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and store one plan, then print it",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&generateFlags.goal, "goal", "g", "", "goal to break down (10-500 characters)")
	f.StringVarP(&generateFlags.context, "context", "c", "", "extra context for the model, e.g. budget or team size")
	f.StringVar(&generateFlags.userID, "user-id", "", "optional user id stored with the plan")
	f.StringVarP(&generateFlags.format, "format", "f", "json", "output format: json or yaml")
	_ = generateCmd.MarkFlagRequired("goal")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateFlags.format != "json" && generateFlags.format != "yaml" {
		return fmt.Errorf("unknown format %q (want json or yaml)", generateFlags.format)
	}

	a, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.conn.Close(ctx)
	}()

	plan, err := a.svc.CreatePlan(cmd.Context(), goalRequest(generateFlags.goal, generateFlags.context, generateFlags.userID))
	if err != nil {
		return err
	}
	return renderPlan(cmd.OutOrStdout(), plan, generateFlags.format)
}

// goalRequest maps flags onto a request; empty optional flags stay absent.
func goalRequest(goal, ctxText, userID string) types.GoalRequest {
	req := types.GoalRequest{GoalText: goal}
	if ctxText != "" {
		req.Context = &ctxText
	}
	if userID != "" {
		req.UserID = &userID
	}
	return req
}

func renderPlan(w io.Writer, plan *types.TaskPlan, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(plan); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}
}
