package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	healthCtrlImp "taskplanner/pkg/health/controllerImp"
	planCtrlImp "taskplanner/pkg/plan/controllerImp"
	"taskplanner/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx)
	if err != nil {
		log.Printf("startup: %v", err)
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.conn.Close(closeCtx); err != nil {
			log.Printf("[db] close: %v", err)
		}
	}()
	log.Printf("[ai] %s client initialized (model %s)", a.llm.Name(), a.cfg.LLMModel)

	e := echo.New()
	e.HideBanner = true
	plCtrl := planCtrlImp.NewPlanCtrl(a.svc)
	hCtrl := healthCtrlImp.NewHealthCtrl(a.conn, a.conn.Driver, a.llm.Name())
	r := router.New(e, a.cfg.CORSOrigins, plCtrl.Create, hCtrl)

	errc := make(chan error, 1)
	go func() {
		log.Printf("listening on :%s", a.cfg.Port)
		errc <- r.Start(":" + a.cfg.Port)
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return r.Shutdown(shutCtx)
}
