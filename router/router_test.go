package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type okHealth struct{}

func (okHealth) Health(c echo.Context) error { return c.NoContent(http.StatusOK) }

func TestRoutes(t *testing.T) {
	called := false
	e := New(echo.New(), []string{"http://localhost:3000"}, func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusCreated)
	}, okHealth{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/plans", nil))
	if rec.Code != http.StatusCreated || !called {
		t.Errorf("POST /api/v1/plans = %d (called %v)", rec.Code, called)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET /health = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/plans", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /api/v1/plans = %d, plans are not listable", rec.Code)
	}
}

func TestCORS(t *testing.T) {
	e := New(echo.New(), []string{"http://localhost:3000"}, func(c echo.Context) error { return nil }, okHealth{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/plans", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "http://localhost:3000" {
		t.Errorf("allow-origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/plans", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.test")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "" {
		t.Errorf("unexpected allow-origin for foreign origin: %q", got)
	}
}
