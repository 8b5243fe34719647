package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRequestLog(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	e := echo.New()
	e.Use(RequestLog())
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusCreated, "hi") })
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot, "nope") })

	for _, path := range []string{"/ok", "/boom"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	out := buf.String()
	if !strings.Contains(out, "[http] GET /ok 201") {
		t.Errorf("missing success line:\n%s", out)
	}
	if !strings.Contains(out, "[http] GET /boom 418") {
		t.Errorf("error status should be the final one:\n%s", out)
	}
}
