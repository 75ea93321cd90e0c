package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mohammad-safakhou/concierge/config"
	"github.com/mohammad-safakhou/concierge/internal/agent"
	"github.com/mohammad-safakhou/concierge/internal/console"
	"github.com/mohammad-safakhou/concierge/internal/telemetry"
)

// Run starts the HTTP surface over a single in-process session. There is no
// interactive prompter behind HTTP, so drafted emails are never sent from
// this surface; the summary alone is returned.
func Run(addr string, cfg *config.Config) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}

	registry := prometheus.NewRegistry()
	tele := telemetry.New(registry)

	orchLogger := log.New(log.Writer(), "[ORCH] ", log.LstdFlags)
	orch, err := agent.NewOrchestrator(cfg, orchLogger, tele, console.Nop{}, io.Discard)
	if err != nil {
		return err
	}

	e.GET("/healthz", func(c echo.Context) error { return c.String(200, "ok") })
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	h := &Handler{Orch: orch}
	api := e.Group("/api")
	api.POST("/ask", h.ask)
	api.GET("/history", h.history)

	if addr == "" {
		addr = cfg.Server.Address
	}
	return e.Start(addr)
}

// Service is the slice of the orchestrator the HTTP handlers need.
type Service interface {
	RunTurn(ctx context.Context, goal string) (string, error)
	History() []agent.Entry
}

type Handler struct {
	Orch Service
}

type askRequest struct {
	Goal string `json:"goal"`
}

type askResponse struct {
	Summary string `json:"summary"`
}

func (h *Handler) ask(c echo.Context) error {
	var req askRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Goal == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "goal is required")
	}
	summary, err := h.Orch.RunTurn(c.Request().Context(), req.Goal)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, askResponse{Summary: summary})
}

type historyEntry struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

func (h *Handler) history(c echo.Context) error {
	entries := h.Orch.History()
	out := make([]historyEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyEntry{Role: e.Role, Text: e.Text})
	}
	return c.JSON(http.StatusOK, out)
}
