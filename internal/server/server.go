// Package server exposes the retained signal stores over a read-only HTTP
// API, plus the Prometheus metrics endpoint.
package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saf-hub/sentinel/internal/catalog"
	"github.com/saf-hub/sentinel/internal/signal"
	"github.com/saf-hub/sentinel/internal/store"
)

// Server serves the signal stores rooted at DataDir.
type Server struct {
	DataDir string
}

// NewEcho builds the routed echo instance. Split from Run so handler tests
// can drive it without a listener.
func (s *Server) NewEcho() *echo.Echo {
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
			_ = c.JSON(code, map[string]any{"error": msg})
		}
	}

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/api/categories", s.listCategories)
	e.GET("/api/signals/:category", s.getSignals)
	e.GET("/api/summary/:category", s.getSummary)
	return e
}

// Run starts the API on addr and blocks.
func Run(addr, dataDir string) error {
	s := &Server{DataDir: dataDir}
	return s.NewEcho().Start(addr)
}

func (s *Server) listCategories(c echo.Context) error {
	type categoryInfo struct {
		Category signal.Category `json:"category"`
		Capacity int             `json:"capacity"`
		Retained int             `json:"retained"`
	}
	var out []categoryInfo
	for _, def := range catalog.All() {
		env := store.New(def.Category, s.DataDir).Load()
		out = append(out, categoryInfo{
			Category: def.Category,
			Capacity: def.Capacity,
			Retained: len(env.Signals),
		})
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getSignals(c echo.Context) error {
	cat, err := signal.ParseCategory(c.Param("category"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	env := store.New(cat, s.DataDir).Load()
	return c.JSON(http.StatusOK, env)
}

func (s *Server) getSummary(c echo.Context) error {
	cat, err := signal.ParseCategory(c.Param("category"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	env := store.New(cat, s.DataDir).Load()
	if env.Summary == nil {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("no summary for category %s", cat))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"category":     cat,
		"summary":      env.Summary,
		"last_updated": env.LastUpdated,
	})
}
