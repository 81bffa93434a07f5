package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/modaworks/atelier/internal/domain"
)

type Config struct {
	Port          string
	OAIApiKey     string
	PosthogApiKey string
}

// DesignGenerator is the single capability of the external image provider.
type DesignGenerator interface {
	Generate(ctx context.Context, prompt string) ([]domain.GeneratedDesign, error)
}

type EventRecorder interface {
	Capture(ctx context.Context, eventType string, distinctId string) error
}

type ComponentBuilder struct {
	Index func() templ.Component
	Error func(title string, msg string) templ.Component
}

type App struct {
	DesignRepo       DesignGenerator
	AnalyticsRepo    EventRecorder
	ComponentBuilder ComponentBuilder
	Config           Config
	Log              *zap.Logger
}

func (a App) Start() {
	http.Handle("/static/",
		http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	http.Handle("/", componentHandler{c: indexController{builder: a.ComponentBuilder}, log: a.Log})
	http.Handle("/api/designs", apiHandler{c: generateController{
		repo:      a.DesignRepo,
		analytics: a.AnalyticsRepo,
		config:    a.Config,
		log:       a.Log,
	}, log: a.Log})
	http.Handle("/metrics", promhttp.Handler())

	a.Log.Info(fmt.Sprintf("App running on %s...", a.Config.Port))
	a.Log.Fatal("server stopped",
		zap.Error(http.ListenAndServe(fmt.Sprintf(":%s", a.Config.Port), nil)))
}
