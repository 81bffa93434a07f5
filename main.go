package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "go.uber.org/automaxprocs"

	"github.com/modaworks/atelier/internal/app"
	"github.com/modaworks/atelier/internal/components"
	"github.com/modaworks/atelier/internal/logger"
	"github.com/modaworks/atelier/internal/persistence"
)

func config() app.Config {
	port := os.Getenv("GOPORT")
	if port == "" {
		port = "8000"
	}

	return app.Config{
		Port:          port,
		OAIApiKey:     os.Getenv("OAI_API_KEY"),
		PosthogApiKey: os.Getenv("POSTHOG_API_KEY"),
	}
}

func main() {
	_ = godotenv.Load()

	log := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	defer func() {
		_ = log.Sync()
	}()

	config := config()
	if config.OAIApiKey == "" {
		log.Warn("OAI_API_KEY environment variable not set")
	}

	componentBuilder := app.ComponentBuilder{
		Index: components.Index,
		Error: components.Error,
	}

	oaiRepo := persistence.OAIRepo{
		BaseUrl: "https://api.openai.com/v1",
		BaseHeaders: []string{
			"Content-Type:application/json",
			fmt.Sprintf("Authorization:Bearer %s", config.OAIApiKey)},
	}

	var analyticsRepo app.EventRecorder
	if config.PosthogApiKey != "" {
		analyticsRepo = persistence.PHRepo{
			BaseUrl:     "https://eu.posthog.com",
			BaseHeaders: []string{"Content-Type:application/json"},
			ApiKey:      config.PosthogApiKey,
		}
	}

	a := app.App{
		DesignRepo:       oaiRepo,
		AnalyticsRepo:    analyticsRepo,
		ComponentBuilder: componentBuilder,
		Config:           config,
		Log:              log,
	}

	a.Start()
}
