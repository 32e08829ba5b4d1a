// Package main runs the FloraFlow landing page server.
//
// @title FloraFlow Landing Page
// @version 0.1.0
// @description Server-rendered marketing page backed by a headless CMS
// @host localhost:3000
// @BasePath /
// @schemes http https
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/IbtisamHemmo/Marketing-POC/domain/content"
	"github.com/IbtisamHemmo/Marketing-POC/domain/health"
	"github.com/IbtisamHemmo/Marketing-POC/domain/page"
	"github.com/IbtisamHemmo/Marketing-POC/domain/schema"
	"github.com/IbtisamHemmo/Marketing-POC/domain/tracing"
	"github.com/IbtisamHemmo/Marketing-POC/internal/config"
	"github.com/IbtisamHemmo/Marketing-POC/internal/server"
	"github.com/IbtisamHemmo/Marketing-POC/pkg/logger"
)

func main() {
	// .env.local overrides .env; neither overrides the real environment for .env.
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure
		logger.Module,
		config.Module,
		server.Module,
		tracing.Module,

		// Content store and CMS client
		content.Module,

		// Domain modules
		page.Module,
		schema.Module,
		health.Module,
	).Run()
}
