package app

import (
	"context"

	"github.com/amitsingh771/Numerology/config"
	"github.com/amitsingh771/Numerology/internal/database"
	"github.com/amitsingh771/Numerology/internal/handlers/middleware"
	"github.com/amitsingh771/Numerology/internal/logger"
	"github.com/amitsingh771/Numerology/internal/repositories"

	reportController "github.com/amitsingh771/Numerology/internal/controllers/report"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Config     config.Config

	// Repositories
	FortuneRepo repositories.FortuneRepository

	// Controllers
	ReportController *reportController.ReportController
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	return NewWithConfig(config)
}

// NewWithConfig wires the application from an already loaded config. The
// fortune table is read here, once, and shared read-only by every request.
func NewWithConfig(config config.Config) (*App, error) {
	log := logger.New("app").Function("NewWithConfig")

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	fortuneRepo := repositories.NewFortune(context.Background(), config, db)
	if fortuneRepo.Len() == 0 {
		log.Warn("fortune table is empty, reports will carry no combination fortune", "source", fortuneRepo.Source())
	}

	middleware := middleware.New(db, config)
	reportController := reportController.New(fortuneRepo)

	app := &App{
		Database:         db,
		Config:           config,
		Middleware:       middleware,
		FortuneRepo:      fortuneRepo,
		ReportController: reportController,
	}

	if err := app.validate(); err != nil {
		_ = db.Close()
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	if a.FortuneRepo == nil {
		return log.ErrMsg("fortune repository is nil")
	}

	if a.ReportController == nil {
		return log.ErrMsg("report controller is nil")
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}
