package app

import (
	"fmt"
	"os"

	internalhttp "github.com/msc-superfriend/refgateway/internal/http"
	"github.com/msc-superfriend/refgateway/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Services Services
	Server   *internalhttp.Server
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	serviceset, err := wireServices(log, cfg)
	if err != nil {
		log.Sync()
		return nil, err
	}

	handlerset := wireHandlers(log, cfg, serviceset)
	server := internalhttp.NewServer(internalhttp.RouterConfig{
		Log:             log,
		HealthHandler:   handlerset.Health,
		ContentHandler:  handlerset.Content,
		DocumentHandler: handlerset.Document,
		AskHandler:      handlerset.Ask,
		MetaHandler:     handlerset.Meta,
	})

	return &App{
		Log:      log,
		Cfg:      cfg,
		Services: serviceset,
		Server:   server,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Server listening", "port", a.Cfg.Port)
	return a.Server.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
