package app

import (
	"fmt"
	"log"
	"strings"

	"trackmycareer/internal/config"
	"trackmycareer/internal/delivery/http/handler"
	"trackmycareer/internal/delivery/http/middleware"
	"trackmycareer/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(cfg config.Config, c *Container) *App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, c.Logger)

	var dbPinger handler.Pinger
	if c.DB != nil {
		dbPinger = c.DB
	}
	registry := routes.NewRegistry(cfg.App.AppName, c.Usecase, c.Catalog, dbPinger, c.Cache)
	registry.Register(f)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	app := New(cfg, c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
