package handler

import (
	"context"
	"time"

	"trackmycareer/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is implemented by backing services the health endpoint probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	appName  string
	database Pinger
	cache    Pinger
}

func NewHealthHandler(appName string, database, cache Pinger) *HealthHandler {
	return &HealthHandler{appName: appName, database: database, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]any{
		"app":      h.appName,
		"database": h.probe(c.Context(), h.database),
		"cache":    h.probe(c.Context(), h.cache),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *HealthHandler) probe(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := p.Ping(pctx); err != nil {
		return "down"
	}
	return "up"
}
