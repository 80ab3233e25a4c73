package routes

import (
	"trackmycareer/internal/catalog"
	"trackmycareer/internal/delivery/http/handler"
	"trackmycareer/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health  *handler.HealthHandler
	analyze *handler.AnalyzeHandler
	roles   *handler.RolesHandler
}

func NewRegistry(appName string, uc usecase.AnalysisUsecase, cat *catalog.Catalog, database, cache handler.Pinger) *Registry {
	return &Registry{
		health:  handler.NewHealthHandler(appName, database, cache),
		analyze: handler.NewAnalyzeHandler(uc),
		roles:   handler.NewRolesHandler(cat),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	r.analyze.RegisterRoutes(v1)
	r.roles.RegisterRoutes(v1)
}
