package handler

import (
	"trackmycareer/internal/catalog"
	"trackmycareer/internal/delivery/http/dto"
	"trackmycareer/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type RolesHandler struct {
	cat *catalog.Catalog
}

func NewRolesHandler(cat *catalog.Catalog) *RolesHandler {
	return &RolesHandler{cat: cat}
}

func (h *RolesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/roles", h.List)
}

func (h *RolesHandler) List(c fiber.Ctx) error {
	keys := h.cat.Keys()

	out := make([]dto.RoleSummaryResponse, 0, len(keys))
	for _, key := range keys {
		role, ok := h.cat.Get(key)
		if !ok {
			continue
		}
		out = append(out, dto.RoleSummaryResponse{
			Name:        role.Name,
			SkillCount:  len(role.Skills),
			ProjectPool: len(role.Projects),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
