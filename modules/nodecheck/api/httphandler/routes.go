package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1")

	r.Get("/nodes", h.GetNodes)
	r.Get("/nodes/:id/checks", h.GetNodeChecks)
	return nil
}
