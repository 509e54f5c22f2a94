package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1")

	r.Get("/proxies", h.GetProxies)
	r.Get("/producers/:owner/voters", h.GetProducerVoters)
	return nil
}
