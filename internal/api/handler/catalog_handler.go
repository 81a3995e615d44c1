package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/floctet/studio-api/internal/core/domain"
	"github.com/floctet/studio-api/internal/core/ports"
)

// CatalogHandler serves the public service catalog.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// List returns the seeded service catalog.
//
// @Summary      List services
// @Tags         services
// @Produce      json
// @Success      200  {array}  domain.Service
// @Router       /api/services [get]
func (h *CatalogHandler) List(c echo.Context) error {
	services, err := h.service.Services(c.Request().Context())
	if err != nil {
		return err
	}
	if services == nil {
		services = []*domain.Service{}
	}
	return c.JSON(http.StatusOK, services)
}

// Book acknowledges a booking intent from a logged-in user. No record is
// written; the follow-up happens through the service-request form.
//
// @Summary      Book a service
// @Tags         services
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/services/book [post]
func (h *CatalogHandler) Book(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Service booked successfully"})
}
