package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/floctet/studio-api/internal/api/metrics"
	"github.com/floctet/studio-api/internal/core/domain"
	"github.com/floctet/studio-api/internal/core/ports"
)

// RequestHandler handles HTTP requests for the service-request workflow.
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// Submit accepts a public service-request submission.
//
// @Summary      Submit a service request
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Param        body  body      submitRequestRequest  true  "Request details"
// @Success      201   {object}  requestResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/service-requests [post]
func (h *RequestHandler) Submit(c echo.Context) error {
	var req submitRequestRequest
	if err := bindAndValidate(c, &req, "Invalid service request data"); err != nil {
		return err
	}

	created, err := h.service.Submit(c.Request().Context(), ports.SubmitRequestInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ServiceType: req.ServiceType,
		Description: req.Description,
		MinBudget:   req.MinBudget,
		MaxBudget:   req.MaxBudget,
	})
	if err != nil {
		return err
	}

	metrics.RequestsSubmittedTotal.WithLabelValues(created.ServiceType).Inc()
	return c.JSON(http.StatusCreated, requestResponse{
		Message:        "Service request submitted successfully",
		ServiceRequest: created,
	})
}

// List returns all service requests in insertion order.
//
// @Summary      List service requests
// @Tags         service-requests
// @Produce      json
// @Success      200  {array}   domain.ServiceRequest
// @Failure      403  {object}  map[string]string
// @Router       /api/service-requests [get]
func (h *RequestHandler) List(c echo.Context) error {
	requests, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if requests == nil {
		requests = []*domain.ServiceRequest{}
	}
	return c.JSON(http.StatusOK, requests)
}

// SetStatus overwrites a request's status.
//
// @Summary      Update service request status
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Request id"
// @Param        body  body      setStatusRequest  true  "Target status"
// @Success      200   {object}  requestResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/service-requests/{id}/status [patch]
func (h *RequestHandler) SetStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return domain.ErrRequestNotFound
	}

	var req setStatusRequest
	if err := bindAndValidate(c, &req, "Invalid update data"); err != nil {
		return err
	}

	updated, err := h.service.SetStatus(c.Request().Context(), id, domain.RequestStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, requestResponse{
		Message:        "Service request updated successfully",
		ServiceRequest: updated,
	})
}
