package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/floctet/studio-api/internal/api/metrics"
	"github.com/floctet/studio-api/internal/core/domain"
	"github.com/floctet/studio-api/internal/core/ports"
)

// ContactHandler handles HTTP requests for the contact-message workflow.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit accepts a public contact-form submission.
//
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      submitMessageRequest  true  "Message details"
// @Success      201   {object}  contactResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req submitMessageRequest
	if err := bindAndValidate(c, &req, "Invalid contact data"); err != nil {
		return err
	}

	created, err := h.service.Submit(c.Request().Context(), ports.SubmitMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	metrics.ContactMessagesTotal.Inc()
	return c.JSON(http.StatusCreated, contactResponse{
		Message:        "Message sent successfully",
		ContactMessage: created,
	})
}

// List returns all contact messages in insertion order.
//
// @Summary      List contact messages
// @Tags         contact
// @Produce      json
// @Success      200  {array}   domain.ContactMessage
// @Failure      403  {object}  map[string]string
// @Router       /api/contact [get]
func (h *ContactHandler) List(c echo.Context) error {
	messages, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if messages == nil {
		messages = []*domain.ContactMessage{}
	}
	return c.JSON(http.StatusOK, messages)
}

// MarkRead flips a message's read flag to true. Idempotent.
//
// @Summary      Mark contact message read
// @Tags         contact
// @Produce      json
// @Param        id  path      int  true  "Message id"
// @Success      200  {object}  contactResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/contact/{id}/read [patch]
func (h *ContactHandler) MarkRead(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return domain.ErrMessageNotFound
	}

	updated, err := h.service.MarkRead(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, contactResponse{
		Message:        "Message marked as read",
		ContactMessage: updated,
	})
}
