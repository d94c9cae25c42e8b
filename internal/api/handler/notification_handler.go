package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kudoshq/recognition-api/internal/core/domain"
	"github.com/kudoshq/recognition-api/internal/core/ports"
)

// NotificationHandler handles HTTP requests for in-app notifications.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

type listNotificationsResponse struct {
	Data  []domain.Notification `json:"data"`
	Count int                   `json:"count"`
}

// ListMine handles GET /v1/notifications.
//
// @Summary      List the authenticated user's notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listNotificationsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/notifications [get]
func (h *NotificationHandler) ListMine(c echo.Context) error {
	notifs, err := h.service.ListMine(c.Request().Context(), ctxActor(c))
	if err != nil {
		return err
	}
	if notifs == nil {
		notifs = []domain.Notification{}
	}
	return c.JSON(http.StatusOK, listNotificationsResponse{Data: notifs, Count: len(notifs)})
}

// MarkRead handles POST /v1/notifications/:id/read.
//
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Notification ID"
// @Success      200  {object}  domain.Notification
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	n, err := h.service.MarkRead(c.Request().Context(), ctxActor(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// MarkAllRead handles POST /v1/notifications/read-all.
//
// @Summary      Mark all of the authenticated user's notifications as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Router       /v1/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.service.MarkAllRead(c.Request().Context(), ctxActor(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "all notifications marked as read"})
}
