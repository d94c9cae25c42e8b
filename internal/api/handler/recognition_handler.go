package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kudoshq/recognition-api/internal/api/metrics"
	"github.com/kudoshq/recognition-api/internal/core/domain"
	"github.com/kudoshq/recognition-api/internal/core/ports"
)

// RecognitionHandler handles HTTP requests for recognition operations.
type RecognitionHandler struct {
	service ports.RecognitionService
}

func NewRecognitionHandler(service ports.RecognitionService) *RecognitionHandler {
	return &RecognitionHandler{service: service}
}

// Send handles POST /v1/recognitions.
//
// @Summary      Send a recognition to a colleague
// @Tags         recognitions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendRecognitionRequest  true  "Recognition details"
// @Success      201   {object}  recognitionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/recognitions [post]
func (h *RecognitionHandler) Send(c echo.Context) error {
	var req sendRecognitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	rec, err := h.service.Send(c.Request().Context(), ctxActor(c), ports.SendRecognitionInput{
		ToUserID:   req.ToUserID,
		Message:    req.Message,
		Emoji:      req.Emoji,
		Visibility: domain.Visibility(req.Visibility),
	})
	if err != nil {
		return err
	}

	metrics.RecognitionsSentTotal.WithLabelValues(string(rec.Visibility)).Inc()
	return c.JSON(http.StatusCreated, toRecognitionResponse(*rec))
}

// Delete handles DELETE /v1/recognitions/:id.
//
// @Summary      Delete a recognition
// @Tags         recognitions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Recognition ID"
// @Success      204  "recognition deleted"
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/recognitions/{id} [delete]
func (h *RecognitionHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), ctxActor(c), c.Param("id")); err != nil {
		return err
	}

	metrics.RecognitionsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// ListMine handles GET /v1/recognitions/mine.
//
// @Summary      List recognitions received by the authenticated user
// @Tags         recognitions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listRecognitionsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/recognitions/mine [get]
func (h *RecognitionHandler) ListMine(c echo.Context) error {
	recs, err := h.service.ListMine(c.Request().Context(), ctxActor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListRecognitionsResponse(recs))
}

// ListByTeam handles GET /v1/teams/:id/recognitions.
//
// @Summary      List recognitions received by members of a team
// @Tags         recognitions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Team ID"
// @Success      200  {object}  listRecognitionsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/teams/{id}/recognitions [get]
func (h *RecognitionHandler) ListByTeam(c echo.Context) error {
	recs, err := h.service.ListByTeam(c.Request().Context(), ctxActor(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListRecognitionsResponse(recs))
}

// ListByUser handles GET /v1/users/:id/recognitions.
//
// @Summary      List recognitions received by a user
// @Tags         recognitions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID"
// @Success      200  {object}  listRecognitionsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id}/recognitions [get]
func (h *RecognitionHandler) ListByUser(c echo.Context) error {
	recs, err := h.service.ListByUser(c.Request().Context(), ctxActor(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListRecognitionsResponse(recs))
}

// ListAll handles GET /v1/recognitions.
//
// @Summary      List every recognition in the system
// @Tags         recognitions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listRecognitionsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/recognitions [get]
func (h *RecognitionHandler) ListAll(c echo.Context) error {
	recs, err := h.service.ListAll(c.Request().Context(), ctxActor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListRecognitionsResponse(recs))
}
