package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kudoshq/recognition-api/internal/core/analytics"
	"github.com/kudoshq/recognition-api/internal/core/ports"
)

// AnalyticsHandler handles HTTP requests for analytics queries.
type AnalyticsHandler struct {
	service ports.AnalyticsService
}

func NewAnalyticsHandler(service ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

type keywordAnalyticsResponse struct {
	Keyword      string                `json:"keyword"`
	Count        int                   `json:"count"`
	Recognitions []recognitionResponse `json:"recognitions"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}

func toKeywordAnalyticsResponse(stats analytics.KeywordStats) keywordAnalyticsResponse {
	resp := keywordAnalyticsResponse{
		Keyword:      stats.Keyword,
		Count:        stats.Count,
		Recognitions: make([]recognitionResponse, 0, len(stats.Recognitions)),
	}
	for _, r := range stats.Recognitions {
		resp.Recognitions = append(resp.Recognitions, toRecognitionResponse(r))
	}
	return resp
}

// Comprehensive handles GET /v1/analytics.
//
// @Summary      Full analytics report across all teams
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        period  query  string  false  "Reporting period label (echoed back)"
// @Success      200  {object}  analytics.Report
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/analytics [get]
func (h *AnalyticsHandler) Comprehensive(c echo.Context) error {
	report, err := h.service.Comprehensive(c.Request().Context(), ctxActor(c), c.QueryParam("period"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// Team handles GET /v1/analytics/teams/:id.
//
// @Summary      Analytics for a single team
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        id      path   string  true   "Team ID"
// @Param        period  query  string  false  "Reporting period label (echoed back)"
// @Success      200  {object}  analytics.TeamReport
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/analytics/teams/{id} [get]
func (h *AnalyticsHandler) Team(c echo.Context) error {
	report, err := h.service.Team(c.Request().Context(), ctxActor(c), c.Param("id"), c.QueryParam("period"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// Keyword handles GET /v1/analytics/keywords/:keyword.
//
// @Summary      Recognitions matching a keyword
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        keyword  path  string  true  "Keyword to search for"
// @Success      200  {object}  keywordAnalyticsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/analytics/keywords/{keyword} [get]
func (h *AnalyticsHandler) Keyword(c echo.Context) error {
	stats, err := h.service.Keyword(c.Request().Context(), ctxActor(c), c.Param("keyword"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toKeywordAnalyticsResponse(*stats))
}

// ShareTeam handles POST /v1/analytics/teams/:id/share.
//
// @Summary      Share a team's analytics to the configured Slack channel
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Team ID"
// @Success      202  {object}  acceptedResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/analytics/teams/{id}/share [post]
func (h *AnalyticsHandler) ShareTeam(c echo.Context) error {
	if err := h.service.ShareTeam(c.Request().Context(), ctxActor(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "analytics report queued for delivery"})
}
