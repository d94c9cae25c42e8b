package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kudoshq/recognition-api/internal/core/domain"
	"github.com/kudoshq/recognition-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user profiles and teams.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateProfileRequest struct {
	Name  string `json:"name"  validate:"omitempty,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
}

type listTeamsResponse struct {
	Data  []domain.Team `json:"data"`
	Count int           `json:"count"`
}

// Get handles GET /v1/users/:id.
//
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), ctxActor(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Profile handles GET /v1/me.
//
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/me [get]
func (h *UserHandler) Profile(c echo.Context) error {
	user, err := h.service.Profile(c.Request().Context(), ctxActor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PATCH /v1/me.
//
// @Summary      Update the authenticated user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update; empty fields are left unchanged"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/me [patch]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), ctxActor(c), ports.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// GetTeam handles GET /v1/teams/:id.
//
// @Summary      Get a team by ID
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Team ID"
// @Success      200  {object}  domain.Team
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/teams/{id} [get]
func (h *UserHandler) GetTeam(c echo.Context) error {
	team, err := h.service.GetTeam(c.Request().Context(), ctxActor(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, team)
}

// ListTeams handles GET /v1/teams.
//
// @Summary      List all teams
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listTeamsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/teams [get]
func (h *UserHandler) ListTeams(c echo.Context) error {
	teams, err := h.service.ListTeams(c.Request().Context(), ctxActor(c))
	if err != nil {
		return err
	}
	if teams == nil {
		teams = []domain.Team{}
	}
	return c.JSON(http.StatusOK, listTeamsResponse{Data: teams, Count: len(teams)})
}
