package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/justicebuddy/backend/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates the admin account and returns a session token.
//
// @Summary      Register an admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Admin credentials"
// @Success      201   {object}  tokenResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/admin/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, _, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, tokenResponse{Message: "Admin registered", Token: token})
}

// Login authenticates the admin and returns a session token.
//
// @Summary      Login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Admin credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Message: "Login successful", Token: token})
}

// Dashboard greets the authenticated admin. It exists so the admin panel can
// verify a stored token is still accepted.
//
// @Summary      Admin dashboard
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/admin/dashboard [get]
func (h *AuthHandler) Dashboard(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{Message: "Welcome Admin " + username})
}
