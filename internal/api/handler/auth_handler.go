package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/floctet/studio-api/internal/api/metrics"
	"github.com/floctet/studio-api/internal/api/session"
	"github.com/floctet/studio-api/internal/core/domain"
	"github.com/floctet/studio-api/internal/core/ports"
)

// AuthHandler handles registration, login, logout and profile endpoints.
type AuthHandler struct {
	authService  ports.AuthService
	cookieSecret string
}

func NewAuthHandler(authService ports.AuthService, cookieSecret string) *AuthHandler {
	return &AuthHandler{authService: authService, cookieSecret: cookieSecret}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req, "Invalid registration data"); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{
		Message: "User registered successfully",
		User:    user,
	})
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
	}

	user, sess, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	token, err := session.Sign(h.cookieSecret, sess.ID, sess.ExpiresAt)
	if err != nil {
		return err
	}
	c.SetCookie(session.NewCookie(token, sess.ExpiresAt))

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Message: "Logged in successfully",
		User:    user,
	})
}

// Logout destroys the caller's session. Always succeeds, session or not.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if sid := currentSessionID(c); sid != "" {
		if err := h.authService.Logout(c.Request().Context(), sid); err != nil {
			return err
		}
	}
	c.SetCookie(session.ClearCookie())

	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

// Me returns the authenticated caller's record.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile patches the caller's own record.
//
// @Summary      Update profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      profileRequest  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/profile [patch]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := bindAndValidate(c, &req, "Invalid profile data"); err != nil {
		return err
	}

	updated, err := h.authService.UpdateProfile(c.Request().Context(), user.ID, domain.ProfilePatch{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Gender:   req.Gender,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}
