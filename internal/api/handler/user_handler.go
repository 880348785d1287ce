package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/usermanagement/user-service/internal/api/metrics"
	"github.com/usermanagement/user-service/internal/core/domain"
	"github.com/usermanagement/user-service/internal/core/ports"
)

// UserHandler handles HTTP requests for account operations.
type UserHandler struct {
	users  ports.UserService
	tokens ports.TokenIssuer
}

func NewUserHandler(users ports.UserService, tokens ports.TokenIssuer) *UserHandler {
	return &UserHandler{users: users, tokens: tokens}
}

// pathID parses the :id path parameter. A malformed id names a resource
// that cannot exist, so it is reported as 404 rather than 400.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusNotFound, domain.ErrUserNotFound.Error())
	}
	return id, nil
}

// caller loads the account of the authenticated username. The middleware
// only admits verified tokens, so a miss here means the account was deleted
// after the token was issued; it surfaces as a plain not-found.
func (h *UserHandler) caller(c echo.Context) (*domain.User, error) {
	username, err := callerUsername(c)
	if err != nil {
		return nil, err
	}
	return h.users.GetByUsername(c.Request().Context(), username)
}

// Signup registers a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Register(c.Request().Context(), ports.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(user.Role)).Inc()

	return c.JSON(http.StatusCreated, signupResponse{
		Message: "User registered successfully",
		User:    user.Public(),
	})
}

// Login authenticates an account and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	token, err := h.tokens.Issue(user.Username)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		UserID:   user.ID,
	})
}

// List returns every account's public view.
//
// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.PublicUser
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetByID returns one account's public view.
//
// @Summary      Get an account by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  domain.PublicUser
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user.Public())
}

// Me returns the caller's own account, identified by the token subject
// rather than a path parameter.
//
// @Summary      Get the authenticated account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.PublicUser
// @Failure      404  {object}  map[string]string
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := h.caller(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user.Public())
}

// Update applies a partial patch to an account. Admins may update anyone;
// everyone else only themselves.
//
// @Summary      Update an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Account id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  updateUserResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	caller, err := h.caller(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := domain.CanUpdate(caller, id); err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Update(c.Request().Context(), id, ports.UpdateInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updateUserResponse{
		Message: "User updated successfully",
		User:    user.Public(),
	})
}

// Delete removes an account. Only admins may delete, and never themselves.
//
// @Summary      Delete an account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	caller, err := h.caller(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := domain.CanDelete(caller, id); err != nil {
		return err
	}

	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.DeletionsTotal.Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}
