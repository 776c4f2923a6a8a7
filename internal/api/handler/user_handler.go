package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/calvacorro/legal-records-api/internal/api/metrics"
	"github.com/calvacorro/legal-records-api/internal/core/domain"
	"github.com/calvacorro/legal-records-api/internal/core/ports"
)

// UserHandler handles user management and login.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List returns every non-deleted user.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   userView
// @Failure      500  {object}  map[string]string
// @Router       /usuarios [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]userView, 0, len(users))
	for _, u := range users {
		out = append(out, toUserView(u))
	}
	return c.JSON(http.StatusOK, out)
}

// Create registers a user.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      createUserRequest  true  "User"
// @Success      201   {object}  userCreatedResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /usuario [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	u, err := h.service.Create(c.Request().Context(), toCreateUserInput(req))
	if err != nil {
		return err
	}
	metrics.RecordsCreatedTotal.WithLabelValues(metrics.EntityUser).Inc()

	return c.JSON(http.StatusCreated, userCreatedResponse{
		Message:   "Usuario creado correctamente",
		IDUsuario: u.ID,
		Usuario:   toUserView(u),
	})
}

// Get returns one non-deleted user.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  userView
// @Failure      404  {object}  map[string]string
// @Router       /usuario/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	u, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserView(u))
}

// Update merges the sent fields over the stored user.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  userUpdatedResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /usuario/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	u, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateUserInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userUpdatedResponse{Message: "Usuario actualizado", Usuario: toUserView(u)})
}

// Delete marks the user deleted.
//
// @Summary      Soft-delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /usuario/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.SoftDelete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.RecordsDeletedTotal.WithLabelValues(metrics.EntityUser).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Usuario eliminado (borrado lógico)"})
}

// Login authenticates an enabled user. A signed token is included when token
// signing is configured.
//
// @Summary      Login
// @Tags         users
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	res, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Message: "Inicio de sesión exitoso.",
		User:    toUserView(res.User),
		Token:   res.Token,
	})
}

func loginResult(err error) string {
	if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrValidation) {
		return "rejected"
	}
	return "error"
}
