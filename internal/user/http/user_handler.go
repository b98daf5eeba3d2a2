// Package http provides HTTP handlers for user management operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/techfood/usuarios/internal/httputil"
	userDomain "github.com/techfood/usuarios/internal/user/domain"
	"github.com/techfood/usuarios/internal/user/http/dto"
	userUseCase "github.com/techfood/usuarios/internal/user/usecase"
	customValidation "github.com/techfood/usuarios/internal/validation"
)

// UserHandler handles HTTP requests for user management operations.
type UserHandler struct {
	useCase userUseCase.UseCase
	logger  *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(useCase userUseCase.UseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		useCase: useCase,
		logger:  logger,
	}
}

// parseID parses the :id path parameter as a positive integer.
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("ID inválido: deve ser um número inteiro")
	}
	return id, nil
}

// toInput converts a validated request into a use case input.
func toInput(req *dto.UserRequest) userUseCase.UserInput {
	return userUseCase.UserInput{
		Name:           req.Name,
		Email:          req.Email,
		Login:          req.Login,
		Password:       req.Password,
		CPF:            req.CPF,
		Kind:           userDomain.UserKind(req.Kind),
		AddressStreet:  req.AddressStreet,
		AddressNumber:  req.AddressNumber,
		AddressCity:    req.AddressCity,
		AddressZipCode: req.AddressZipCode,
	}
}

// CreateHandler registers a new user.
// POST /v1/usuarios - Returns 201 Created with the stored user (no password).
func (h *UserHandler) CreateHandler(c *gin.Context) {
	var req dto.UserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.useCase.Create(c.Request.Context(), toInput(&req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapUserToResponse(user))
}

// GetByIDHandler retrieves a user by ID.
// GET /v1/usuarios/:id - Returns 200 OK with the user data.
func (h *UserHandler) GetByIDHandler(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	user, err := h.useCase.GetByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// SearchByNameHandler retrieves users whose name contains the given fragment.
// GET /v1/usuarios/nome/:nome - Returns 200 OK with a possibly empty list.
func (h *UserHandler) SearchByNameHandler(c *gin.Context) {
	users, err := h.useCase.SearchByName(c.Request.Context(), c.Param("nome"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUsersToResponse(users))
}

// ListHandler retrieves all users, optionally filtered by kind.
// GET /v1/usuarios?tipo=CLIENTE - Returns 200 OK with a possibly empty list.
func (h *UserHandler) ListHandler(c *gin.Context) {
	var users []*userDomain.User
	var err error

	if tipo := c.Query("tipo"); tipo != "" {
		kind, parseErr := userDomain.ParseUserKind(tipo)
		if parseErr != nil {
			httputil.HandleValidationErrorGin(c, parseErr, h.logger)
			return
		}
		users, err = h.useCase.ListByKind(c.Request.Context(), kind)
	} else {
		users, err = h.useCase.List(c.Request.Context())
	}
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUsersToResponse(users))
}

// UpdateHandler updates an existing user's editable fields.
// PUT /v1/usuarios/:id - Returns 200 OK with the updated user.
// Login, password and CPF are never touched by this operation.
func (h *UserHandler) UpdateHandler(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.useCase.Update(c.Request.Context(), id, toInput(&req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// ChangePasswordHandler replaces a user's password after checking the current one.
// PATCH /v1/usuarios/:id/senha - Returns 204 No Content on success.
func (h *UserHandler) ChangePasswordHandler(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.ChangePasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.useCase.ChangePassword(c.Request.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// LoginHandler validates a login and password pair.
// POST /v1/usuarios/login - Returns 200 OK with the user on success.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.useCase.ValidateLogin(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// DeleteHandler removes a user by ID.
// DELETE /v1/usuarios/:id - Returns 204 No Content on success.
func (h *UserHandler) DeleteHandler(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
