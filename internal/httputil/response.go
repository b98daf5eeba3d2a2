// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/techfood/usuarios/internal/errors"
	customValidation "github.com/techfood/usuarios/internal/validation"
)

// problemTypeBase is the base URI for machine-readable problem types.
const problemTypeBase = "https://api.techfood.com/errors/"

// Problem is an RFC 7807 style error payload.
type Problem struct {
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Status    int               `json:"status"`
	Detail    string            `json:"detail"`
	Timestamp time.Time         `json:"timestamp"`
	Errors    map[string]string `json:"errors,omitempty"`
}

func newProblem(kind, title string, status int, detail string) Problem {
	return Problem{
		Type:      problemTypeBase + kind,
		Title:     title,
		Status:    status,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	}
}

// HandleErrorGin maps domain errors to HTTP status codes and returns a problem
// payload using Gin. Internal errors are logged in full but never exposed to
// the client.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var problem Problem
	var fieldErrors *customValidation.FieldErrors

	switch {
	case apperrors.As(err, &fieldErrors):
		problem = newProblem("validation", "Dados inválidos",
			http.StatusBadRequest, "Erro de validação nos dados fornecidos")
		problem.Errors = fieldErrors.Fields

	case apperrors.Is(err, apperrors.ErrNotFound):
		problem = newProblem("not-found", "Recurso não encontrado",
			http.StatusNotFound, err.Error())

	case apperrors.Is(err, apperrors.ErrBusinessRule):
		problem = newProblem("business-rule", "Regra de negócio violada",
			http.StatusUnprocessableEntity, err.Error())

	case apperrors.Is(err, apperrors.ErrUnauthorized):
		problem = newProblem("invalid-credentials", "Credenciais inválidas",
			http.StatusUnauthorized, err.Error())

	case apperrors.Is(err, apperrors.ErrInvalidInput):
		problem = newProblem("validation", "Dados inválidos",
			http.StatusBadRequest, err.Error())

	default:
		// Unknown errors never leak their details to the client
		problem = newProblem("internal", "Erro interno",
			http.StatusInternalServerError, "Erro interno do servidor")
	}

	if logger != nil {
		if problem.Status >= http.StatusInternalServerError {
			logger.Error("request failed",
				slog.Int("status_code", problem.Status),
				slog.Any("error", err),
			)
		} else {
			logger.Warn("request rejected",
				slog.Int("status_code", problem.Status),
				slog.Any("error", err),
			)
		}
	}

	c.JSON(problem.Status, problem)
}

// HandleValidationErrorGin writes a 400 Bad Request response for malformed
// payloads and validation errors using Gin.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	var fieldErrors *customValidation.FieldErrors
	problem := newProblem("validation", "Dados inválidos",
		http.StatusBadRequest, "Erro de validação nos dados fornecidos")
	if apperrors.As(err, &fieldErrors) {
		problem.Errors = fieldErrors.Fields
	} else {
		problem.Detail = err.Error()
	}

	c.JSON(problem.Status, problem)
}
