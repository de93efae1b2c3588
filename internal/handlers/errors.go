package handlers

import (
	"errors"

	"gerai/internal/models"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps the service error taxonomy onto HTTP status codes.
// Anything outside the taxonomy is an infrastructure failure and becomes a
// 500.
func statusForError(err error) int {
	var (
		validationErr *models.ValidationError
		stateErr      *models.StateError
		notFoundErr   *models.NotFoundError
		conflictErr   *models.ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return fiber.StatusNotFound
	case errors.As(err, &stateErr), errors.As(err, &conflictErr):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

// respondError writes the error with the mapped status. Business errors go
// back to the caller verbatim.
func respondError(c *fiber.Ctx, err error, message string) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
