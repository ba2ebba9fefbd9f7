package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"tempwork-backend/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusPerKind(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, apperr.ValidationFailed.HTTPStatus())
	assert.Equal(t, fiber.StatusBadRequest, apperr.ParseError.HTTPStatus())
	assert.Equal(t, fiber.StatusBadRequest, apperr.StorageConflict.HTTPStatus())
	assert.Equal(t, fiber.StatusUnauthorized, apperr.InvalidCredentials.HTTPStatus())
	assert.Equal(t, fiber.StatusUnauthorized, apperr.Unauthorized.HTTPStatus())
}

func TestKindOf(t *testing.T) {
	err := apperr.New(apperr.ParseError, "bad coordinates")

	kind, ok := apperr.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.ParseError, kind)

	_, ok = apperr.KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := apperr.New(apperr.StorageConflict, "email already registered")
	outer := fmt.Errorf("handling signup: %w", inner)

	kind, ok := apperr.KindOf(outer)
	assert.True(t, ok)
	assert.Equal(t, apperr.StorageConflict, kind)
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed: users.email")
	err := apperr.Wrap(apperr.StorageConflict, "could not create user", cause)

	assert.Contains(t, err.Error(), "could not create user")
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
	assert.ErrorIs(t, err, cause)
}
