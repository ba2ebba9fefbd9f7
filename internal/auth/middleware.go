package auth

import (
	"fmt"
	"strings"

	"tempwork-backend/internal/apperr"
	"tempwork-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUserIDKey   = "user_id"
	CtxUserRoleKey = "user_role"
)

// JWTMiddleware verifies the bearer token and stores the caller's id and role
// in the request locals. Verification is stateless.
func JWTMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperr.New(apperr.Unauthorized, "missing Authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return apperr.New(apperr.Unauthorized, "Authorization header must be 'Bearer <token>'")
		}

		token, err := jwt.ParseWithClaims(parts[1], &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return apperr.Wrap(apperr.Unauthorized, "invalid or expired token", err)
		}

		claims, ok := token.Claims.(*JWTCustomClaims)
		if !ok {
			return apperr.New(apperr.Unauthorized, "could not decode token claims")
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxUserRoleKey, claims.Role)

		return c.Next()
	}
}

// UserIDFromCtx returns the authenticated user id set by JWTMiddleware.
func UserIDFromCtx(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(CtxUserIDKey).(uint)
	return id, ok
}

// RoleFromCtx returns the authenticated user's role set by JWTMiddleware.
func RoleFromCtx(c *fiber.Ctx) (models.UserRole, bool) {
	role, ok := c.Locals(CtxUserRoleKey).(models.UserRole)
	return role, ok
}
