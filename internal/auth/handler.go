package auth

import (
	"fmt"
	"strings"

	"tempwork-backend/internal/apperr"
	"tempwork-backend/internal/audit"
	"tempwork-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// -------------------------------------------------
// POST /signup
// -------------------------------------------------
func SignupHandler(db *gorm.DB, rec *audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SignupRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.New(apperr.ValidationFailed, "invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Name == "" || body.Email == "" || body.Password == "" || body.Role == "" {
			return apperr.New(apperr.ValidationFailed, "name, email, password and role are required")
		}

		var count int64
		db.Model(&models.User{}).Where("email = ?", body.Email).Count(&count)
		if count > 0 {
			return apperr.New(apperr.StorageConflict, "email already registered")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not hash password")
		}

		user := models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         models.UserRole(body.Role),
		}

		if err := db.Create(&user).Error; err != nil {
			// Unique index race: two signups with the same email at once.
			return apperr.Wrap(apperr.StorageConflict, "could not create user", err)
		}

		rec.Record(audit.Entry{
			EntityType:  "user",
			EntityID:    user.ID,
			Action:      models.ActivityActionCreate,
			Description: fmt.Sprintf("user signed up: %s (%s)", user.Email, user.Role),
			Data: fiber.Map{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
				"role":  user.Role,
			},
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "User created successfully.",
		})
	}
}

// -------------------------------------------------
// POST /login
// -------------------------------------------------
func LoginHandler(db *gorm.DB, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.New(apperr.ValidationFailed, "invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var user models.User
		if err := db.Where("email = ?", body.Email).First(&user).Error; err != nil {
			return apperr.New(apperr.InvalidCredentials, "Invalid credentials")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return apperr.New(apperr.InvalidCredentials, "Invalid credentials")
		}

		token, err := GenerateToken(jwtSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not issue token")
		}

		return c.JSON(fiber.Map{
			"access_token": token,
		})
	}
}

// -------------------------------------------------
// GET /protected
// -------------------------------------------------
func ProtectedHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := UserIDFromCtx(c)
		if !ok {
			return apperr.New(apperr.Unauthorized, "no authenticated user in request")
		}

		return c.JSON(fiber.Map{
			"message": fmt.Sprintf("Hello user %d", userID),
		})
	}
}
