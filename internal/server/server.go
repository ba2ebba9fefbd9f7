// Package server assembles the Fiber app: middleware, error translation and
// the route table. Handlers receive their dependencies here instead of
// reaching for process-wide globals.
package server

import (
	"errors"
	"strings"

	"tempwork-backend/internal/apperr"
	"tempwork-backend/internal/audit"
	"tempwork-backend/internal/auth"
	"tempwork-backend/internal/config"
	"tempwork-backend/internal/profile"
	"tempwork-backend/internal/review"
	"tempwork-backend/internal/search"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func New(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,OPTIONS",
	}))

	recorder := audit.NewRecorder(db)
	locationIndex := search.NewScanIndex(db)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Temp Work App!")
	})

	// Public
	app.Post("/signup", auth.SignupHandler(db, recorder))
	app.Post("/login", auth.LoginHandler(db, cfg.JWTSecret))
	app.Post("/create_employee_profile", profile.CreateEmployeeProfileHandler(db, recorder))
	app.Post("/create_business", profile.CreateBusinessHandler(db, recorder))
	app.Get("/search_employees", search.SearchEmployeesHandler(locationIndex))
	app.Post("/leave_review", review.LeaveReviewHandler(db, recorder))
	app.Get("/reviews/:user_id", review.ListReviewsHandler(db))

	// Protected
	protected := app.Group("", auth.JWTMiddleware(cfg.JWTSecret))
	protected.Get("/protected", auth.ProtectedHandler())
	protected.Get("/activity", audit.ListActivityHandler(db))

	return app
}

// errorHandler turns tagged errors into their JSON shape. Anything untagged
// is an unexpected server failure.
func errorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.Kind.HTTPStatus()).JSON(fiber.Map{
			"error": appErr.Error(),
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
		})
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("unexpected error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "unexpected server error",
	})
}
