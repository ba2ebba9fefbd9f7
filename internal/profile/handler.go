package profile

import (
	"fmt"

	"tempwork-backend/internal/apperr"
	"tempwork-backend/internal/audit"
	"tempwork-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateEmployeeProfileRequest struct {
	UserID       uint    `json:"user_id"`
	Skills       string  `json:"skills"`
	Availability string  `json:"availability"`
	PayRate      float64 `json:"pay_rate"`
	Location     string  `json:"location"` // "lat,lon", parsed at search time
	Preferences  string  `json:"preferences"`
}

type CreateBusinessRequest struct {
	OwnerID  uint   `json:"owner_id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Region   string `json:"region"`
	State    string `json:"state"`
}

// -------------------------------------------------
// POST /create_employee_profile
// -------------------------------------------------
// Inserts unconditionally: no check that user_id exists or that the user's
// role is "employee". The location string is stored as-is.
func CreateEmployeeProfileHandler(db *gorm.DB, rec *audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEmployeeProfileRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.New(apperr.ValidationFailed, "invalid request body")
		}

		if body.UserID == 0 || body.Skills == "" || body.Availability == "" || body.Location == "" {
			return apperr.New(apperr.ValidationFailed, "user_id, skills, availability and location are required")
		}

		prof := models.EmployeeProfile{
			UserID:       body.UserID,
			Skills:       body.Skills,
			Availability: body.Availability,
			PayRate:      body.PayRate,
			Location:     body.Location,
			Preferences:  body.Preferences,
		}

		if err := db.Create(&prof).Error; err != nil {
			return apperr.Wrap(apperr.ValidationFailed, "could not create employee profile", err)
		}

		rec.Record(audit.Entry{
			UserID:      &prof.UserID,
			EntityType:  "employee_profile",
			EntityID:    prof.ID,
			Action:      models.ActivityActionCreate,
			Description: fmt.Sprintf("employee profile created for user %d", prof.UserID),
			Data:        prof,
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Employee profile created successfully.",
		})
	}
}

// -------------------------------------------------
// POST /create_business
// -------------------------------------------------
func CreateBusinessHandler(db *gorm.DB, rec *audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBusinessRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.New(apperr.ValidationFailed, "invalid request body")
		}

		if body.OwnerID == 0 || body.Name == "" || body.Location == "" || body.Region == "" || body.State == "" {
			return apperr.New(apperr.ValidationFailed, "owner_id, name, location, region and state are required")
		}

		biz := models.Business{
			OwnerID:  body.OwnerID,
			Name:     body.Name,
			Location: body.Location,
			Region:   body.Region,
			State:    body.State,
		}

		if err := db.Create(&biz).Error; err != nil {
			return apperr.Wrap(apperr.ValidationFailed, "could not create business", err)
		}

		rec.Record(audit.Entry{
			UserID:      &biz.OwnerID,
			EntityType:  "business",
			EntityID:    biz.ID,
			Action:      models.ActivityActionCreate,
			Description: fmt.Sprintf("business created: %s", biz.Name),
			Data:        biz,
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Business created successfully.",
		})
	}
}
