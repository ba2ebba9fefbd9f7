package review

import (
	"fmt"
	"strconv"

	"tempwork-backend/internal/apperr"
	"tempwork-backend/internal/audit"
	"tempwork-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LeaveReviewRequest struct {
	ReviewerID uint   `json:"reviewer_id"`
	ReviewedID uint   `json:"reviewed_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// -------------------------------------------------
// POST /leave_review
// -------------------------------------------------
// Inserts unconditionally: the rating range is not checked, and nothing
// prevents self-reviews or duplicates.
func LeaveReviewHandler(db *gorm.DB, rec *audit.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LeaveReviewRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.New(apperr.ValidationFailed, "invalid request body")
		}

		if body.ReviewerID == 0 || body.ReviewedID == 0 {
			return apperr.New(apperr.ValidationFailed, "reviewer_id and reviewed_id are required")
		}

		rev := models.Review{
			ReviewerID: body.ReviewerID,
			ReviewedID: body.ReviewedID,
			Rating:     body.Rating,
			Comment:    body.Comment,
		}

		if err := db.Create(&rev).Error; err != nil {
			return apperr.Wrap(apperr.ValidationFailed, "could not create review", err)
		}

		rec.Record(audit.Entry{
			UserID:      &rev.ReviewerID,
			EntityType:  "review",
			EntityID:    rev.ID,
			Action:      models.ActivityActionCreate,
			Description: fmt.Sprintf("user %d rated user %d: %d", rev.ReviewerID, rev.ReviewedID, rev.Rating),
			Data:        rev,
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Review submitted successfully.",
		})
	}
}

// -------------------------------------------------
// GET /reviews/:user_id
// -------------------------------------------------
// Lists reviews left about a user, newest first.
func ListReviewsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := strconv.ParseUint(c.Params("user_id"), 10, 64)
		if err != nil {
			return apperr.New(apperr.ValidationFailed, "user_id must be a number")
		}

		reviews := []models.Review{}
		if err := db.Where("reviewed_id = ?", userID).
			Order("created_at DESC, id DESC").
			Find(&reviews).Error; err != nil {
			return err
		}

		return c.JSON(reviews)
	}
}
