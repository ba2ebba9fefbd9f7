package audit

import (
	"tempwork-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// -------------------------------------------------
// GET /activity?entity_type=review
// -------------------------------------------------
func ListActivityHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := db.Model(&models.ActivityLog{}).Order("created_at DESC, id DESC")

		if entityType := c.Query("entity_type"); entityType != "" {
			q = q.Where("entity_type = ?", entityType)
		}

		entries := []models.ActivityLog{}
		if err := q.Limit(200).Find(&entries).Error; err != nil {
			return err
		}

		return c.JSON(entries)
	}
}
