package search

import (
	"math"
	"strconv"
	"strings"

	"tempwork-backend/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

type SearchResult struct {
	ID           uint    `json:"id"`
	Skills       string  `json:"skills"`
	Availability string  `json:"availability"`
	PayRate      float64 `json:"pay_rate"`
	Distance     float64 `json:"distance"`
}

// -------------------------------------------------
// GET /search_employees?location=40.0,-75.0&radius=10&position=cook
// -------------------------------------------------
// radius defaults to 10 miles; an empty position matches every profile.
// Results are ordered by distance ascending.
func SearchEmployeesHandler(index LocationIndex) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin, err := ParseLatLon(c.Query("location"))
		if err != nil {
			return err
		}

		radius := 10.0
		if radiusStr := c.Query("radius"); radiusStr != "" {
			radius, err = strconv.ParseFloat(radiusStr, 64)
			if err != nil {
				return apperr.Newf(apperr.ParseError, "invalid radius %q", radiusStr)
			}
		}

		position := strings.ToLower(c.Query("position"))

		neighbors, err := index.Near(origin, radius)
		if err != nil {
			return err
		}

		results := []SearchResult{}
		for _, n := range neighbors {
			if !strings.Contains(strings.ToLower(n.Profile.Skills), position) {
				continue
			}
			results = append(results, SearchResult{
				ID:           n.Profile.ID,
				Skills:       n.Profile.Skills,
				Availability: n.Profile.Availability,
				PayRate:      n.Profile.PayRate,
				Distance:     math.Round(n.DistanceMiles*100) / 100,
			})
		}

		return c.JSON(results)
	}
}
