package search

import (
	"sort"

	"tempwork-backend/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Neighbor struct {
	Profile       models.EmployeeProfile
	DistanceMiles float64
}

// LocationIndex answers radius queries over employee profiles. The scan
// implementation below walks the whole table; a spatial index can replace it
// without touching the handler.
type LocationIndex interface {
	Near(origin LatLon, radiusMiles float64) ([]Neighbor, error)
}

type scanIndex struct {
	db *gorm.DB
}

func NewScanIndex(db *gorm.DB) LocationIndex {
	return &scanIndex{db: db}
}

// Near loads every profile and keeps the ones within radiusMiles of origin,
// sorted by distance ascending (ties by id). Rows whose stored location does
// not parse are skipped rather than failing the whole query.
func (s *scanIndex) Near(origin LatLon, radiusMiles float64) ([]Neighbor, error) {
	var profiles []models.EmployeeProfile
	if err := s.db.Find(&profiles).Error; err != nil {
		return nil, err
	}

	neighbors := []Neighbor{}
	for _, p := range profiles {
		loc, err := ParseLatLon(p.Location)
		if err != nil {
			log.Warn().Uint("profile_id", p.ID).Str("location", p.Location).
				Msg("skipping profile with malformed stored location")
			continue
		}

		d := distanceMiles(origin, loc)
		if d <= radiusMiles {
			neighbors = append(neighbors, Neighbor{Profile: p, DistanceMiles: d})
		}
	}

	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].DistanceMiles != neighbors[j].DistanceMiles {
			return neighbors[i].DistanceMiles < neighbors[j].DistanceMiles
		}
		return neighbors[i].Profile.ID < neighbors[j].Profile.ID
	})

	return neighbors, nil
}
