package search

import (
	"strconv"
	"strings"

	"tempwork-backend/internal/apperr"

	"github.com/tidwall/geodesic"
)

const metersPerMile = 1609.344

type LatLon struct {
	Lat float64
	Lon float64
}

// ParseLatLon decodes a "lat,lon" string. Exactly two numeric tokens are
// required; surrounding whitespace is tolerated.
func ParseLatLon(s string) (LatLon, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return LatLon{}, apperr.Newf(apperr.ParseError, "location %q must be 'lat,lon'", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return LatLon{}, apperr.Newf(apperr.ParseError, "invalid latitude in %q", s)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return LatLon{}, apperr.Newf(apperr.ParseError, "invalid longitude in %q", s)
	}

	return LatLon{Lat: lat, Lon: lon}, nil
}

// distanceMiles is the geodesic distance between two points on the WGS84
// ellipsoid, in miles.
func distanceMiles(a, b LatLon) float64 {
	var meters float64
	geodesic.WGS84.Inverse(a.Lat, a.Lon, b.Lat, b.Lon, &meters, nil, nil)
	return meters / metersPerMile
}
