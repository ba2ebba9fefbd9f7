package search_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"tempwork-backend/internal/config"
	"tempwork-backend/internal/database"
	"tempwork-backend/internal/models"
	"tempwork-backend/internal/search"
	"tempwork-backend/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	cfg := &config.Config{JWTSecret: "test-secret-that-is-long-enough-for-hs256", CORSOrigins: "*"}
	return server.New(cfg, db), db
}

func createProfile(t *testing.T, app *fiber.App, userID uint, skills, location string) {
	t.Helper()

	body := fmt.Sprintf(
		`{"user_id":%d,"skills":%q,"availability":"weekends","pay_rate":18.5,"location":%q}`,
		userID, skills, location)
	req := httptest.NewRequest("POST", "/create_employee_profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func searchEmployees(t *testing.T, app *fiber.App, location string, radius, position string) (*http.Response, []search.SearchResult) {
	t.Helper()

	q := url.Values{}
	q.Set("location", location)
	if radius != "" {
		q.Set("radius", radius)
	}
	if position != "" {
		q.Set("position", position)
	}

	req := httptest.NewRequest("GET", "/search_employees?"+q.Encode(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var results []search.SearchResult
	_ = json.NewDecoder(resp.Body).Decode(&results)
	return resp, results
}

func TestSearchByRadiusAndSkill(t *testing.T) {
	app, _ := newTestApp(t)

	createProfile(t, app, 1, "Line Cook", "40.01,-75.01")  // ~0.87 mi from origin
	createProfile(t, app, 2, "Line Cook", "40.7,-74.0")    // ~60+ mi away
	createProfile(t, app, 3, "Dishwasher", "40.01,-75.00") // near, wrong skill

	resp, results := searchEmployees(t, app, "40.0,-75.0", "10", "cook")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, results, 1)
	assert.Equal(t, "Line Cook", results[0].Skills)
	assert.Equal(t, "weekends", results[0].Availability)
	assert.Equal(t, 18.5, results[0].PayRate)
	assert.Greater(t, results[0].Distance, 0.0)
	assert.Less(t, results[0].Distance, 1.5)
}

func TestSearchEmptyPositionMatchesEverySkill(t *testing.T) {
	app, _ := newTestApp(t)

	createProfile(t, app, 1, "Line Cook", "40.01,-75.01")
	createProfile(t, app, 2, "Dishwasher", "40.01,-75.00")
	createProfile(t, app, 3, "Barista", "41.0,-75.0") // ~69 mi north

	resp, results := searchEmployees(t, app, "40.0,-75.0", "10", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, results, 2)
}

func TestSearchSkillMatchIsCaseInsensitiveSubstring(t *testing.T) {
	app, _ := newTestApp(t)

	createProfile(t, app, 1, "LINE COOK, prep", "40.01,-75.01")

	resp, results := searchEmployees(t, app, "40.0,-75.0", "10", "Cook")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, results, 1)
}

func TestSearchResultsOrderedByDistance(t *testing.T) {
	app, _ := newTestApp(t)

	createProfile(t, app, 1, "Cook", "40.05,-75.05") // farther
	createProfile(t, app, 2, "Cook", "40.01,-75.01") // nearer

	resp, results := searchEmployees(t, app, "40.0,-75.0", "25", "cook")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, results, 2)
	assert.LessOrEqual(t, results[0].Distance, results[1].Distance)
	assert.Equal(t, uint(2), results[0].ID)
}

func TestSearchMalformedOriginRejected(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/search_employees?location=abc&radius=10", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest("GET", "/search_employees?location=40.0,-75.0&radius=ten", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearchSkipsRowsWithMalformedStoredLocation(t *testing.T) {
	app, db := newTestApp(t)

	createProfile(t, app, 1, "Cook", "40.01,-75.01")

	// A row written with a bad location must not fail everyone's search.
	bad := models.EmployeeProfile{
		UserID: 2, Skills: "Cook", Availability: "weekdays", PayRate: 20, Location: "not-a-coordinate",
	}
	require.NoError(t, db.Create(&bad).Error)

	resp, results := searchEmployees(t, app, "40.0,-75.0", "10", "cook")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, results, 1)
}

func TestProfileRoundTripViaSearch(t *testing.T) {
	app, _ := newTestApp(t)

	createProfile(t, app, 7, "Sous Chef", "34.05,-118.25")

	resp, results := searchEmployees(t, app, "34.0,-118.2", "100", "sous")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, results, 1)
	assert.Equal(t, "Sous Chef", results[0].Skills)
}

func TestSearchDefaultRadiusIsTenMiles(t *testing.T) {
	app, _ := newTestApp(t)

	createProfile(t, app, 1, "Cook", "40.01,-75.01") // well inside 10 mi
	createProfile(t, app, 2, "Cook", "40.5,-75.0")   // ~34 mi north

	resp, results := searchEmployees(t, app, "40.0,-75.0", "", "cook")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, results, 1)
}

func TestSearchEmptyResultIsEmptyArray(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/search_employees?location=40.0,-75.0", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.JSONEq(t, "[]", string(raw))
}
