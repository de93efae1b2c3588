package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gerai/internal/models"

	"github.com/stretchr/testify/assert"
)

// TestAppWiring boots the real wiring against the in-memory repositories and
// checks the app responds end to end.
func TestAppWiring(t *testing.T) {
	repos, err := newRepositories("")
	assert.NoError(t, err)
	seedCatalog(repos)

	app := newApp(repos, "test_jwt_secret", nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The seeded catalog is publicly readable.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/products/", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var products []models.Product
	defer resp.Body.Close()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	assert.NotEmpty(t, products)

	// Orders are not.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/orders/", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
