package catalog

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steelworks-backend/internal/models"
)

func TestIconForCategory(t *testing.T) {
	cases := map[string]string{
		"security":    IconShield,
		"Doors":       IconShield,
		"windows":     IconBuilding,
		"INDUSTRIAL":  IconBuilding,
		"fabrication": IconWrench,
		"custom":      IconWrench,
		"residential": IconHome,
		"home":        IconHome,
		"kambi patta": IconPackage,
		"":            IconPackage,
	}
	for tag, want := range cases {
		tag := tag
		assert.Equal(t, want, IconForCategory(&tag), "category %q", tag)
	}
	assert.Equal(t, IconPackage, IconForCategory(nil))
}

func decodeCategories(t *testing.T, resp *http.Response) []FeaturedCategory {
	t.Helper()
	var categories []FeaturedCategory
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&categories))
	return categories
}

func TestFeaturedCategoriesFallbackWhenSliderEmpty(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/featured-categories", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeCategories(t, resp)
	require.Len(t, got, len(defaultCategories), "homepage must never be empty")
	assert.Equal(t, "Security Doors", got[0].Title)
	assert.Equal(t, IconShield, got[0].Icon)
}

func TestFeaturedCategoriesDerivedFromSliderProducts(t *testing.T) {
	app, _, _ := setupTestApp(t)

	category := "security"
	img := "/assets/products/1.png"
	seedProduct(t, models.Product{
		Name:         "Steel Security Door",
		Category:     &category,
		ImageURL:     &img,
		Active:       true,
		ShowInSlider: true,
	})
	seedProduct(t, models.Product{Name: "Hidden", Active: true, ShowInSlider: false})

	resp := doRequest(t, app, http.MethodGet, "/api/featured-categories", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeCategories(t, resp)
	require.Len(t, got, 1)
	assert.Equal(t, "Steel Security Door", got[0].Title)
	assert.Equal(t, IconShield, got[0].Icon)
	require.NotNil(t, got[0].Image)
	assert.Equal(t, img, *got[0].Image)
}
