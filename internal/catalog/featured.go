package catalog

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"steelworks-backend/internal/cache"
)

// Icon identifiers rendered by the frontend glyph set.
const (
	IconShield   = "shield"
	IconBuilding = "building"
	IconWrench   = "wrench"
	IconHome     = "home"
	IconPackage  = "package"
)

type FeaturedCategory struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Image          *string `json:"image"`
	SecondaryImage *string `json:"secondary_image"`
	Icon           string  `json:"icon"`
}

// IconForCategory maps a free-text category tag to a glyph identifier.
func IconForCategory(category *string) string {
	if category == nil {
		return IconPackage
	}
	switch strings.ToLower(strings.TrimSpace(*category)) {
	case "security", "doors":
		return IconShield
	case "windows", "industrial":
		return IconBuilding
	case "fabrication", "custom":
		return IconWrench
	case "residential", "home":
		return IconHome
	default:
		return IconPackage
	}
}

func strptr(s string) *string { return &s }

// Shown when no products are configured for the slider, so the homepage is
// never empty.
var defaultCategories = []FeaturedCategory{
	{
		ID:             "default-1",
		Title:          "Security Doors",
		Image:          strptr("/assets/defaults/security-doors.png"),
		SecondaryImage: strptr("/assets/defaults/security-doors-alt.png"),
		Icon:           IconShield,
	},
	{
		ID:             "default-2",
		Title:          "Industrial Windows",
		Image:          strptr("/assets/defaults/industrial-windows.png"),
		SecondaryImage: strptr("/assets/defaults/industrial-windows-alt.png"),
		Icon:           IconBuilding,
	},
	{
		ID:             "default-3",
		Title:          "Custom Fabrication",
		Image:          strptr("/assets/defaults/custom-fabrication.png"),
		SecondaryImage: strptr("/assets/defaults/custom-fabrication-alt.png"),
		Icon:           IconWrench,
	},
	{
		ID:             "default-4",
		Title:          "Residential Solutions",
		Image:          strptr("/assets/defaults/residential-solutions.png"),
		SecondaryImage: strptr("/assets/defaults/residential-solutions-alt.png"),
		Icon:           IconHome,
	},
	{
		ID:    "default-5",
		Title: "Kambi Patta",
		Image: strptr("/assets/defaults/kambi-patta.png"),
		Icon:  IconBuilding,
	},
	{
		ID:    "default-6",
		Title: "Pipe Window",
		Image: strptr("/assets/defaults/pipe-window.png"),
		Icon:  IconBuilding,
	},
}

// GET /api/featured-categories
func FeaturedCategoriesHandler(qc *cache.Cache) fiber.Handler {
	key := cache.Key(EntityProducts, "featured")
	return func(c *fiber.Ctx) error {
		if cached, ok := qc.Get(key); ok {
			return c.JSON(cached)
		}

		products, err := fetchSliderProducts()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Featured categories could not be listed")
		}

		categories := defaultCategories
		if len(products) > 0 {
			categories = make([]FeaturedCategory, 0, len(products))
			for _, p := range products {
				categories = append(categories, FeaturedCategory{
					ID:             p.ID,
					Title:          p.Name,
					Image:          p.ImageURL,
					SecondaryImage: p.SecondaryImageURL,
					Icon:           IconForCategory(p.Category),
				})
			}
		}

		qc.Set(key, categories)
		return c.JSON(categories)
	}
}
