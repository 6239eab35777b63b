package catalog

import (
	"github.com/gofiber/fiber/v2"

	"steelworks-backend/internal/cache"
	"steelworks-backend/internal/database"
	"steelworks-backend/internal/models"
)

// GET /api/products
// Active products only, newest first.
func ListPublicProductsHandler(qc *cache.Cache) fiber.Handler {
	key := cache.Key(EntityProducts, "public")
	return func(c *fiber.Ctx) error {
		if cached, ok := qc.Get(key); ok {
			return c.JSON(cached)
		}

		var products []models.Product
		if err := database.DB.
			Where("active = ?", true).
			Order("created_at desc").
			Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Products could not be listed")
		}

		qc.Set(key, products)
		return c.JSON(products)
	}
}

// GET /api/products/:id
func GetPublicProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := database.DB.
			Where("active = ?", true).
			First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		return c.JSON(p)
	}
}

// GET /api/slider-products
// Active products flagged for the homepage carousel, ordered by slider
// position; ties go to the newest product.
func SliderProductsHandler(qc *cache.Cache) fiber.Handler {
	key := cache.Key(EntityProducts, "slider")
	return func(c *fiber.Ctx) error {
		if cached, ok := qc.Get(key); ok {
			return c.JSON(cached)
		}

		products, err := fetchSliderProducts()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Slider products could not be listed")
		}

		qc.Set(key, products)
		return c.JSON(products)
	}
}

func fetchSliderProducts() ([]models.Product, error) {
	var products []models.Product
	err := database.DB.
		Where("active = ? AND show_in_slider = ?", true, true).
		Order("slider_order asc").
		Order("created_at desc").
		Find(&products).Error
	return products, err
}
