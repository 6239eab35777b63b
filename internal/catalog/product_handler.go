package catalog

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"steelworks-backend/internal/audit"
	"steelworks-backend/internal/cache"
	"steelworks-backend/internal/database"
	"steelworks-backend/internal/models"
)

const EntityProducts = "products"

type CreateProductRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Price             *float64 `json:"price"`
	Category          string   `json:"category"`
	ImageURL          string   `json:"image_url"`
	SecondaryImageURL string   `json:"secondary_image_url"`
	Points            string   `json:"points"`
	Active            *bool    `json:"active"`
	Featured          *bool    `json:"featured"`
	ShowInSlider      *bool    `json:"show_in_slider"`
	SliderOrder       *int     `json:"slider_order"`
}

type UpdateProductRequest struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	Price             *float64 `json:"price"`
	Category          *string  `json:"category"`
	ImageURL          *string  `json:"image_url"`
	SecondaryImageURL *string  `json:"secondary_image_url"`
	Points            *string  `json:"points"`
	Active            *bool    `json:"active"`
	Featured          *bool    `json:"featured"`
	ShowInSlider      *bool    `json:"show_in_slider"`
	SliderOrder       *int     `json:"slider_order"`
}

type SliderToggleRequest struct {
	ShowInSlider *bool `json:"show_in_slider"`
	SliderOrder  *int  `json:"slider_order"`
}

// GET /api/admin/products (inactive products included)
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Order("created_at desc").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Products could not be listed")
		}
		return c.JSON(products)
	}
}

// POST /api/admin/products
func CreateProductHandler(qc *cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}
		if body.Price != nil && *body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Price cannot be negative")
		}

		p := models.Product{
			Name:              body.Name,
			Description:       models.NormalizeString(body.Description),
			Price:             body.Price,
			Category:          models.NormalizeString(body.Category),
			ImageURL:          models.NormalizeString(body.ImageURL),
			SecondaryImageURL: models.NormalizeString(body.SecondaryImageURL),
			Points:            models.NormalizeString(body.Points),
			Active:            true,
			Featured:          false,
			ShowInSlider:      true,
			SliderOrder:       0,
		}
		if body.Active != nil {
			p.Active = *body.Active
		}
		if body.Featured != nil {
			p.Featured = *body.Featured
		}
		if body.ShowInSlider != nil {
			p.ShowInSlider = *body.ShowInSlider
		}
		if body.SliderOrder != nil {
			p.SliderOrder = *body.SliderOrder
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Product could not be created")
		}

		qc.Invalidate(EntityProducts)
		audit.Record(c, EntityProducts, p.ID, models.AuditCreate, p)

		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// PUT /api/admin/products/:id
func UpdateProductHandler(qc *cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		updates := map[string]any{}
		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
			}
			updates["name"] = name
		}
		if body.Description != nil {
			updates["description"] = models.NormalizeString(*body.Description)
		}
		if body.Price != nil {
			if *body.Price < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Price cannot be negative")
			}
			updates["price"] = *body.Price
		}
		if body.Category != nil {
			updates["category"] = models.NormalizeString(*body.Category)
		}
		if body.ImageURL != nil {
			updates["image_url"] = models.NormalizeString(*body.ImageURL)
		}
		if body.SecondaryImageURL != nil {
			updates["secondary_image_url"] = models.NormalizeString(*body.SecondaryImageURL)
		}
		if body.Points != nil {
			updates["points"] = models.NormalizeString(*body.Points)
		}
		if body.Active != nil {
			updates["active"] = *body.Active
		}
		if body.Featured != nil {
			updates["featured"] = *body.Featured
		}
		if body.ShowInSlider != nil {
			updates["show_in_slider"] = *body.ShowInSlider
		}
		if body.SliderOrder != nil {
			updates["slider_order"] = *body.SliderOrder
		}

		if len(updates) > 0 {
			if err := database.DB.Model(&p).Updates(updates).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Product could not be updated")
			}
		}

		qc.Invalidate(EntityProducts)
		audit.Record(c, EntityProducts, p.ID, models.AuditUpdate, updates)

		return c.JSON(p)
	}
}

// PATCH /api/admin/products/:id/slider
// Quick toggles from the management list: slider visibility and order each
// arrive as independent partial updates.
func ToggleSliderHandler(qc *cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		var body SliderToggleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.ShowInSlider == nil && body.SliderOrder == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Nothing to update")
		}

		updates := map[string]any{}
		if body.ShowInSlider != nil {
			updates["show_in_slider"] = *body.ShowInSlider
		}
		if body.SliderOrder != nil {
			updates["slider_order"] = *body.SliderOrder
		}

		if err := database.DB.Model(&p).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Product could not be updated")
		}

		qc.Invalidate(EntityProducts)
		audit.Record(c, EntityProducts, p.ID, models.AuditUpdate, updates)

		return c.JSON(p)
	}
}

// DELETE /api/admin/products/:id
// Hard delete, no undo.
func DeleteProductHandler(qc *cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		if err := database.DB.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Product could not be deleted")
		}

		qc.Invalidate(EntityProducts)
		audit.Record(c, EntityProducts, id, models.AuditDelete, p)

		return c.SendStatus(fiber.StatusNoContent)
	}
}
