package content

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"steelworks-backend/internal/audit"
	"steelworks-backend/internal/cache"
	"steelworks-backend/internal/database"
	"steelworks-backend/internal/models"
)

const EntityContent = "content"

type CreateSectionRequest struct {
	SectionType   string `json:"section_type"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	ImageURL      string `json:"image_url"`
	OrderPosition *int   `json:"order_position"`
	Active        *bool  `json:"active"`
}

type UpdateSectionRequest struct {
	SectionType   *string `json:"section_type"`
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	ImageURL      *string `json:"image_url"`
	OrderPosition *int    `json:"order_position"`
	Active        *bool   `json:"active"`
}

// GET /api/content?section=hero
// Active sections in display order, optionally filtered by type.
func ListPublicSectionsHandler(qc *cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		section := strings.TrimSpace(c.Query("section"))
		key := cache.Key(EntityContent, "public", "section="+section)

		if cached, ok := qc.Get(key); ok {
			return c.JSON(cached)
		}

		dbq := database.DB.Where("active = ?", true)
		if section != "" {
			dbq = dbq.Where("section_type = ?", section)
		}

		var sections []models.HomepageSection
		if err := dbq.Order("order_position asc").Find(&sections).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Content could not be listed")
		}

		qc.Set(key, sections)
		return c.JSON(sections)
	}
}

// GET /api/admin/content
func ListSectionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sections []models.HomepageSection
		if err := database.DB.Order("order_position asc").Find(&sections).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Content could not be listed")
		}
		return c.JSON(sections)
	}
}

// POST /api/admin/content
func CreateSectionHandler(qc *cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSectionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.SectionType = strings.TrimSpace(body.SectionType)
		if body.SectionType == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Section type is required")
		}

		s := models.HomepageSection{
			SectionType: body.SectionType,
			Title:       models.NormalizeString(body.Title),
			Content:     models.NormalizeString(body.Content),
			ImageURL:    models.NormalizeString(body.ImageURL),
			Active:      true,
		}
		if body.OrderPosition != nil {
			s.OrderPosition = *body.OrderPosition
		}
		if body.Active != nil {
			s.Active = *body.Active
		}

		if err := database.DB.Create(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Section could not be created")
		}

		qc.Invalidate(EntityContent)
		audit.Record(c, EntityContent, s.ID, models.AuditCreate, s)

		return c.Status(fiber.StatusCreated).JSON(s)
	}
}

// PUT /api/admin/content/:id
func UpdateSectionHandler(qc *cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var s models.HomepageSection
		if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Section not found")
		}

		var body UpdateSectionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		updates := map[string]any{}
		if body.SectionType != nil {
			sectionType := strings.TrimSpace(*body.SectionType)
			if sectionType == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Section type cannot be empty")
			}
			updates["section_type"] = sectionType
		}
		if body.Title != nil {
			updates["title"] = models.NormalizeString(*body.Title)
		}
		if body.Content != nil {
			updates["content"] = models.NormalizeString(*body.Content)
		}
		if body.ImageURL != nil {
			updates["image_url"] = models.NormalizeString(*body.ImageURL)
		}
		if body.OrderPosition != nil {
			updates["order_position"] = *body.OrderPosition
		}
		if body.Active != nil {
			updates["active"] = *body.Active
		}

		if len(updates) > 0 {
			if err := database.DB.Model(&s).Updates(updates).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Section could not be updated")
			}
		}

		qc.Invalidate(EntityContent)
		audit.Record(c, EntityContent, s.ID, models.AuditUpdate, updates)

		return c.JSON(s)
	}
}

// DELETE /api/admin/content/:id
func DeleteSectionHandler(qc *cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var s models.HomepageSection
		if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Section not found")
		}

		if err := database.DB.Delete(&models.HomepageSection{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Section could not be deleted")
		}

		qc.Invalidate(EntityContent)
		audit.Record(c, EntityContent, id, models.AuditDelete, s)

		return c.SendStatus(fiber.StatusNoContent)
	}
}
