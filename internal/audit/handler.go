package audit

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"

	"steelworks-backend/internal/database"
	"steelworks-backend/internal/models"
)

// GET /api/admin/audit?limit=100
func ListAuditEntriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := cast.ToInt(c.Query("limit"))
		if limit <= 0 || limit > 500 {
			limit = 100
		}

		var entries []models.AuditEntry
		if err := database.DB.Order("created_at desc").Limit(limit).Find(&entries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Audit log could not be listed")
		}
		return c.JSON(entries)
	}
}
