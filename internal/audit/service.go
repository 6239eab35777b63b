package audit

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"steelworks-backend/internal/auth"
	"steelworks-backend/internal/database"
	"steelworks-backend/internal/models"
)

// Record appends a mutation to the audit log. Failures are logged and
// swallowed: the log must never fail the mutation it describes.
func Record(c *fiber.Ctx, entityType, entityID string, action models.AuditAction, detail any) {
	detailStr := "null"
	if detail != nil {
		if b, err := json.Marshal(detail); err == nil {
			detailStr = string(b)
		}
	}

	entry := models.AuditEntry{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Detail:     detailStr,
	}
	if userID, ok := c.Locals(auth.CtxUserIDKey).(uint); ok {
		entry.UserID = userID
	}
	if email, ok := c.Locals(auth.CtxUserEmailKey).(string); ok {
		entry.UserEmail = email
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		zap.S().Errorw("audit entry could not be written",
			"entity_type", entityType, "entity_id", entityID, "error", err)
	}
}
