package contact

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/guonaihong/gout"
	"go.uber.org/zap"

	"steelworks-backend/internal/config"
)

type SubmitRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ProjectType string `json:"project_type"`
	Message     string `json:"message"`
}

// POST /api/contact
// Validates the visitor's fields, then relays them to the configured
// formsubmit-style endpoint as a plain form POST. Success is judged by the
// relay's HTTP status alone; there is no structured error body to parse.
func SubmitContactHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SubmitRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.FirstName = strings.TrimSpace(body.FirstName)
		body.LastName = strings.TrimSpace(body.LastName)
		body.Email = strings.TrimSpace(body.Email)
		body.Message = strings.TrimSpace(body.Message)

		if body.FirstName == "" || body.LastName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "First and last name are required")
		}
		if body.Email == "" || !strings.Contains(body.Email, "@") {
			return fiber.NewError(fiber.StatusBadRequest, "A valid email address is required")
		}
		if body.Message == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Message is required")
		}

		// Hidden relay configuration travels with every submission.
		form := gout.H{
			"_subject":     cfg.ContactSubject,
			"_captcha":     "false",
			"_template":    "table",
			"first_name":   body.FirstName,
			"last_name":    body.LastName,
			"email":        body.Email,
			"phone":        body.Phone,
			"project_type": body.ProjectType,
			"message":      body.Message,
		}

		var code int
		err := gout.POST(cfg.ContactRelayURL).
			SetTimeout(15 * time.Second).
			SetWWWForm(form).
			Code(&code).
			Do()
		if err != nil {
			zap.S().Errorw("contact relay request failed", "error", err)
			return fiber.NewError(fiber.StatusBadGateway, "Message could not be sent, please try again or contact us directly")
		}
		if code < 200 || code > 299 {
			zap.S().Errorw("contact relay rejected submission", "status", code)
			return fiber.NewError(fiber.StatusBadGateway, "Message could not be sent, please try again or contact us directly")
		}

		return c.JSON(fiber.Map{
			"message": "Message sent successfully. We'll get back to you within 24 hours.",
		})
	}
}
