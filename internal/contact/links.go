package contact

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"steelworks-backend/internal/config"
)

type OutboundLinks struct {
	// WhatsApp is the link the client should try first; on mobile user
	// agents it uses the native whatsapp:// scheme, elsewhere the web URL.
	WhatsApp         string `json:"whatsapp"`
	WhatsAppFallback string `json:"whatsapp_fallback"`
	Tel              string `json:"tel"`
	Mailto           string `json:"mailto"`
}

// WhatsAppWebURL builds the https://api.whatsapp.com deep link.
func WhatsAppWebURL(number, message string) string {
	return "https://api.whatsapp.com/send?phone=" + number + "&text=" + url.QueryEscape(message)
}

// WhatsAppNativeURL builds the whatsapp:// app-scheme deep link.
func WhatsAppNativeURL(number, message string) string {
	return "whatsapp://send?phone=" + number + "&text=" + url.QueryEscape(message)
}

// WhatsAppShortURL builds the wa.me fallback link.
func WhatsAppShortURL(number, message string) string {
	return "https://wa.me/" + number + "/?text=" + url.QueryEscape(message)
}

var mobileUAMarkers = []string{"android", "iphone", "ipad", "ipod", "mobile"}

// IsMobileUserAgent sniffs the User-Agent string for mobile platforms, the
// same heuristic the site uses to pick the native scheme over the web URL.
func IsMobileUserAgent(ua string) bool {
	ua = strings.ToLower(ua)
	for _, marker := range mobileUAMarkers {
		if strings.Contains(ua, marker) {
			return true
		}
	}
	return false
}

// BuildLinks assembles the outbound contact shortcuts for a visitor.
func BuildLinks(cfg *config.Config, userAgent string) OutboundLinks {
	links := OutboundLinks{
		WhatsAppFallback: WhatsAppShortURL(cfg.WhatsAppNumber, cfg.WhatsAppMessage),
		Tel:              "tel:" + cfg.ContactPhone,
		Mailto:           "mailto:" + cfg.ContactEmail,
	}
	if IsMobileUserAgent(userAgent) {
		links.WhatsApp = WhatsAppNativeURL(cfg.WhatsAppNumber, cfg.WhatsAppMessage)
	} else {
		links.WhatsApp = WhatsAppWebURL(cfg.WhatsAppNumber, cfg.WhatsAppMessage)
	}
	return links
}

// GET /api/contact/links
func LinksHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(BuildLinks(cfg, c.Get("User-Agent")))
	}
}
