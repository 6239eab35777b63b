package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"steelworks-backend/internal/config"
)

const (
	desktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	iphoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15"
	androidUA = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 Mobile Safari/537.36"
)

func testLinksConfig() *config.Config {
	return &config.Config{
		ContactPhone:    "+919442021149",
		ContactEmail:    "info@sumithindustries.com",
		WhatsAppNumber:  "919442021149",
		WhatsAppMessage: "Hello! I'm interested in your steel products.",
	}
}

func TestIsMobileUserAgent(t *testing.T) {
	assert.False(t, IsMobileUserAgent(desktopUA))
	assert.True(t, IsMobileUserAgent(iphoneUA))
	assert.True(t, IsMobileUserAgent(androidUA))
	assert.False(t, IsMobileUserAgent(""))
}

func TestWhatsAppURLs(t *testing.T) {
	web := WhatsAppWebURL("919442021149", "Hello there")
	assert.Equal(t, "https://api.whatsapp.com/send?phone=919442021149&text=Hello+there", web)

	native := WhatsAppNativeURL("919442021149", "Hello there")
	assert.Equal(t, "whatsapp://send?phone=919442021149&text=Hello+there", native)

	short := WhatsAppShortURL("919442021149", "Hello there")
	assert.Equal(t, "https://wa.me/919442021149/?text=Hello+there", short)
}

func TestBuildLinksPicksSchemeByUserAgent(t *testing.T) {
	cfg := testLinksConfig()

	desktop := BuildLinks(cfg, desktopUA)
	assert.Contains(t, desktop.WhatsApp, "https://api.whatsapp.com/send")
	assert.Contains(t, desktop.WhatsAppFallback, "https://wa.me/")
	assert.Equal(t, "tel:+919442021149", desktop.Tel)
	assert.Equal(t, "mailto:info@sumithindustries.com", desktop.Mailto)

	mobile := BuildLinks(cfg, androidUA)
	assert.Contains(t, mobile.WhatsApp, "whatsapp://send")
	assert.Contains(t, mobile.WhatsAppFallback, "https://wa.me/")
}
