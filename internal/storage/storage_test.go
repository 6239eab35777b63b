package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateImage(t *testing.T) {
	assert.NoError(t, ValidateImage("image/jpeg", 1024))
	assert.NoError(t, ValidateImage("image/PNG", MaxImageSize))

	assert.Error(t, ValidateImage("application/pdf", 1024))
	assert.Error(t, ValidateImage("text/html", 10))
	assert.Error(t, ValidateImage("image/jpeg", MaxImageSize+1))
}

func TestBuildFileName(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	assert.Equal(t, "1700000000000.png", BuildFileName("door.png", "image/png", now))
	assert.Equal(t, "1700000000000.jpg", BuildFileName("PHOTO.JPG", "image/jpeg", now))
	// No extension on the original name: derive it from the MIME type.
	assert.Equal(t, "1700000000000.webp", BuildFileName("upload", "image/webp", now))
}

func TestSanitizeFolder(t *testing.T) {
	assert.Equal(t, "products", SanitizeFolder(""))
	assert.Equal(t, "projects", SanitizeFolder("projects"))
	assert.Equal(t, "secret", SanitizeFolder("../../etc/secret"))
	assert.Equal(t, "products", SanitizeFolder("/"))
}

func TestPublicURLPathRoundTrip(t *testing.T) {
	base := "https://example.com"
	url := PublicURL(base, "products", "1700000000000.png")
	assert.Equal(t, "https://example.com/assets/products/1700000000000.png", url)

	rel, err := PathFromURL(base, url)
	require.NoError(t, err)
	assert.Equal(t, "products/1700000000000.png", rel)
}

func TestPathFromURLRejectsForeignOrReshapedURLs(t *testing.T) {
	base := "https://example.com"

	_, err := PathFromURL(base, "https://elsewhere.com/assets/products/a.png")
	assert.Error(t, err)

	_, err = PathFromURL(base, "https://example.com/other/products/a.png")
	assert.Error(t, err)

	_, err = PathFromURL(base, "https://example.com/assets/a.png")
	assert.Error(t, err, "missing folder segment")

	_, err = PathFromURL(base, "https://example.com/assets/../secrets/a.png")
	assert.Error(t, err)
}
