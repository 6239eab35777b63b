package storage

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steelworks-backend/internal/config"
)

func setupStorageApp(t *testing.T) (*fiber.App, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		UploadDir:     t.TempDir(),
		PublicBaseURL: "http://localhost:8080",
	}

	app := fiber.New(fiber.Config{BodyLimit: MaxImageSize + 1024*1024})
	app.Post("/api/admin/uploads", UploadImageHandler(cfg))
	app.Delete("/api/admin/uploads", DeleteImageHandler(cfg))

	return app, cfg
}

func multipartUpload(t *testing.T, fileName, contentType string, content []byte, folder string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	if folder != "" {
		require.NoError(t, w.WriteField("folder", folder))
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func TestUploadAndDeleteRoundTrip(t *testing.T) {
	app, cfg := setupStorageApp(t)

	body, contentType := multipartUpload(t, "door.png", "image/png", []byte("fake-png-bytes"), "products")
	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var uploaded UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&uploaded))
	assert.Equal(t, "products", uploaded.Folder)
	assert.True(t, strings.HasSuffix(uploaded.FileName, ".png"))
	assert.True(t, strings.HasPrefix(uploaded.URL, "http://localhost:8080/assets/products/"))

	stored := filepath.Join(cfg.UploadDir, "products", uploaded.FileName)
	_, err = os.Stat(stored)
	require.NoError(t, err, "file must exist on disk")

	// Delete by the returned public URL.
	deleteBody, err := json.Marshal(DeleteRequest{URL: uploaded.URL})
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodDelete, "/api/admin/uploads", bytes.NewReader(deleteBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))
}

func TestUploadRejectsBadFilesBeforeWriting(t *testing.T) {
	app, cfg := setupStorageApp(t)

	// Wrong MIME type.
	body, contentType := multipartUpload(t, "doc.pdf", "application/pdf", []byte("%PDF"), "")
	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Oversized image.
	big := bytes.Repeat([]byte("x"), MaxImageSize+1)
	body, contentType = multipartUpload(t, "big.png", "image/png", big, "")
	req = httptest.NewRequest(http.MethodPost, "/api/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	resp, err = app.Test(req, 20000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	entries, err := os.ReadDir(cfg.UploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected uploads must not touch the disk")
}

func TestDeleteRejectsForeignURL(t *testing.T) {
	app, _ := setupStorageApp(t)

	deleteBody, err := json.Marshal(DeleteRequest{URL: "https://elsewhere.com/assets/products/a.png"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/uploads", bytes.NewReader(deleteBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
