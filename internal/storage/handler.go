package storage

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"steelworks-backend/internal/config"
)

type UploadResponse struct {
	URL      string `json:"url"`
	Folder   string `json:"folder"`
	FileName string `json:"file_name"`
}

type DeleteRequest struct {
	URL string `json:"url"`
}

// POST /api/admin/uploads
// Accepts one multipart image under "file", optionally a "folder" form
// value. Validation happens before any disk write.
func UploadImageHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "A file is required")
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if err := ValidateImage(contentType, fileHeader.Size); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		folder := SanitizeFolder(c.FormValue("folder"))
		fileName := BuildFileName(fileHeader.Filename, contentType, time.Now())

		dir := filepath.Join(cfg.UploadDir, folder)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			zap.S().Errorw("upload directory could not be created", "dir", dir, "error", err)
			return fiber.NewError(fiber.StatusInternalServerError, "File could not be stored")
		}

		dst := filepath.Join(dir, fileName)
		if err := c.SaveFile(fileHeader, dst); err != nil {
			zap.S().Errorw("upload could not be saved", "path", dst, "error", err)
			return fiber.NewError(fiber.StatusInternalServerError, "File could not be stored")
		}

		return c.Status(fiber.StatusCreated).JSON(UploadResponse{
			URL:      PublicURL(cfg.PublicBaseURL, folder, fileName),
			Folder:   folder,
			FileName: fileName,
		})
	}
}

// DELETE /api/admin/uploads
// Removes a stored file by its previously returned public URL.
func DeleteImageHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body DeleteRequest
		if err := c.BodyParser(&body); err != nil || body.URL == "" {
			return fiber.NewError(fiber.StatusBadRequest, "A file URL is required")
		}

		rel, err := PathFromURL(cfg.PublicBaseURL, body.URL)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		fullPath := filepath.Join(cfg.UploadDir, filepath.FromSlash(rel))
		if err := os.Remove(fullPath); err != nil {
			if os.IsNotExist(err) {
				return fiber.NewError(fiber.StatusNotFound, "File not found")
			}
			zap.S().Errorw("upload could not be deleted", "path", fullPath, "error", err)
			return fiber.NewError(fiber.StatusInternalServerError, "File could not be deleted")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
