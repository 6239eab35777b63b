// Package storage keeps uploaded images on local disk under the configured
// upload directory and serves them back under the /assets/ public prefix.
package storage

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"
)

const MaxImageSize = 5 * 1024 * 1024 // 5 MB

// PublicPrefix is the URL path the upload directory is mounted on.
const PublicPrefix = "/assets"

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ValidateImage checks MIME type and size before anything touches the disk.
func ValidateImage(contentType string, size int64) error {
	if _, ok := allowedImageTypes[strings.ToLower(contentType)]; !ok {
		return fmt.Errorf("unsupported image type %q (JPEG, PNG, GIF or WebP only)", contentType)
	}
	if size > MaxImageSize {
		return fmt.Errorf("file size %d exceeds the 5 MB limit", size)
	}
	return nil
}

// BuildFileName renames an upload to <unix-ms>.<ext>, keeping the original
// extension when there is one and deriving it from the MIME type otherwise.
func BuildFileName(originalName, contentType string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = allowedImageTypes[strings.ToLower(contentType)]
	}
	return fmt.Sprintf("%d%s", now.UnixMilli(), ext)
}

// SanitizeFolder restricts the caller-supplied folder to a single plain path
// segment, defaulting to "products".
func SanitizeFolder(folder string) string {
	folder = strings.TrimSpace(folder)
	if folder == "" {
		return "products"
	}
	folder = path.Base(path.Clean("/" + folder))
	if folder == "/" || folder == "." {
		return "products"
	}
	return folder
}

// PublicURL returns the publicly reachable URL for a stored file.
func PublicURL(baseURL, folder, fileName string) string {
	return strings.TrimRight(baseURL, "/") + PublicPrefix + "/" + folder + "/" + fileName
}

// PathFromURL resolves a previously returned public URL back to the relative
// storage path. The URL must match this server's assets base; foreign or
// reshaped URLs are rejected rather than guessed at.
func PathFromURL(baseURL, imageURL string) (string, error) {
	prefix := strings.TrimRight(baseURL, "/") + PublicPrefix + "/"
	if !strings.HasPrefix(imageURL, prefix) {
		return "", fmt.Errorf("URL does not belong to this server's assets storage")
	}

	rel := strings.TrimPrefix(imageURL, prefix)
	rel = path.Clean(rel)
	if rel == "." || rel == "/" || strings.HasPrefix(rel, "..") || path.IsAbs(rel) {
		return "", fmt.Errorf("invalid storage path in URL")
	}
	parts := strings.Split(rel, "/")
	if len(parts) != 2 {
		return "", fmt.Errorf("expected a <folder>/<file> storage path")
	}
	return rel, nil
}
