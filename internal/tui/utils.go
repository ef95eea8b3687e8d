package tui

import (
	"fmt"
	"net/http"
	"os"
	"strings"
)

// sniffs the file's MIME type from its first bytes
func detectImageType(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck

	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && n == 0 {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return http.DetectContentType(buf[:n]), nil
}

// validates a selected file: it must exist, be an image, and fit the
// size limit. Every selection path runs through this same check.
func validateImageFile(path string, maxSize int64) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file not found: %s", path)
	}

	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	if info.Size() > maxSize {
		return fmt.Errorf("image files must be smaller than %d MB", maxSize>>20)
	}

	mimeType, err := detectImageType(path)
	if err != nil {
		return err
	}

	if !strings.HasPrefix(mimeType, "image/") {
		return fmt.Errorf("%s is not an image", path)
	}

	return nil
}

// picks a file extension for the saved result
func extensionForMime(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
