package service

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// AllowedExtensions are the image formats the extraction endpoint accepts.
var AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".heic"}

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".heic": "image/heic",
}

// Image is a single photo sent for extraction.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// IsAllowedImage reports whether path has a supported image extension.
func IsAllowedImage(path string) bool {
	return slices.Contains(AllowedExtensions, strings.ToLower(filepath.Ext(path)))
}

// LoadImage reads an image file from disk.
func LoadImage(path string) (Image, error) {
	if !IsAllowedImage(path) {
		return Image{}, fmt.Errorf("unsupported image type %q (supported: %s)",
			filepath.Ext(path), strings.Join(AllowedExtensions, ", "))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("reading image: %w", err)
	}
	return NewImage(filepath.Base(path), data), nil
}

// NewImage wraps raw bytes, inferring the content type from the file name
// and falling back to sniffing the data.
func NewImage(filename string, data []byte) Image {
	ct, ok := contentTypes[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		ct = http.DetectContentType(data)
	}
	return Image{Filename: filename, ContentType: ct, Data: data}
}
