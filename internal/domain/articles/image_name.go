package articles

import (
	"encoding/base64"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	// ImageNamespace groups every article image in the object store
	ImageNamespace = "article"

	imageNamePrefix = "article-"
)

// NewImageID returns 16 url-safe characters carrying 96 random bits.
// Bytes 6 and 8 of a v4 UUID hold the version and variant, so only the fully random bytes are used.
func NewImageID() string {
	u := uuid.New()

	var raw [12]byte
	copy(raw[:6], u[:6])
	copy(raw[6:], u[9:15])
	return base64.RawURLEncoding.EncodeToString(raw[:])
}

// NewImageName derives the object name for an uploaded file: article-<16 random chars>.<ext>.
// The extension is taken from originalName and lowercased; it is omitted when originalName has none.
func NewImageName(originalName string) string {
	id := NewImageID()

	ext := ImageExtension(originalName)
	if ext == "" {
		return imageNamePrefix + id
	}
	return imageNamePrefix + id + "." + ext
}

// ImageExtension returns the lowercased extension of name without the leading dot
func ImageExtension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
