package validators

import (
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// ImageExtensionTag is the tag under which ImageExtensionValidation is registered
const ImageExtensionTag = "imageExtension"

// MaxImageSize is the largest accepted image upload in bytes
const MaxImageSize = 5 << 20

// AllowedImageExtensions lists the accepted image file extensions, lowercase and without dot
var AllowedImageExtensions = []string{"jpg", "jpeg", "png", "webp", "gif"}

// ImageExtensionValidation validates that a file name ends in one of AllowedImageExtensions (case insensitive).
func ImageExtensionValidation(fl validator.FieldLevel) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fl.Field().String()), "."))
	return lo.Contains(AllowedImageExtensions, ext)
}

// New returns a validator with the custom validations of this package registered
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation(ImageExtensionTag, ImageExtensionValidation); err != nil {
		return nil, err
	}
	return validate, nil
}
