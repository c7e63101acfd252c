package articles

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Article entity
type Article struct {
	ID          int64     `validate:"gte=0"`
	Title       string    `validate:"required,min=1,max=255"`
	Description string    `validate:"required"`
	ImageURL    *string   `validate:"omitempty,min=1,max=2048"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasImage reports whether the article references a stored image
func (a *Article) HasImage() bool {
	return a.ImageURL != nil && *a.ImageURL != ""
}

// Validate for validating Article struct. Failures wrap ErrValidation.
func (a *Article) Validate() error {
	validate := validator.New()

	err := validate.Struct(a)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: %v", ErrValidation, messages)
		}
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}
