package v1

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/MGTheTrain/article-service/internal/domain/articles"
	"github.com/MGTheTrain/article-service/internal/pkg/validators"
)

const (
	formFieldTitle       = "title"
	formFieldDescription = "description"
	formFieldImage       = "image"
)

// CreateArticleRequest is the multipart payload of POST /articles
type CreateArticleRequest struct {
	Title       string `validate:"required,min=1,max=255"`
	Description string `validate:"required"`
	ImageName   string `validate:"omitempty,imageExtension"`
	ImageSize   int64  `validate:"gte=0"`

	Image *multipart.FileHeader `validate:"-"`
}

// Validate for validating CreateArticleRequest struct
func (r *CreateArticleRequest) Validate() error {
	return validateRequest(r, r.ImageSize)
}

// ToInput converts the request into the service input
func (r *CreateArticleRequest) ToInput() *articles.CreateInput {
	return &articles.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
	}
}

// UpdateArticleRequest is the multipart payload of PUT/PATCH /articles/:id.
// A nil field was not sent and keeps its stored value.
type UpdateArticleRequest struct {
	Title       *string `validate:"omitempty,min=1,max=255"`
	Description *string `validate:"omitempty,min=1"`
	ImageName   string  `validate:"omitempty,imageExtension"`
	ImageSize   int64   `validate:"gte=0"`

	Image *multipart.FileHeader `validate:"-"`
}

// Validate for validating UpdateArticleRequest struct
func (r *UpdateArticleRequest) Validate() error {
	return validateRequest(r, r.ImageSize)
}

// ToInput converts the request into the service input
func (r *UpdateArticleRequest) ToInput() *articles.UpdateInput {
	return &articles.UpdateInput{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
	}
}

// ArticleResponse is the JSON representation of an article
type ArticleResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewArticleResponse maps a domain article to its JSON representation
func NewArticleResponse(article *articles.Article) ArticleResponse {
	return ArticleResponse{
		ID:          article.ID,
		Title:       article.Title,
		Description: article.Description,
		ImageURL:    article.ImageURL,
		CreatedAt:   article.CreatedAt,
		UpdatedAt:   article.UpdatedAt,
	}
}

func bindCreateArticleRequest(ctx *gin.Context) (*CreateArticleRequest, error) {
	image, err := formImage(ctx)
	if err != nil {
		return nil, err
	}

	req := &CreateArticleRequest{
		Title:       ctx.PostForm(formFieldTitle),
		Description: ctx.PostForm(formFieldDescription),
	}
	req.attach(image)
	return req, nil
}

func bindUpdateArticleRequest(ctx *gin.Context) (*UpdateArticleRequest, error) {
	image, err := formImage(ctx)
	if err != nil {
		return nil, err
	}

	req := &UpdateArticleRequest{}
	if title, ok := ctx.GetPostForm(formFieldTitle); ok {
		req.Title = &title
	}
	if description, ok := ctx.GetPostForm(formFieldDescription); ok {
		req.Description = &description
	}
	req.attach(image)
	return req, nil
}

func (r *CreateArticleRequest) attach(image *multipart.FileHeader) {
	if image != nil {
		r.Image, r.ImageName, r.ImageSize = image, image.Filename, image.Size
	}
}

func (r *UpdateArticleRequest) attach(image *multipart.FileHeader) {
	if image != nil {
		r.Image, r.ImageName, r.ImageSize = image, image.Filename, image.Size
	}
}

// formImage returns the uploaded image or nil when the request carries none
func formImage(ctx *gin.Context) (*multipart.FileHeader, error) {
	image, err := ctx.FormFile(formFieldImage)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: invalid form data: %w", articles.ErrValidation, err)
	}
	return image, nil
}

func validateRequest(request any, imageSize int64) error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	var messages []string

	if err := validate.Struct(request); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("%w: %w", articles.ErrValidation, err)
		}
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
	}

	if imageSize > validators.MaxImageSize {
		messages = append(messages, fmt.Sprintf("Field: Image, Tag: max=%d", validators.MaxImageSize))
	}

	if len(messages) > 0 {
		return fmt.Errorf("%w: %v", articles.ErrValidation, messages)
	}
	return nil
}
