package articles

import (
	"context"
	"io"
	"mime/multipart"
)

// CreateInput carries the fields of a new article. Image is optional.
type CreateInput struct {
	Title       string
	Description string
	Image       *multipart.FileHeader
}

// UpdateInput carries a partial update. Nil fields keep the stored value.
type UpdateInput struct {
	Title       *string
	Description *string
	Image       *multipart.FileHeader
}

// ArticleManagementService defines the mutating article operations.
type ArticleManagementService interface {
	// Create uploads the optional image and stores a new article referencing it.
	Create(ctx context.Context, input *CreateInput) (*Article, error)

	// Update overwrites the supplied fields of an article, replacing its image when a new one is given.
	Update(ctx context.Context, articleID int64, input *UpdateInput) (*Article, error)

	// DeleteByID removes the article image from storage and then the article itself.
	DeleteByID(ctx context.Context, articleID int64) error
}

// ArticleQueryService defines the read only article operations.
type ArticleQueryService interface {
	// List returns every article ordered by creation time ascending.
	List(ctx context.Context) ([]*Article, error)

	// GetByID returns a single article or ErrNotFound.
	GetByID(ctx context.Context, articleID int64) (*Article, error)
}

// ArticleRepository defines the interface for Article-related operations
type ArticleRepository interface {
	// Create adds a new Article to the database and sets its ID
	Create(ctx context.Context, article *Article) error
	// List lists all Articles ordered by creation time
	List(ctx context.Context) ([]*Article, error)
	// GetByID retrieves an Article from the database by ID
	GetByID(ctx context.Context, articleID int64) (*Article, error)
	// Update saves every field of an existing Article
	Update(ctx context.Context, article *Article) error
	// DeleteByID deletes an Article in the database by ID
	DeleteByID(ctx context.Context, articleID int64) error
}

// ImageConnector is an interface for interacting with an object store holding article images
type ImageConnector interface {
	// Upload writes r as namespace/name and returns the public URL of the stored object.
	Upload(ctx context.Context, namespace, name string, r io.Reader, contentType string) (string, error)

	// Delete removes the object behind imageURL from namespace.
	Delete(ctx context.Context, namespace, imageURL string) error
}

// ImageCache is a local copy of remote images that must be invalidated on change
type ImageCache interface {
	// Exists reports whether a cached copy of imageURL is present in namespace.
	Exists(namespace, imageURL string) bool

	// Remove deletes the cached copy of imageURL.
	Remove(namespace, imageURL string) error
}
