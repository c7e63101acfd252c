package models

import (
	"time"

	"github.com/MGTheTrain/article-service/internal/domain/articles"
)

// ArticleModel is the GORM database model for articles
type ArticleModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"not null;type:varchar(255)"`
	Description string    `gorm:"not null;type:text"`
	ImageURL    *string   `gorm:"column:image_url;type:varchar(2048)"`
	CreatedAt   time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ArticleModel) TableName() string {
	return "articles"
}

// ToDomain converts GORM model to domain entity
func (m *ArticleModel) ToDomain() *articles.Article {
	return &articles.Article{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ArticleModel) FromDomain(a *articles.Article) {
	m.ID = a.ID
	m.Title = a.Title
	m.Description = a.Description
	m.ImageURL = a.ImageURL
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
}
