//go:build unit
// +build unit

package articles

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleValidation(t *testing.T) {
	imageURL := "https://storage.example.com/article/article-0123456789abcdef.png"
	empty := ""

	tests := []struct {
		name    string
		article Article
		wantErr bool
	}{
		{
			name:    "valid without image",
			article: Article{Title: "Hello", Description: "World", CreatedAt: time.Now()},
		},
		{
			name:    "valid with image",
			article: Article{ID: 3, Title: "Hello", Description: "World", ImageURL: &imageURL},
		},
		{
			name:    "missing title",
			article: Article{Description: "World"},
			wantErr: true,
		},
		{
			name:    "title too long",
			article: Article{Title: strings.Repeat("a", 256), Description: "World"},
			wantErr: true,
		},
		{
			name:    "missing description",
			article: Article{Title: "Hello"},
			wantErr: true,
		},
		{
			name:    "empty image url",
			article: Article{Title: "Hello", Description: "World", ImageURL: &empty},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.article.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestArticle_HasImage(t *testing.T) {
	url := "https://cdn.example.com/a.png"
	empty := ""

	assert.False(t, (&Article{}).HasImage())
	assert.False(t, (&Article{ImageURL: &empty}).HasImage())
	assert.True(t, (&Article{ImageURL: &url}).HasImage())
}

func TestNewImageName(t *testing.T) {
	pattern := regexp.MustCompile(`^article-[A-Za-z0-9_-]{16}\.png$`)

	first := NewImageName("Holiday.PNG")
	second := NewImageName("holiday.png")

	assert.Regexp(t, pattern, first)
	assert.Regexp(t, pattern, second)
	assert.NotEqual(t, first, second)
}

func TestNewImageName_NoExtension(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^article-[A-Za-z0-9_-]{16}$`), NewImageName("blob"))
}

func TestNewImageID_UsesEveryPosition(t *testing.T) {
	seen := make([]map[byte]bool, 16)
	for i := range seen {
		seen[i] = map[byte]bool{}
	}

	for n := 0; n < 200; n++ {
		id := NewImageID()
		require.Len(t, id, 16)
		for i := 0; i < len(id); i++ {
			seen[i][id[i]] = true
		}
	}

	// a fixed version nibble would pin one position to a single character
	for i, chars := range seen {
		assert.Greater(t, len(chars), 1, "position %d never varies", i)
	}
}

func TestImageExtension(t *testing.T) {
	assert.Equal(t, "jpeg", ImageExtension("photo.JPEG"))
	assert.Equal(t, "webp", ImageExtension("dir/photo.v2.webp"))
	assert.Equal(t, "", ImageExtension("photo"))
}
