//go:build unit
// +build unit

package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowList_Authorize(t *testing.T) {
	list := NewAllowList([]int64{1, 42, 42})

	admin := int64(42)
	stranger := int64(7)

	tests := []struct {
		name    string
		userID  *int64
		wantErr error
	}{
		{"admin", &admin, nil},
		{"non admin", &stranger, ErrForbidden},
		{"anonymous", nil, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := list.Authorize(tt.userID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	assert.Equal(t, 2, list.Len())
}

func TestAllowList_Empty(t *testing.T) {
	list := NewAllowList(nil)
	id := int64(1)

	assert.False(t, list.Contains(id))
	assert.ErrorIs(t, list.Authorize(&id), ErrForbidden)
}
