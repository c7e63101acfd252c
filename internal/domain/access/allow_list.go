package access

import (
	"errors"

	"github.com/samber/lo"
)

var (
	// ErrForbidden is returned when the caller is anonymous or not an admin
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthenticated is returned when the presented credentials cannot be verified
	ErrUnauthenticated = errors.New("unauthenticated")
)

// AllowList is the immutable set of user ids allowed to mutate articles
type AllowList struct {
	admins map[int64]struct{}
}

// NewAllowList builds an allow list from ids. Duplicates collapse.
func NewAllowList(ids []int64) *AllowList {
	return &AllowList{admins: lo.Keyify(ids)}
}

// Contains reports whether userID is an admin
func (l *AllowList) Contains(userID int64) bool {
	_, ok := l.admins[userID]
	return ok
}

// Authorize returns ErrForbidden unless userID is present and listed
func (l *AllowList) Authorize(userID *int64) error {
	if userID == nil || !l.Contains(*userID) {
		return ErrForbidden
	}
	return nil
}

// Len returns the number of distinct admins
func (l *AllowList) Len() int {
	return len(l.admins)
}
