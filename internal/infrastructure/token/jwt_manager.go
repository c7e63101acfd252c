package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MGTheTrain/article-service/internal/domain/access"
	"github.com/MGTheTrain/article-service/internal/pkg/config"
)

// JWTManager issues and verifies HS256 bearer tokens carrying the user id in the subject claim
type JWTManager struct {
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager creates a manager from validated auth settings
func NewJWTManager(settings *config.AuthSettings) (*JWTManager, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &JWTManager{
		key:    []byte(settings.AppKey),
		issuer: settings.Issuer,
		ttl:    settings.TokenTTL,
		now:    time.Now,
	}, nil
}

// Issue signs a token for userID valid for the configured TTL
func (m *JWTManager) Issue(userID int64) (string, error) {
	return m.IssueWithTTL(userID, m.ttl)
}

// IssueWithTTL signs a token for userID valid for ttl
func (m *JWTManager) IssueWithTTL(userID int64, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		Issuer:    m.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, issuer and lifetime and returns the user id from the subject claim.
// Every failure wraps access.ErrUnauthenticated.
func (m *JWTManager) Verify(tokenString string) (int64, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return m.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, fmt.Errorf("%w: token expired", access.ErrUnauthenticated)
		}
		return 0, fmt.Errorf("%w: %w", access.ErrUnauthenticated, err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid subject %q", access.ErrUnauthenticated, claims.Subject)
	}
	return userID, nil
}

var (
	_ access.TokenVerifier = (*JWTManager)(nil)
	_ access.TokenIssuer   = (*JWTManager)(nil)
)
