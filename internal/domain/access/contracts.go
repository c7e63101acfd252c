package access

// TokenVerifier resolves a bearer token to the user id it was issued for.
// Implementations return an error wrapping ErrUnauthenticated for any invalid token.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// TokenIssuer signs tokens for a user id
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}
