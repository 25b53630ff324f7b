package domain

import "errors"

// Sentinel errors for the domain layer. The first three all mean the visitor
// is unauthenticated and must be sent to the login page; ErrRetrieval covers
// any failure while talking to the backend API.
var (
	ErrMissingToken      = errors.New("access token is missing")
	ErrTokenDecode       = errors.New("access token could not be decoded")
	ErrMissingIdentifier = errors.New("access token carries no user identifier")
	ErrRetrieval         = errors.New("backend retrieval failed")
)

// IsUnauthenticated reports whether err means the visitor must log in again.
func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrTokenDecode) ||
		errors.Is(err, ErrMissingIdentifier)
}
