package identity

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nfrund/flightdesk/internal/domain"
)

// ClaimUserID is the claim carrying the user identifier.
const ClaimUserID = "userid"

// Resolver extracts the user identifier from an access token.
//
// Without a secret the token is only decoded, mirroring a browser client that
// trusts the token it was handed by the auth store. With a secret the HMAC
// signature and the registered time claims are verified as well.
type Resolver struct {
	secret []byte
	parser *jwt.Parser
}

// NewResolver creates a Resolver. An empty secret disables verification.
func NewResolver(secret string) *Resolver {
	r := &Resolver{
		parser: jwt.NewParser(
			jwt.WithJSONNumber(),
			jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		),
	}
	if secret != "" {
		r.secret = []byte(secret)
	}
	return r
}

// Verifies reports whether the resolver checks token signatures.
func (r *Resolver) Verifies() bool {
	return r.secret != nil
}

// Resolve returns the user identifier carried by token.
func (r *Resolver) Resolve(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", domain.ErrMissingToken
	}

	claims, err := r.decode(token)
	if err != nil {
		slog.Warn("failed to decode access token", "error", err)
		return "", fmt.Errorf("%w: %v", domain.ErrTokenDecode, err)
	}

	userID, ok := identifier(claims[ClaimUserID])
	if !ok {
		return "", domain.ErrMissingIdentifier
	}
	return userID, nil
}

func (r *Resolver) decode(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if r.secret == nil {
		if _, _, err := r.parser.ParseUnverified(token, claims); err != nil {
			return nil, err
		}
		return claims, nil
	}

	_, err := r.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return r.secret, nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// identifier converts a claim value into an identifier. Values a browser
// would treat as falsy (absent, null, "", 0, false) yield no identifier.
func identifier(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		id = strings.TrimSpace(id)
		return id, id != ""
	case json.Number:
		f, err := id.Float64()
		if err != nil || f == 0 {
			return "", false
		}
		if i, err := id.Int64(); err == nil {
			return strconv.FormatInt(i, 10), true
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true
	case float64:
		if id == 0 {
			return "", false
		}
		return strconv.FormatFloat(id, 'f', -1, 64), true
	default:
		return "", false
	}
}

// Issue signs a token carrying userID with the HS256 method. It is used by the
// developer CLI and by tests; production tokens come from the auth service.
func Issue(secret, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		ClaimUserID: userID,
		"sub":       userID,
		"iat":       jwt.NewNumericDate(now),
	}
	if ttl > 0 {
		claims["exp"] = jwt.NewNumericDate(now.Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
