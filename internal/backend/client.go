package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nfrund/flightdesk/internal/domain"
)

// maxBodyBytes caps how much of a backend response is read.
const maxBodyBytes = 4 << 20

// Client talks to the reservation backend's REST API.
type Client struct {
	baseURL      *url.URL
	http         *http.Client
	users        *contract
	reservations *contract
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient creates a Client for the API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api base url %q must be absolute", baseURL)
	}

	users, err := newContract("user", userSchema)
	if err != nil {
		return nil, err
	}
	reservations, err := newContract("reservations", reservationsSchema)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:      u,
		http:         &http.Client{Timeout: timeout},
		users:        users,
		reservations: reservations,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchUser requests the profile of userID and normalizes the answer: the
// endpoint returns either an object or a one-element array.
func (c *Client) FetchUser(ctx context.Context, token, userID string) (domain.ProfileLookup, error) {
	body, err := c.get(ctx, token, c.baseURL.JoinPath("api", "users", "id", userID))
	if err != nil {
		return domain.NotFound(), err
	}
	if len(body) == 0 {
		return domain.NotFound(), nil
	}
	if err := c.users.check(body); err != nil {
		return domain.NotFound(), fmt.Errorf("%w: %v", domain.ErrRetrieval, err)
	}

	lookup, err := normalizeUser(body)
	if err != nil {
		return domain.NotFound(), fmt.Errorf("%w: decode user: %v", domain.ErrRetrieval, err)
	}
	return lookup, nil
}

// FetchReservations lists the reservations owned by userID in the order the
// backend returns them.
func (c *Client) FetchReservations(ctx context.Context, token, userID string) ([]domain.Reservation, error) {
	u := c.baseURL.JoinPath("api", "reservations")
	u.RawQuery = url.Values{"userId": {userID}}.Encode()

	body, err := c.get(ctx, token, u)
	if err != nil {
		return nil, err
	}
	reservations := []domain.Reservation{}
	if len(body) == 0 {
		return reservations, nil
	}
	if err := c.reservations.check(body); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRetrieval, err)
	}
	if err := json.Unmarshal(body, &reservations); err != nil {
		return nil, fmt.Errorf("%w: decode reservations: %v", domain.ErrRetrieval, err)
	}
	return reservations, nil
}

func (c *Client) get(ctx context.Context, token string, u *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", domain.ErrRetrieval, err)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", domain.ErrRetrieval, u.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrRetrieval, u.Path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: unexpected status %d", domain.ErrRetrieval, u.Path, resp.StatusCode)
	}
	return bytes.TrimSpace(body), nil
}

func normalizeUser(body []byte) (domain.ProfileLookup, error) {
	if bytes.Equal(body, []byte("null")) {
		return domain.NotFound(), nil
	}
	if body[0] == '[' {
		var users []*domain.User
		if err := json.Unmarshal(body, &users); err != nil {
			return domain.NotFound(), err
		}
		if len(users) == 0 || users[0] == nil {
			return domain.NotFound(), nil
		}
		return domain.Found(*users[0]), nil
	}

	var u domain.User
	if err := json.Unmarshal(body, &u); err != nil {
		return domain.NotFound(), err
	}
	return domain.Found(u), nil
}
