package mypage

import (
	"context"

	"github.com/nfrund/flightdesk/internal/domain"
	"github.com/nfrund/flightdesk/internal/middleware"
)

// Loader runs the retrieval sequence for one page view: the profile first,
// then, only if a profile was found, the reservations.
type Loader struct {
	api domain.ReservationAPI
}

// NewLoader creates a Loader reading from api.
func NewLoader(api domain.ReservationAPI) *Loader {
	return &Loader{api: api}
}

// Load fetches the view state for userID. Failures are logged and leave the
// state where it was: a failed profile request keeps the view loading, a
// failed reservations request keeps the profile with no reservations. The
// sequence stops as soon as ctx is done.
func (l *Loader) Load(ctx context.Context, token, userID string) ViewState {
	log := middleware.FromContext(ctx).With("user_id", userID)
	state := Initial()

	lookup, err := l.api.FetchUser(ctx, token, userID)
	if err != nil {
		log.Error("failed to load user profile", "error", err)
		return state
	}
	user, ok := lookup.User()
	if !ok {
		log.Info("backend returned no profile")
		return state
	}
	state.Phase = PhaseLoaded
	state.User = &user

	if err := ctx.Err(); err != nil {
		log.Debug("page view ended before reservations were requested", "error", err)
		return state
	}

	reservations, err := l.api.FetchReservations(ctx, token, userID)
	if err != nil {
		log.Error("failed to load reservations", "error", err)
		return state
	}
	if reservations != nil {
		state.Reservations = reservations
	}
	return state
}
