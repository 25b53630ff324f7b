package mypage

import "github.com/nfrund/flightdesk/internal/domain"

// Phase is where a My Page view is in its lifecycle.
type Phase int

const (
	// PhaseLoading is the initial phase. A view whose retrieval fails or finds
	// no profile stays here.
	PhaseLoading Phase = iota
	// PhaseLoaded means a profile is present.
	PhaseLoaded
	// PhaseRedirecting means the visitor is being sent to the login page.
	PhaseRedirecting
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseRedirecting:
		return "redirecting"
	default:
		return "unknown"
	}
}

// ViewState is the data behind one rendering of the page.
type ViewState struct {
	Phase        Phase
	User         *domain.User
	Reservations []domain.Reservation
}

// Initial returns the state of a freshly opened page.
func Initial() ViewState {
	return ViewState{Phase: PhaseLoading, Reservations: []domain.Reservation{}}
}
