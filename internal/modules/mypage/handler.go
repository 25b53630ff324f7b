package mypage

import (
	"net/http"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/nfrund/flightdesk/internal/i18n"
	"github.com/nfrund/flightdesk/internal/middleware"
	"github.com/nfrund/flightdesk/internal/modules/mypage/view"
	gview "github.com/nfrund/flightdesk/internal/view"
	"github.com/nfrund/flightdesk/web/src/templates/layouts"
)

// Handler serves My Page.
type Handler struct {
	loader          *Loader
	loginPath       string
	editProfilePath string
	links           view.Links
}

// NewHandler creates a Handler for routes mounted under basePath.
func NewHandler(loader *Loader, basePath, loginPath, editProfilePath string) *Handler {
	return &Handler{
		loader:          loader,
		loginPath:       loginPath,
		editProfilePath: editProfilePath,
		links: view.Links{
			Content:     basePath + "/content",
			EditProfile: basePath + "/edit",
		},
	}
}

// Get renders the page shell in the loading phase. The browser then asks
// Content for the data.
func (h *Handler) Get(c echo.Context) error {
	p := printer(c)
	pageContent := gview.AdaptGomponentToTempl(view.Shell(p, h.links))
	finalComponent := layouts.Base(p.T(i18n.MyPage), p.Lang(), pageContent)
	return c.Render(http.StatusOK, "", finalComponent)
}

// Content runs the retrieval sequence for the visitor and renders the
// resulting fragment.
func (h *Handler) Content(c echo.Context) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return middleware.Navigate(c, h.loginPath)
	}

	ctx := c.Request().Context()
	state := h.loader.Load(ctx, id.Token, id.UserID)
	if ctx.Err() != nil {
		// The visitor left; nobody is there to render for.
		return nil
	}
	return c.Render(http.StatusOK, "", Fragment(printer(c), state, h.links))
}

// EditProfile navigates to the profile-editing page.
func (h *Handler) EditProfile(c echo.Context) error {
	return middleware.Navigate(c, h.editProfilePath)
}

// Fragment renders state. Anything but a loaded view shows the loading message.
func Fragment(p *i18n.Printer, state ViewState, links view.Links) g.Node {
	if state.Phase != PhaseLoaded || state.User == nil {
		return view.Loading(p)
	}
	return view.Profile(p, NewData(p, state), links)
}

// NewData formats a loaded state for display.
func NewData(p *i18n.Printer, state ViewState) view.Data {
	u := state.User

	birthday := p.T(i18n.NotAvailable)
	if u.Birthday != "" {
		birthday = FormatBirthday(u.Birthday)
	}

	cards := make([]view.Card, len(state.Reservations))
	for i, r := range state.Reservations {
		cards[i] = view.Card{
			ID:            r.ID.String(),
			AircraftType:  r.Flight.AircraftType,
			Departure:     r.Flight.DepartureName,
			Arrival:       r.Flight.ArrivalName,
			DepartureDate: DepartureDate(r.Flight.DepartureTime),
			Seats:         JoinSeats(r.SelectedSeats),
		}
	}

	return view.Data{
		Email:        u.Email,
		Name:         u.UserFirstName + " " + u.UserLastName,
		Phone:        FormatPhone(u.Phone),
		Birthday:     birthday,
		Address:      u.Address,
		Reservations: cards,
	}
}

func printer(c echo.Context) *i18n.Printer {
	return i18n.For(c.Request().Header.Get("Accept-Language"))
}
