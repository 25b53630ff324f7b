package view

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/flightdesk/internal/i18n"
)

const containerID = "my-page"

// Shell is the first paint of the page: the loading message plus an htmx
// trigger that fetches the real content once the page is in the browser.
func Shell(p *i18n.Printer, links Links) g.Node {
	return h.Div(
		h.ID(containerID), h.Class("my-page"),
		hx.Get(links.Content),
		hx.Trigger("load"),
		hx.Swap("outerHTML"),
		h.P(h.Class("loading"), g.Text(p.T(i18n.Loading))),
	)
}

// Loading is the fragment for a view whose data never arrived. It carries no
// trigger, so the page stays as it is.
func Loading(p *i18n.Printer) g.Node {
	return h.Div(
		h.ID(containerID), h.Class("my-page"),
		h.P(h.Class("loading"), g.Text(p.T(i18n.Loading))),
	)
}

// Profile is the fragment for a loaded view.
func Profile(p *i18n.Printer, data Data, links Links) g.Node {
	return h.Div(
		h.ID(containerID), h.Class("my-page"),
		h.H2(g.Text(p.T(i18n.MyPage))),
		h.Form(
			h.Method("post"), h.Action(links.EditProfile),
			h.Button(h.Type("submit"), h.Class("edit-button"), g.Text(p.T(i18n.EditProfile))),
		),
		field(p.T(i18n.Email), data.Email),
		field(p.T(i18n.Name), data.Name),
		field(p.T(i18n.Phone), data.Phone),
		field(p.T(i18n.Birthday), data.Birthday),
		field(p.T(i18n.Address), data.Address),
		h.H3(g.Text(p.T(i18n.Reservations))),
		g.If(len(data.Reservations) == 0,
			h.P(h.Class("empty-reservations"), g.Text(p.T(i18n.NoReservations))),
		),
		g.If(len(data.Reservations) > 0,
			h.Div(h.Class("reservation-list"),
				g.Map(data.Reservations, func(card Card) g.Node {
					return reservationCard(p, card)
				}),
			),
		),
	)
}

func reservationCard(p *i18n.Printer, card Card) g.Node {
	return h.Div(
		h.Class("reservation-card"), g.Attr("data-reservation-id", card.ID),
		h.H4(g.Text(p.T(i18n.ReservationNo, card.ID))),
		field(p.T(i18n.Flight), card.AircraftType),
		field(p.T(i18n.Route), card.Departure+" / "+card.Arrival),
		field(p.T(i18n.DepartureDate), card.DepartureDate),
		field(p.T(i18n.Seats), card.Seats),
	)
}

func field(label, value string) g.Node {
	return h.P(h.Strong(g.Text(label)), g.Text(" "+value))
}
