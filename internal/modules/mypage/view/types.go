package view

// Data is the View Model for a loaded My Page. Every field is already
// formatted for display.
type Data struct {
	Email        string
	Name         string
	Phone        string
	Birthday     string
	Address      string
	Reservations []Card
}

// Card is one reservation as shown in the reservation list.
type Card struct {
	ID            string
	AircraftType  string
	Departure     string
	Arrival       string
	DepartureDate string
	Seats         string
}

// Links are the URLs the page points at.
type Links struct {
	Content     string // fragment endpoint the loading shell requests
	EditProfile string // form action of the edit button
}
