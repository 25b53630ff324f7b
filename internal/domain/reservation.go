package domain

import "context"

// Flight is the part of a flight a reservation card shows.
type Flight struct {
	AircraftType  string `json:"aircraftType"`
	DepartureName string `json:"departureName"`
	ArrivalName   string `json:"arrivalName"`
	DepartureTime string `json:"departureTime"` // ISO-8601 timestamp
}

// Reservation is one booking owned by the user.
type Reservation struct {
	ID            Ident   `json:"id"`
	Flight        Flight  `json:"flight"`
	SelectedSeats []Ident `json:"selectedSeats"`
}

// ReservationAPI is the contract of the backend this service reads from.
// The access token is forwarded so the backend can authorize the call.
type ReservationAPI interface {
	FetchUser(ctx context.Context, token, userID string) (ProfileLookup, error)
	FetchReservations(ctx context.Context, token, userID string) ([]Reservation, error)
}
