package models

// BookingInput is the public booking submission payload.
type BookingInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Package         string `json:"package"`
	Guests          int    `json:"guests"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	SpecialRequests string `json:"specialRequests"`
}
