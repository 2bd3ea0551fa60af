package models

import "time"

// PortfolioPhoto is a finished-work photo tagged with the services it shows.
// Photos are read-only at this layer; uploads go through the backend directly.
type PortfolioPhoto struct {
	ID            string    `json:"id"`
	Caption       string    `json:"caption"`
	Date          time.Time `json:"date"`
	ServiceTags   []string  `json:"service_tags"`
	ClientID      int64     `json:"client_id"`
	AppointmentID *int64    `json:"appointment_id,omitempty"`
}
