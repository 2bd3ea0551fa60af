package models

import "time"

// AppointmentStatus is owned by the backend; this layer only reads it.
type AppointmentStatus string

const (
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "inProgress"
	StatusFinished   AppointmentStatus = "finished"
)

// AllAppointmentStatuses lists every status the backend can report,
// in the order snapshots are assembled.
var AllAppointmentStatuses = []AppointmentStatus{
	StatusConfirmed,
	StatusInProgress,
	StatusFinished,
}

// Appointment references an existing client and service. Duration is copied
// from the service at creation time and not re-derived if the service later
// changes.
type Appointment struct {
	ID            int64             `json:"id"`
	ClientID      int64             `json:"client_id"`
	ServiceID     int64             `json:"service_id"`
	ScheduledTime time.Time         `json:"scheduled_time"`
	Duration      int               `json:"duration"` // minutes
	Notes         string            `json:"notes"`
	Status        AppointmentStatus `json:"status"`
}

// CreateAppointmentRequest represents the request body for booking an appointment
type CreateAppointmentRequest struct {
	ClientID      int64     `json:"client_id" validate:"required"`
	ServiceID     int64     `json:"service_id" validate:"required"`
	ScheduledTime time.Time `json:"scheduled_time" validate:"required"`
	Duration      int       `json:"duration" validate:"gt=0"`
	Notes         string    `json:"notes"`
}
