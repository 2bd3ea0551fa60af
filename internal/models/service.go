package models

// Service is a catalog entry. Duration and price are fixed at creation;
// only the active flag is toggled afterwards. Inactive services are
// excluded from booking views.
type Service struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"` // minutes
	Price       float64 `json:"price"`
	Active      bool    `json:"active"`
}

// AddServiceRequest represents the request body for adding a service
type AddServiceRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" validate:"gt=0"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// SetServiceStatusRequest represents the request body for toggling the active flag
type SetServiceStatusRequest struct {
	Active bool `json:"active"`
}
