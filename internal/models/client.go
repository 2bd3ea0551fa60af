package models

// Client is a salon client with their loyalty ledger.
// Clients are created by an explicit add operation and never deleted in-app;
// loyalty points change only through an explicit update.
type Client struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	ContactInfo   string  `json:"contact_info"`
	Preferences   string  `json:"preferences"`
	Allergies     string  `json:"allergies"`
	LoyaltyPoints int64   `json:"loyalty_points"`
	VisitHistory  []int64 `json:"visit_history"` // appointment IDs, oldest first
}

// AddClientRequest represents the request body for adding a client
type AddClientRequest struct {
	Name        string `json:"name" validate:"required"`
	ContactInfo string `json:"contact_info" validate:"required"`
	Preferences string `json:"preferences"`
	Allergies   string `json:"allergies"`
}

// UpdateLoyaltyRequest represents the request body for overwriting a client's points
type UpdateLoyaltyRequest struct {
	Points int64 `json:"points" validate:"gte=0"`
}
