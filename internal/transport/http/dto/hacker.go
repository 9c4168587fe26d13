package dto

// RegisterHackerRequest is the body of POST /api/hacker.
type RegisterHackerRequest struct {
	AccountID string `json:"accountId" validate:"required,min=1,max=255"`
	School    string `json:"school" validate:"omitempty,max=255"`
}

// UpdateHackerStatusRequest is the body of PATCH /api/hacker/status/:id.
type UpdateHackerStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Applied Accepted Confirmed Checked-in"`
}

// Hacker is the transport representation of a hacker.
type Hacker struct {
	ID        string `json:"id"`
	AccountID string `json:"accountId"`
	TeamID    string `json:"teamId,omitempty"`
	School    string `json:"school,omitempty"`
	Status    string `json:"status"`
}
