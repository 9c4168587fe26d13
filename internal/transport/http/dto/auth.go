package dto

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	AccountID string `json:"accountId" validate:"required,min=1,max=255"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}
