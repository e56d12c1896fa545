package models

// TokenRequest represents the JSON body for token issuance
// swagger:model TokenRequest
type TokenRequest struct {
	// Username
	// required: true
	// example: admin
	Username string `json:"username"`

	// Password
	// required: true
	// example: password
	Password string `json:"password"`
}

// TokenResponse represents an issued access token
// swagger:model TokenResponse
type TokenResponse struct {
	// JWT token
	// example: JWT_TOKEN
	Token string `json:"token"`
}
