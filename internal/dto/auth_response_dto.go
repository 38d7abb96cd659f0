package dto

// DevTokenRequest asks for a signed session token for a user id.
// Only served outside production.
type DevTokenRequest struct {
	UserID string `json:"userID" binding:"required,max=128"`
}

// LoginResponse represents the response for a successful token issue.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
}
