package dto

// LoginReq represents the request body for the /login endpoint.
// It validates required fields and mail format.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LogoutReq represents the request body for the /logout endpoint.
type LogoutReq struct {
	SessionID string `json:"sessionId" binding:"required"`
}
