package dto

// ErrorResponse carries a generic error message. Business and
// infrastructure failures share the same shape; detail stays in the logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a simple confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by /login: a signed JWT plus the session id the
// client presents on logout.
type TokenResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"sessionId"`
}
