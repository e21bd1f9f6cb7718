// Package dto defines the data transfer objects for the auth feature's
// HTTP transport layer.
package dto

// SignupReq represents the request body for the /signup endpoint.
type SignupReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}
