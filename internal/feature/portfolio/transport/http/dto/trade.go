// Package dto defines the data transfer objects for the portfolio feature's
// HTTP transport layer.
package dto

// TradeReq represents the request body for buy and sell endpoints.
type TradeReq struct {
	PropertyID string  `json:"propertyId" binding:"required"`
	AmountMMK  float64 `json:"amountMMK" binding:"required,gt=0"`
}

// SimulateReq represents the request body for the market simulation
// endpoint. DeltaPct may be negative; a zero delta is rejected as it would
// be a no-op sweep.
type SimulateReq struct {
	DeltaPct float64 `json:"deltaPct" binding:"required"`
}

// TradeResponse is the boolean success flag the UI consumes.
type TradeResponse struct {
	Success bool `json:"success"`
}
