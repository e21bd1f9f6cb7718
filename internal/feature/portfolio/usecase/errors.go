// Package usecase implements the business logic for the portfolio feature.
package usecase

import "errors"

// Validation failures. At the transport boundary these collapse to a plain
// "success: false"; the distinction only exists for logs and tests.
var (
	// ErrInvalidAmount is returned when a trade amount is not positive or
	// buys less than one whole share.
	ErrInvalidAmount = errors.New("invalid trade amount")

	// ErrInsufficientCash is returned when a buy exceeds the cash balance.
	ErrInsufficientCash = errors.New("insufficient cash")

	// ErrInsufficientShares is returned when a sell exceeds the holding value.
	ErrInsufficientShares = errors.New("insufficient shares")

	// ErrHoldingNotFound is returned when a sell targets a property the
	// portfolio has no position in.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrPortfolioNotFound is returned by repositories when no portfolio
	// exists for a user id.
	ErrPortfolioNotFound = errors.New("portfolio not found")

	// ErrPropertyNotFound is returned when a trade names an unknown property.
	ErrPropertyNotFound = errors.New("property not found")
)

// IsValidationError reports whether err is a business-rule violation rather
// than an infrastructure failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInsufficientCash) ||
		errors.Is(err, ErrInsufficientShares) ||
		errors.Is(err, ErrHoldingNotFound) ||
		errors.Is(err, ErrPortfolioNotFound) ||
		errors.Is(err, ErrPropertyNotFound)
}
