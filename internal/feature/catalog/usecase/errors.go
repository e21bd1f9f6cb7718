// Package usecase implements the business logic for the catalog feature.
package usecase

import "errors"

var (
	// ErrPropertyNotFound is returned when no property exists with the given id.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrStaticProperty is returned when an edit or delete targets a
	// seed-origin property. Static properties are permanently read-only.
	ErrStaticProperty = errors.New("static property is read-only")

	// ErrInvalidProperty is returned when a create or update carries
	// fields that fail validation.
	ErrInvalidProperty = errors.New("invalid property")
)
