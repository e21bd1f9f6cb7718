// Package seed exposes the bundled seed data: the static property catalog,
// demo users and initial portfolios. Seed users carry plaintext passwords in
// the bundle and are hashed when inserted into the user store.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	catalogentity "estate_backend/internal/feature/catalog/domain/entity"
	portfolioentity "estate_backend/internal/feature/portfolio/domain/entity"
)

//go:embed properties.json
var propertiesJSON []byte

//go:embed users.json
var usersJSON []byte

//go:embed portfolios.json
var portfoliosJSON []byte

// User is a bundled demo account.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Properties returns a fresh copy of the static property catalog.
// Callers own the returned slice; the bundle itself is never mutated.
func Properties() ([]catalogentity.Property, error) {
	var doc struct {
		Properties []catalogentity.Property `json:"properties"`
	}
	if err := json.Unmarshal(propertiesJSON, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse bundled properties: %w", err)
	}
	return doc.Properties, nil
}

// Users returns the bundled demo accounts.
func Users() ([]User, error) {
	var doc struct {
		Users []User `json:"users"`
	}
	if err := json.Unmarshal(usersJSON, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse bundled users: %w", err)
	}
	return doc.Users, nil
}

// Portfolios returns the bundled initial portfolios keyed by user id.
func Portfolios() (map[string]*portfolioentity.Portfolio, error) {
	var doc struct {
		Portfolios map[string]*portfolioentity.Portfolio `json:"portfolios"`
	}
	if err := json.Unmarshal(portfoliosJSON, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse bundled portfolios: %w", err)
	}
	if doc.Portfolios == nil {
		doc.Portfolios = map[string]*portfolioentity.Portfolio{}
	}
	return doc.Portfolios, nil
}
