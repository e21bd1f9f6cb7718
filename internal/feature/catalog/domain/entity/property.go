// Package entity defines the domain entities for the catalog feature.
package entity

// Kind tells whether a property comes from the bundled seed or was created
// at runtime. Seed-origin properties are permanently read-only for admin
// edit and delete; there is no transition between the two kinds.
type Kind string

const (
	KindStatic  Kind = "static"
	KindDynamic Kind = "dynamic"
)

// Property is an investable asset in the catalog. The relation
// sharePriceMMK * totalShares == currentValueMMK is deliberately not
// enforced; seed data may be inconsistent.
type Property struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Segment         string  `json:"segment"`
	Description     string  `json:"description"`
	Location        string  `json:"location"`
	YearBuilt       int     `json:"yearBuilt"`
	TotalUnits      int     `json:"totalUnits"`
	OccupancyRate   float64 `json:"occupancyRate"`
	CurrentValueMMK float64 `json:"currentValueMMK"`
	SharePriceMMK   float64 `json:"sharePriceMMK"`
	TotalShares     int64   `json:"totalShares"`
	AvailableShares int64   `json:"availableShares"`
	CisOwnershipPct float64 `json:"cisOwnershipPct"`
}
