// Package dto defines the data transfer objects for the catalog feature's
// HTTP transport layer.
package dto

import "estate_backend/internal/feature/catalog/domain/entity"

// PropertyReq carries the fields an admin may submit when creating or
// updating a dynamic property. The id is never part of the body; creates
// generate one and updates take it from the URL.
type PropertyReq struct {
	Name            string  `json:"name" binding:"required"`
	Segment         string  `json:"segment"`
	Description     string  `json:"description"`
	Location        string  `json:"location"`
	YearBuilt       int     `json:"yearBuilt"`
	TotalUnits      int     `json:"totalUnits"`
	OccupancyRate   float64 `json:"occupancyRate"`
	CurrentValueMMK float64 `json:"currentValueMMK" binding:"required,gt=0"`
	SharePriceMMK   float64 `json:"sharePriceMMK" binding:"required,gt=0"`
	TotalShares     int64   `json:"totalShares"`
	AvailableShares int64   `json:"availableShares"`
	CisOwnershipPct float64 `json:"cisOwnershipPct"`
}

// ToEntity converts the request into a catalog entity.
func (r PropertyReq) ToEntity() entity.Property {
	return entity.Property{
		Name:            r.Name,
		Segment:         r.Segment,
		Description:     r.Description,
		Location:        r.Location,
		YearBuilt:       r.YearBuilt,
		TotalUnits:      r.TotalUnits,
		OccupancyRate:   r.OccupancyRate,
		CurrentValueMMK: r.CurrentValueMMK,
		SharePriceMMK:   r.SharePriceMMK,
		TotalShares:     r.TotalShares,
		AvailableShares: r.AvailableShares,
		CisOwnershipPct: r.CisOwnershipPct,
	}
}
