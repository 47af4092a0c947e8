package dto

import (
	"github.com/orghandbook/orghandbook-api/internal/models"
)

// BuildingCreate is the validated input for creating a building. Coordinates
// are pointers so that a legitimate 0.0 still counts as supplied.
type BuildingCreate struct {
	Address   string   `json:"address" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"required"`
}

// BuildingUpdate carries a partial update; nil fields are left untouched.
type BuildingUpdate struct {
	Address   *string  `json:"address"`
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

// Fields returns the sparse column set for the update.
func (u BuildingUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Address != nil {
		fields["address"] = *u.Address
	}
	if u.Longitude != nil {
		fields["longitude"] = *u.Longitude
	}
	if u.Latitude != nil {
		fields["latitude"] = *u.Latitude
	}
	return fields
}

// BuildingDTO is the plain view of a building
type BuildingDTO struct {
	ID        uint64  `json:"id"`
	Address   string  `json:"address"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// BuildingWithRelationsDTO is the building view with its organizations
type BuildingWithRelationsDTO struct {
	BuildingDTO
	Organizations []OrganizationDTO `json:"organizations"`
}

// ToBuildingDTO converts a building model to its plain view
func ToBuildingDTO(building models.Building) BuildingDTO {
	return BuildingDTO{
		ID:        building.ID,
		Address:   building.Address,
		Longitude: building.Longitude,
		Latitude:  building.Latitude,
	}
}

// ToBuildingDTOs converts a slice of building models to plain views
func ToBuildingDTOs(buildings []models.Building) []BuildingDTO {
	dtos := make([]BuildingDTO, len(buildings))
	for i, building := range buildings {
		dtos[i] = ToBuildingDTO(building)
	}
	return dtos
}

// ToBuildingWithRelationsDTO converts a building with loaded organizations
func ToBuildingWithRelationsDTO(building models.Building) BuildingWithRelationsDTO {
	return BuildingWithRelationsDTO{
		BuildingDTO:   ToBuildingDTO(building),
		Organizations: ToOrganizationDTOs(building.Organizations),
	}
}
