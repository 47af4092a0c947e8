package dto

import (
	"github.com/orghandbook/orghandbook-api/internal/models"
	"github.com/orghandbook/orghandbook-api/internal/repository"
)

// OrganizationCreate is the validated input for creating an organization.
// Phone numbers are created as owned rows; activity ids attach existing
// activities, unknown ids are silently ignored.
type OrganizationCreate struct {
	LegalName    string   `json:"legal_name" binding:"required"`
	BuildingID   uint64   `json:"building_id" binding:"required"`
	PhoneNumbers []string `json:"phone_numbers"`
	ActivityIDs  []uint64 `json:"activity_ids"`
}

// OrganizationUpdate carries a partial update; nil fields are left
// untouched. A non-nil phone number or activity id list replaces the owned
// rows and links wholesale.
type OrganizationUpdate struct {
	LegalName    *string   `json:"legal_name"`
	BuildingID   *uint64   `json:"building_id"`
	PhoneNumbers *[]string `json:"phone_numbers"`
	ActivityIDs  *[]uint64 `json:"activity_ids"`
}

// ToRepositoryUpdate translates the payload into the repository's sparse
// update shape.
func (u OrganizationUpdate) ToRepositoryUpdate() repository.OrganizationUpdate {
	fields := map[string]interface{}{}
	if u.LegalName != nil {
		fields["legal_name"] = *u.LegalName
	}
	if u.BuildingID != nil {
		fields["building_id"] = *u.BuildingID
	}
	return repository.OrganizationUpdate{
		Fields:       fields,
		PhoneNumbers: u.PhoneNumbers,
		ActivityIDs:  u.ActivityIDs,
	}
}

// PhoneNumberDTO is the serialized form of an owned phone number
type PhoneNumberDTO struct {
	ID          uint64 `json:"id"`
	PhoneNumber string `json:"phone_number"`
}

// OrganizationDTO is the plain view of an organization
type OrganizationDTO struct {
	ID         uint64 `json:"id"`
	LegalName  string `json:"legal_name"`
	BuildingID uint64 `json:"building_id"`
}

// OrganizationWithRelationsDTO is the organization view with its building,
// phone numbers and activities
type OrganizationWithRelationsDTO struct {
	OrganizationDTO
	Building     BuildingDTO      `json:"building"`
	PhoneNumbers []PhoneNumberDTO `json:"phone_numbers"`
	Activities   []ActivityDTO    `json:"activities"`
}

// ToOrganizationDTO converts an organization model to its plain view
func ToOrganizationDTO(org models.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:         org.ID,
		LegalName:  org.LegalName,
		BuildingID: org.BuildingID,
	}
}

// ToOrganizationDTOs converts a slice of organization models to plain views
func ToOrganizationDTOs(orgs []models.Organization) []OrganizationDTO {
	dtos := make([]OrganizationDTO, len(orgs))
	for i, org := range orgs {
		dtos[i] = ToOrganizationDTO(org)
	}
	return dtos
}

// ToOrganizationWithRelationsDTO converts an organization with loaded
// relations
func ToOrganizationWithRelationsDTO(org models.Organization) OrganizationWithRelationsDTO {
	phones := make([]PhoneNumberDTO, len(org.PhoneNumbers))
	for i, phone := range org.PhoneNumbers {
		phones[i] = PhoneNumberDTO{
			ID:          phone.ID,
			PhoneNumber: phone.PhoneNumber,
		}
	}

	return OrganizationWithRelationsDTO{
		OrganizationDTO: ToOrganizationDTO(org),
		Building:        ToBuildingDTO(org.Building),
		PhoneNumbers:    phones,
		Activities:      ToActivityDTOs(org.Activities),
	}
}

// ToOrganizationWithRelationsDTOs converts a slice of organizations with
// loaded relations
func ToOrganizationWithRelationsDTOs(orgs []models.Organization) []OrganizationWithRelationsDTO {
	dtos := make([]OrganizationWithRelationsDTO, len(orgs))
	for i, org := range orgs {
		dtos[i] = ToOrganizationWithRelationsDTO(org)
	}
	return dtos
}
