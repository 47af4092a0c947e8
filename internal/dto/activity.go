package dto

import (
	"github.com/orghandbook/orghandbook-api/internal/models"
)

// ActivityCreate is the validated input for creating an activity. Level
// defaults to 0 and is stored as supplied.
type ActivityCreate struct {
	Name     string  `json:"name" binding:"required"`
	ParentID *uint64 `json:"parent_id"`
	Level    int     `json:"level"`
}

// ActivityUpdate carries a partial update; nil fields are left untouched.
type ActivityUpdate struct {
	Name     *string `json:"name"`
	ParentID *uint64 `json:"parent_id"`
	Level    *int    `json:"level"`
}

// Fields returns the sparse column set for the update.
func (u ActivityUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.ParentID != nil {
		fields["parent_id"] = *u.ParentID
	}
	if u.Level != nil {
		fields["level"] = *u.Level
	}
	return fields
}

// ActivityDTO is the plain view of an activity
type ActivityDTO struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	ParentID *uint64 `json:"parent_id"`
	Level    int     `json:"level"`
}

// ActivityWithRelationsDTO is the activity view with its parent, one level
// of children and tagged organizations
type ActivityWithRelationsDTO struct {
	ActivityDTO
	Parent        *ActivityDTO      `json:"parent"`
	Children      []ActivityDTO     `json:"children"`
	Organizations []OrganizationDTO `json:"organizations"`
}

// ToActivityDTO converts an activity model to its plain view
func ToActivityDTO(activity models.Activity) ActivityDTO {
	return ActivityDTO{
		ID:       activity.ID,
		Name:     activity.Name,
		ParentID: activity.ParentID,
		Level:    activity.Level,
	}
}

// ToActivityDTOs converts a slice of activity models to plain views
func ToActivityDTOs(activities []models.Activity) []ActivityDTO {
	dtos := make([]ActivityDTO, len(activities))
	for i, activity := range activities {
		dtos[i] = ToActivityDTO(activity)
	}
	return dtos
}

// ToActivityWithRelationsDTO converts an activity with loaded relations
func ToActivityWithRelationsDTO(activity models.Activity) ActivityWithRelationsDTO {
	var parent *ActivityDTO
	if activity.Parent != nil {
		p := ToActivityDTO(*activity.Parent)
		parent = &p
	}

	return ActivityWithRelationsDTO{
		ActivityDTO:   ToActivityDTO(activity),
		Parent:        parent,
		Children:      ToActivityDTOs(activity.Children),
		Organizations: ToOrganizationDTOs(activity.Organizations),
	}
}
