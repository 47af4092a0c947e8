package repository

import (
	"github.com/orghandbook/orghandbook-api/internal/models"
)

// BuildingRepository defines the interface for building data access
type BuildingRepository interface {
	// Get finds a building by ID without loading relations
	Get(id uint64) (*models.Building, error)

	// GetWithRelations finds a building by ID with its organizations loaded
	GetWithRelations(id uint64) (*models.Building, error)

	// GetAll returns all buildings ordered by primary key
	GetAll() ([]models.Building, error)

	// Create inserts a building and re-reads the persisted row
	Create(building *models.Building) error

	// Update writes only the supplied fields; missing ids are not an error
	Update(id uint64, fields map[string]interface{}) error

	// Delete removes a building; no-op when the id does not exist,
	// ErrBuildingReferenced when organizations still point at it
	Delete(id uint64) error
}

// ActivityRepository defines the interface for activity data access
type ActivityRepository interface {
	// Get finds an activity by ID without loading relations
	Get(id uint64) (*models.Activity, error)

	// GetWithRelations finds an activity by ID with parent, children and
	// organizations loaded (children one level deep)
	GetWithRelations(id uint64) (*models.Activity, error)

	// GetAll returns all activities ordered by primary key
	GetAll() ([]models.Activity, error)

	// Create inserts an activity and re-reads the persisted row
	Create(activity *models.Activity) error

	// Update writes only the supplied fields; missing ids are not an error
	Update(id uint64, fields map[string]interface{}) error

	// Delete removes an activity; children are left in place
	Delete(id uint64) error

	// GetTree returns the direct children of parentID, or the root
	// activities when parentID is nil. One level only.
	GetTree(parentID *uint64) ([]models.Activity, error)
}

// OrganizationUpdate holds the sparse field set for an organization update.
// Fields carries scalar columns; PhoneNumbers and ActivityIDs, when non-nil,
// replace the owned phone rows and activity links wholesale.
type OrganizationUpdate struct {
	Fields       map[string]interface{}
	PhoneNumbers *[]string
	ActivityIDs  *[]uint64
}

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	// Get finds an organization by ID without loading relations
	Get(id uint64) (*models.Organization, error)

	// GetWithRelations finds an organization by ID with building, phone
	// numbers and activities loaded
	GetWithRelations(id uint64) (*models.Organization, error)

	// GetAll returns all organizations ordered by primary key
	GetAll() ([]models.Organization, error)

	// Create inserts the organization, its phone numbers and its activity
	// links in one transaction. Activity ids that do not exist are
	// silently dropped.
	Create(org *models.Organization, phoneNumbers []string, activityIDs []uint64) error

	// Update applies a sparse update; missing ids are not an error
	Update(id uint64, upd OrganizationUpdate) error

	// Delete removes the organization together with its phone numbers and
	// activity links; no-op when the id does not exist
	Delete(id uint64) error

	// GetByBuilding returns organizations hosted in the given building,
	// relations loaded
	GetByBuilding(buildingID uint64) ([]models.Organization, error)

	// GetByActivity returns organizations tagged with the activity or any
	// of its descendants, deduplicated by organization id
	GetByActivity(activityID uint64) ([]models.Organization, error)

	// SearchByName returns organizations whose legal name contains the
	// given substring, case-insensitively
	SearchByName(name string) ([]models.Organization, error)

	// GetInRadius returns organizations whose building lies within
	// radiusKM kilometers of the given point (inclusive boundary)
	GetInRadius(lat, lon, radiusKM float64) ([]models.Organization, error)

	// GetInRectangularArea returns organizations whose building lies
	// inside the given bounding box (inclusive)
	GetInRectangularArea(minLat, maxLat, minLon, maxLon float64) ([]models.Organization, error)
}
