package repository

import (
	"strings"

	"github.com/orghandbook/orghandbook-api/internal/models"
	"gorm.io/gorm"
)

// descendantActivitiesQuery expands an activity id into the id set of the
// activity plus its descendants. The recursive step only follows into
// children whose level is below 3, which bounds the traversal depth.
const descendantActivitiesQuery = `
WITH RECURSIVE descendant_activities(id) AS (
	SELECT id FROM activities WHERE id = ?
	UNION ALL
	SELECT a.id
	FROM activities a
	JOIN descendant_activities d ON a.parent_id = d.id
	WHERE a.level < 3
)
SELECT id FROM descendant_activities`

// GormOrganizationRepository is a GORM implementation of OrganizationRepository
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

func (r *GormOrganizationRepository) withRelations() *gorm.DB {
	return r.db.
		Preload("Building").
		Preload("PhoneNumbers").
		Preload("Activities")
}

// Get finds an organization by ID
func (r *GormOrganizationRepository) Get(id uint64) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.First(&org, id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// GetWithRelations finds an organization by ID with building, phone numbers
// and activities loaded
func (r *GormOrganizationRepository) GetWithRelations(id uint64) (*models.Organization, error) {
	var org models.Organization
	if err := r.withRelations().First(&org, id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// GetAll returns all organizations ordered by primary key
func (r *GormOrganizationRepository) GetAll() ([]models.Organization, error) {
	var orgs []models.Organization
	if err := r.db.Order("id").Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// Create inserts the organization, its phone numbers and its activity links
// in one transaction. Activity ids that do not exist are silently dropped.
func (r *GormOrganizationRepository) Create(org *models.Organization, phoneNumbers []string, activityIDs []uint64) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}

		if len(phoneNumbers) > 0 {
			phones := make([]models.PhoneNumber, len(phoneNumbers))
			for i, number := range phoneNumbers {
				phones[i] = models.PhoneNumber{
					PhoneNumber:    number,
					OrganizationID: org.ID,
				}
			}
			if err := tx.Create(&phones).Error; err != nil {
				return err
			}
		}

		if len(activityIDs) > 0 {
			var activities []models.Activity
			if err := tx.Where("id IN ?", activityIDs).Find(&activities).Error; err != nil {
				return err
			}
			if len(activities) > 0 {
				if err := tx.Model(org).Association("Activities").Append(&activities); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	return r.db.First(org, org.ID).Error
}

// Update applies a sparse update. Scalar fields are written individually;
// a supplied phone number or activity id list replaces the owned rows.
func (r *GormOrganizationRepository) Update(id uint64, upd OrganizationUpdate) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(upd.Fields) > 0 {
			if err := tx.Model(&models.Organization{}).Where("id = ?", id).Updates(upd.Fields).Error; err != nil {
				return err
			}
		}

		if upd.PhoneNumbers != nil {
			if err := tx.Where("organization_id = ?", id).Delete(&models.PhoneNumber{}).Error; err != nil {
				return err
			}
			if len(*upd.PhoneNumbers) > 0 {
				phones := make([]models.PhoneNumber, len(*upd.PhoneNumbers))
				for i, number := range *upd.PhoneNumbers {
					phones[i] = models.PhoneNumber{
						PhoneNumber:    number,
						OrganizationID: id,
					}
				}
				if err := tx.Create(&phones).Error; err != nil {
					return err
				}
			}
		}

		if upd.ActivityIDs != nil {
			if err := tx.Exec("DELETE FROM organization_activity WHERE organization_id = ?", id).Error; err != nil {
				return err
			}
			if len(*upd.ActivityIDs) > 0 {
				var activities []models.Activity
				if err := tx.Where("id IN ?", *upd.ActivityIDs).Find(&activities).Error; err != nil {
					return err
				}
				if len(activities) > 0 {
					org := models.Organization{ID: id}
					if err := tx.Model(&org).Association("Activities").Append(&activities); err != nil {
						return err
					}
				}
			}
		}

		return nil
	})
}

// Delete removes the organization together with its owned phone numbers and
// its activity links
func (r *GormOrganizationRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", id).Delete(&models.PhoneNumber{}).Error; err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM organization_activity WHERE organization_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Organization{}, id).Error
	})
}

// GetByBuilding returns organizations hosted in the given building
func (r *GormOrganizationRepository) GetByBuilding(buildingID uint64) ([]models.Organization, error) {
	var orgs []models.Organization
	if err := r.withRelations().
		Where("building_id = ?", buildingID).
		Order("id").
		Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// GetByActivity returns organizations tagged with the activity or any of its
// descendants. The membership subquery deduplicates by organization id.
func (r *GormOrganizationRepository) GetByActivity(activityID uint64) ([]models.Organization, error) {
	var activityIDs []uint64
	if err := r.db.Raw(descendantActivitiesQuery, activityID).Scan(&activityIDs).Error; err != nil {
		return nil, err
	}
	if len(activityIDs) == 0 {
		return []models.Organization{}, nil
	}

	var orgs []models.Organization
	if err := r.withRelations().
		Where("id IN (SELECT organization_id FROM organization_activity WHERE activity_id IN ?)", activityIDs).
		Order("id").
		Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// SearchByName returns organizations whose legal name contains the given
// substring, case-insensitively
func (r *GormOrganizationRepository) SearchByName(name string) ([]models.Organization, error) {
	var orgs []models.Organization
	pattern := "%" + strings.ToLower(name) + "%"
	if err := r.withRelations().
		Where("LOWER(legal_name) LIKE ?", pattern).
		Order("id").
		Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// GetInRadius returns organizations whose building lies within radiusKM
// kilometers of the given point. The great-circle distance is computed in
// application code so that the filter behaves identically on engines
// without trigonometric SQL functions.
func (r *GormOrganizationRepository) GetInRadius(lat, lon, radiusKM float64) ([]models.Organization, error) {
	var orgs []models.Organization
	if err := r.withRelations().Order("id").Find(&orgs).Error; err != nil {
		return nil, err
	}

	inRadius := make([]models.Organization, 0, len(orgs))
	for _, org := range orgs {
		distance := greatCircleKM(lat, lon, org.Building.Latitude, org.Building.Longitude)
		if distance <= radiusKM {
			inRadius = append(inRadius, org)
		}
	}
	return inRadius, nil
}

// GetInRectangularArea returns organizations whose building lies inside the
// given bounding box, boundaries included
func (r *GormOrganizationRepository) GetInRectangularArea(minLat, maxLat, minLon, maxLon float64) ([]models.Organization, error) {
	buildings := r.db.Model(&models.Building{}).
		Select("id").
		Where("latitude BETWEEN ? AND ?", minLat, maxLat).
		Where("longitude BETWEEN ? AND ?", minLon, maxLon)

	var orgs []models.Organization
	if err := r.withRelations().
		Where("building_id IN (?)", buildings).
		Order("id").
		Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}
