package repository

import (
	"errors"

	"github.com/orghandbook/orghandbook-api/internal/models"
	"gorm.io/gorm"
)

// ErrBuildingReferenced is returned when a building cannot be deleted because
// organizations still reference it.
var ErrBuildingReferenced = errors.New("building repository: building is referenced by existing organizations")

// GormBuildingRepository is a GORM implementation of BuildingRepository
type GormBuildingRepository struct {
	db *gorm.DB
}

// NewBuildingRepository creates a new BuildingRepository
func NewBuildingRepository(db *gorm.DB) BuildingRepository {
	return &GormBuildingRepository{db: db}
}

// Get finds a building by ID
func (r *GormBuildingRepository) Get(id uint64) (*models.Building, error) {
	var building models.Building
	if err := r.db.First(&building, id).Error; err != nil {
		return nil, err
	}
	return &building, nil
}

// GetWithRelations finds a building by ID with its organizations loaded
func (r *GormBuildingRepository) GetWithRelations(id uint64) (*models.Building, error) {
	var building models.Building
	if err := r.db.Preload("Organizations").First(&building, id).Error; err != nil {
		return nil, err
	}
	return &building, nil
}

// GetAll returns all buildings ordered by primary key
func (r *GormBuildingRepository) GetAll() ([]models.Building, error) {
	var buildings []models.Building
	if err := r.db.Order("id").Find(&buildings).Error; err != nil {
		return nil, err
	}
	return buildings, nil
}

// Create inserts a building and re-reads the persisted row
func (r *GormBuildingRepository) Create(building *models.Building) error {
	if err := r.db.Create(building).Error; err != nil {
		return err
	}
	return r.db.First(building, building.ID).Error
}

// Update writes only the supplied fields
func (r *GormBuildingRepository) Update(id uint64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.Building{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a building unless organizations still reference it
func (r *GormBuildingRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var dependents int64
		if err := tx.Model(&models.Organization{}).Where("building_id = ?", id).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return ErrBuildingReferenced
		}

		return tx.Delete(&models.Building{}, id).Error
	})
}
