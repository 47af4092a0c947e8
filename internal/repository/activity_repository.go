package repository

import (
	"github.com/orghandbook/orghandbook-api/internal/models"
	"gorm.io/gorm"
)

// GormActivityRepository is a GORM implementation of ActivityRepository
type GormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &GormActivityRepository{db: db}
}

// Get finds an activity by ID
func (r *GormActivityRepository) Get(id uint64) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.First(&activity, id).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

// GetWithRelations finds an activity by ID with parent, children and
// organizations loaded
func (r *GormActivityRepository) GetWithRelations(id uint64) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.
		Preload("Parent").
		Preload("Children").
		Preload("Organizations").
		First(&activity, id).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

// GetAll returns all activities ordered by primary key
func (r *GormActivityRepository) GetAll() ([]models.Activity, error) {
	var activities []models.Activity
	if err := r.db.Order("id").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

// Create inserts an activity and re-reads the persisted row
func (r *GormActivityRepository) Create(activity *models.Activity) error {
	if err := r.db.Create(activity).Error; err != nil {
		return err
	}
	return r.db.First(activity, activity.ID).Error
}

// Update writes only the supplied fields
func (r *GormActivityRepository) Update(id uint64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.Activity{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes an activity. Children keep their parent_id and become
// orphaned; they are not reparented or cascaded.
func (r *GormActivityRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Activity{}, id).Error
}

// GetTree returns one level of the tree: the direct children of parentID,
// or all root activities when parentID is nil.
func (r *GormActivityRepository) GetTree(parentID *uint64) ([]models.Activity, error) {
	var activities []models.Activity
	query := r.db.Order("id")
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}
	if err := query.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}
