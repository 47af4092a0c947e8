package repository

import (
	"testing"

	"github.com/orghandbook/orghandbook-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Building{},
		&models.Activity{},
		&models.Organization{},
		&models.PhoneNumber{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func createTestBuilding(t *testing.T, db *gorm.DB, address string, lat, lon float64) *models.Building {
	t.Helper()

	building := &models.Building{
		Address:   address,
		Latitude:  lat,
		Longitude: lon,
	}
	require.NoError(t, db.Create(building).Error)
	return building
}

func createTestActivity(t *testing.T, db *gorm.DB, name string, parentID *uint64, level int) *models.Activity {
	t.Helper()

	activity := &models.Activity{
		Name:     name,
		ParentID: parentID,
		Level:    level,
	}
	require.NoError(t, db.Create(activity).Error)
	return activity
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}
