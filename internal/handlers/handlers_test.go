package handlers

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/orghandbook/orghandbook-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHandlerTestDB(t *testing.T) *gorm.DB {
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

func handlerTestContext(method, url string, body []byte, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = params

	return c, w
}

func idParam(name string, value string) gin.Params {
	return gin.Params{{Key: name, Value: value}}
}

func seedBuilding(t *testing.T, db *gorm.DB, address string, lat, lon float64) *models.Building {
	t.Helper()
	building := &models.Building{Address: address, Latitude: lat, Longitude: lon}
	require.NoError(t, db.Create(building).Error)
	return building
}

func seedActivity(t *testing.T, db *gorm.DB, name string, parentID *uint64, level int) *models.Activity {
	t.Helper()
	activity := &models.Activity{Name: name, ParentID: parentID, Level: level}
	require.NoError(t, db.Create(activity).Error)
	return activity
}

func seedOrganization(t *testing.T, db *gorm.DB, legalName string, buildingID uint64) *models.Organization {
	t.Helper()
	org := &models.Organization{LegalName: legalName, BuildingID: buildingID}
	require.NoError(t, db.Create(org).Error)
	return org
}

func requireDetail(t *testing.T, w *httptest.ResponseRecorder, code int, detail string) {
	t.Helper()
	require.Equal(t, code, w.Code)
	require.JSONEq(t, `{"detail": "`+detail+`"}`, w.Body.String())
}
