package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/orghandbook/orghandbook-api/internal/dto"
	"github.com/orghandbook/orghandbook-api/internal/models"
	"github.com/orghandbook/orghandbook-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrganizationHandler(db *gorm.DB) *OrganizationHandler {
	return NewOrganizationHandler(repository.NewOrganizationRepository(db))
}

func TestOrganizationHandler_Create(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newOrganizationHandler(db)

	building := seedBuilding(t, db, "1 Main St", 55.75, 37.61)
	activity := seedActivity(t, db, "Food", nil, 1)

	body := []byte(fmt.Sprintf(
		`{"legal_name": "Acme", "building_id": %d, "phone_numbers": ["2-222-222"], "activity_ids": [%d]}`,
		building.ID, activity.ID,
	))
	c, w := handlerTestContext(http.MethodPost, "/api/v1/organizations/", body, nil)

	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.OrganizationDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotZero(t, response.ID)
	require.Equal(t, "Acme", response.LegalName)
	require.Equal(t, building.ID, response.BuildingID)

	var phoneCount int64
	require.NoError(t, db.Model(&models.PhoneNumber{}).Where("organization_id = ?", response.ID).Count(&phoneCount).Error)
	require.EqualValues(t, 1, phoneCount)
}

func TestOrganizationHandler_CreateMissingLegalName(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newOrganizationHandler(db)

	body := []byte(`{"building_id": 1}`)
	c, w := handlerTestContext(http.MethodPost, "/api/v1/organizations/", body, nil)

	handler.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrganizationHandler_GetNotFound(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newOrganizationHandler(db)

	c, w := handlerTestContext(http.MethodGet, "/api/v1/organizations/999", nil, idParam("id", "999"))

	handler.Get(c)

	requireDetail(t, w, http.StatusNotFound, "Organization not found")
}

func TestOrganizationHandler_GetWithRelations(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newOrganizationHandler(db)

	building := seedBuilding(t, db, "1 Main St", 55.75, 37.61)
	org := seedOrganization(t, db, "Acme", building.ID)
	require.NoError(t, db.Create(&models.PhoneNumber{PhoneNumber: "2-222-222", OrganizationID: org.ID}).Error)

	c, w := handlerTestContext(http.MethodGet, "/api/v1/organizations/1", nil, idParam("id", "1"))

	handler.Get(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.OrganizationWithRelationsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Acme", response.LegalName)
	require.Equal(t, "1 Main St", response.Building.Address)
	require.Len(t, response.PhoneNumbers, 1)
	require.Equal(t, "2-222-222", response.PhoneNumbers[0].PhoneNumber)
}

func TestOrganizationHandler_ListPagination(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newOrganizationHandler(db)

	building := seedBuilding(t, db, "1 Main St", 55.75, 37.61)
	seedOrganization(t, db, "First", building.ID)
	seedOrganization(t, db, "Second", building.ID)
	seedOrganization(t, db, "Third", building.ID)

	c, w := handlerTestContext(http.MethodGet, "/api/v1/organizations/?skip=1&limit=1", nil, nil)

	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response []dto.OrganizationDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	require.Equal(t, "Second", response[0].LegalName)
}

func TestOrganizationHandler_UpdateNotFound(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newOrganizationHandler(db)

	body := []byte(`{"legal_name": "Renamed"}`)
	c, w := handlerTestContext(http.MethodPut, "/api/v1/organizations/999", body, idParam("id", "999"))

	handler.Update(c)

	requireDetail(t, w, http.StatusNotFound, "Organization not found")
}

func TestOrganizationHandler_UpdateLegalName(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newOrganizationHandler(db)

	building := seedBuilding(t, db, "1 Main St", 55.75, 37.61)
	seedOrganization(t, db, "Acme", building.ID)

	body := []byte(`{"legal_name": "Acme Holdings"}`)
	c, w := handlerTestContext(http.MethodPut, "/api/v1/organizations/1", body, idParam("id", "1"))

	handler.Update(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.OrganizationDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Acme Holdings", response.LegalName)
	require.Equal(t, building.ID, response.BuildingID)
}

func TestOrganizationHandler_DeleteAbsentSucceeds(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newOrganizationHandler(db)

	c, w := handlerTestContext(http.MethodDelete, "/api/v1/organizations/999", nil, idParam("id", "999"))

	handler.Delete(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message": "Organization deleted"}`, w.Body.String())
}

func TestOrganizationHandler_ByBuilding(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newOrganizationHandler(db)

	first := seedBuilding(t, db, "1 Main St", 55.75, 37.61)
	second := seedBuilding(t, db, "2 Side St", 55.76, 37.62)
	seedOrganization(t, db, "Acme", first.ID)
	seedOrganization(t, db, "Globex", second.ID)

	c, w := handlerTestContext(http.MethodGet, "/api/v1/organizations/building/1", nil, idParam("building_id", "1"))

	handler.ByBuilding(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response []dto.OrganizationWithRelationsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	require.Equal(t, "Acme", response[0].LegalName)
}

func TestOrganizationHandler_ByActivityIncludesDescendants(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newOrganizationHandler(db)

	building := seedBuilding(t, db, "1 Main St", 55.75, 37.61)
	food := seedActivity(t, db, "Food", nil, 1)
	meat := seedActivity(t, db, "Meat", &food.ID, 2)

	orgRepo := repository.NewOrganizationRepository(db)
	org := &models.Organization{LegalName: "Butcher", BuildingID: building.ID}
	require.NoError(t, orgRepo.Create(org, nil, []uint64{meat.ID}))

	c, w := handlerTestContext(http.MethodGet, "/api/v1/organizations/activity/1", nil, idParam("activity_id", "1"))

	handler.ByActivity(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response []dto.OrganizationWithRelationsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	require.Equal(t, "Butcher", response[0].LegalName)
}

func TestOrganizationHandler_SearchByNameEmpty(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newOrganizationHandler(db)

	c, w := handlerTestContext(http.MethodGet, "/api/v1/organizations/search/name?name=+", nil, nil)

	handler.SearchByName(c)

	requireDetail(t, w, http.StatusBadRequest, "Query parameter name must not be empty")
}

func TestOrganizationHandler_SearchByName(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newOrganizationHandler(db)

	building := seedBuilding(t, db, "1 Main St", 55.75, 37.61)
	seedOrganization(t, db, "Acme Meats", building.ID)
	seedOrganization(t, db, "Globex", building.ID)

	c, w := handlerTestContext(http.MethodGet, "/api/v1/organizations/search/name?name=meat", nil, nil)

	handler.SearchByName(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response []dto.OrganizationWithRelationsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	require.Equal(t, "Acme Meats", response[0].LegalName)
}

func TestOrganizationHandler_SearchRadiusMissingParam(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newOrganizationHandler(db)

	c, w := handlerTestContext(http.MethodGet, "/api/v1/organizations/search/radius?lat=55.75&lon=37.61", nil, nil)

	handler.SearchRadius(c)

	requireDetail(t, w, http.StatusBadRequest, "Query parameter radius_km is required")
}

func TestOrganizationHandler_SearchRadiusNonPositive(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newOrganizationHandler(db)

	c, w := handlerTestContext(http.MethodGet, "/api/v1/organizations/search/radius?lat=55.75&lon=37.61&radius_km=0", nil, nil)

	handler.SearchRadius(c)

	requireDetail(t, w, http.StatusBadRequest, "Query parameter radius_km must be greater than 0")
}

func TestOrganizationHandler_SearchRadius(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newOrganizationHandler(db)

	near := seedBuilding(t, db, "Near", 55.7558, 37.6173)
	far := seedBuilding(t, db, "Far", 59.9343, 30.3351)
	seedOrganization(t, db, "Near Org", near.ID)
	seedOrganization(t, db, "Far Org", far.ID)

	c, w := handlerTestContext(http.MethodGet, "/api/v1/organizations/search/radius?lat=55.75&lon=37.61&radius_km=5", nil, nil)

	handler.SearchRadius(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response []dto.OrganizationWithRelationsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	require.Equal(t, "Near Org", response[0].LegalName)
}

func TestOrganizationHandler_SearchArea(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newOrganizationHandler(db)

	inside := seedBuilding(t, db, "Inside", 55.75, 37.61)
	outside := seedBuilding(t, db, "Outside", 59.93, 30.33)
	seedOrganization(t, db, "Inside Org", inside.ID)
	seedOrganization(t, db, "Outside Org", outside.ID)

	url := "/api/v1/organizations/search/area?min_lat=55&max_lat=56&min_lon=37&max_lon=38"
	c, w := handlerTestContext(http.MethodGet, url, nil, nil)

	handler.SearchArea(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response []dto.OrganizationWithRelationsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	require.Equal(t, "Inside Org", response[0].LegalName)
}

func TestOrganizationHandler_SearchAreaMissingParam(t *testing.T) {
	db := setupHandlerTestDB(t)
	handler := newOrganizationHandler(db)

	c, w := handlerTestContext(http.MethodGet, "/api/v1/organizations/search/area?min_lat=55&max_lat=56&min_lon=37", nil, nil)

	handler.SearchArea(c)

	requireDetail(t, w, http.StatusBadRequest, "Query parameter max_lon is required")
}
