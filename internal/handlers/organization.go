package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/orghandbook/orghandbook-api/internal/dto"
	"github.com/orghandbook/orghandbook-api/internal/models"
	"github.com/orghandbook/orghandbook-api/internal/repository"
	"gorm.io/gorm"
)

type OrganizationHandler struct {
	repo repository.OrganizationRepository
}

func NewOrganizationHandler(repo repository.OrganizationRepository) *OrganizationHandler {
	return &OrganizationHandler{repo: repo}
}

// List returns a page of organizations
func (h *OrganizationHandler) List(c *gin.Context) {
	skip, limit, ok := parseListParams(c)
	if !ok {
		return
	}

	orgs, err := h.repo.GetAll()
	if err != nil {
		internalError(c, "Failed to fetch organizations")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationDTOs(pageSlice(orgs, skip, limit)))
}

// Get returns an organization with its building, phone numbers and
// activities
func (h *OrganizationHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	org, err := h.repo.GetWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Organization not found")
			return
		}
		internalError(c, "Failed to fetch organization")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationWithRelationsDTO(*org))
}

// Create inserts a new organization with its phone numbers and activity
// links in one transaction
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req dto.OrganizationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	org := models.Organization{
		LegalName:  req.LegalName,
		BuildingID: req.BuildingID,
	}
	if err := h.repo.Create(&org, req.PhoneNumbers, req.ActivityIDs); err != nil {
		internalError(c, "Failed to create organization")
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrganizationDTO(org))
}

// Update applies a partial update after checking existence
func (h *OrganizationHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if _, err := h.repo.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Organization not found")
			return
		}
		internalError(c, "Failed to fetch organization")
		return
	}

	var req dto.OrganizationUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.repo.Update(id, req.ToRepositoryUpdate()); err != nil {
		internalError(c, "Failed to update organization")
		return
	}

	org, err := h.repo.Get(id)
	if err != nil {
		internalError(c, "Failed to fetch organization")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationDTO(*org))
}

// Delete removes an organization; deleting an absent id succeeds
func (h *OrganizationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(id); err != nil {
		internalError(c, "Failed to delete organization")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Organization deleted"})
}

// ByBuilding returns the organizations hosted in a building
func (h *OrganizationHandler) ByBuilding(c *gin.Context) {
	buildingID, ok := parseID(c, "building_id")
	if !ok {
		return
	}

	orgs, err := h.repo.GetByBuilding(buildingID)
	if err != nil {
		internalError(c, "Failed to fetch organizations")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationWithRelationsDTOs(orgs))
}

// ByActivity returns the organizations tagged with an activity or any of
// its descendants
func (h *OrganizationHandler) ByActivity(c *gin.Context) {
	activityID, ok := parseID(c, "activity_id")
	if !ok {
		return
	}

	orgs, err := h.repo.GetByActivity(activityID)
	if err != nil {
		internalError(c, "Failed to fetch organizations")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationWithRelationsDTOs(orgs))
}

// SearchByName returns organizations whose legal name contains the given
// substring
func (h *OrganizationHandler) SearchByName(c *gin.Context) {
	name := c.Query("name")
	if strings.TrimSpace(name) == "" {
		badRequest(c, "Query parameter name must not be empty")
		return
	}

	orgs, err := h.repo.SearchByName(name)
	if err != nil {
		internalError(c, "Failed to search organizations")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationWithRelationsDTOs(orgs))
}

// SearchRadius returns organizations whose building lies within a radius
// of a point
func (h *OrganizationHandler) SearchRadius(c *gin.Context) {
	lat, ok := parseFloatQuery(c, "lat")
	if !ok {
		return
	}
	lon, ok := parseFloatQuery(c, "lon")
	if !ok {
		return
	}
	radiusKM, ok := parseFloatQuery(c, "radius_km")
	if !ok {
		return
	}
	if radiusKM <= 0 {
		badRequest(c, "Query parameter radius_km must be greater than 0")
		return
	}

	orgs, err := h.repo.GetInRadius(lat, lon, radiusKM)
	if err != nil {
		internalError(c, "Failed to search organizations")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationWithRelationsDTOs(orgs))
}

// SearchArea returns organizations whose building lies inside a bounding
// box
func (h *OrganizationHandler) SearchArea(c *gin.Context) {
	minLat, ok := parseFloatQuery(c, "min_lat")
	if !ok {
		return
	}
	maxLat, ok := parseFloatQuery(c, "max_lat")
	if !ok {
		return
	}
	minLon, ok := parseFloatQuery(c, "min_lon")
	if !ok {
		return
	}
	maxLon, ok := parseFloatQuery(c, "max_lon")
	if !ok {
		return
	}

	orgs, err := h.repo.GetInRectangularArea(minLat, maxLat, minLon, maxLon)
	if err != nil {
		internalError(c, "Failed to search organizations")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationWithRelationsDTOs(orgs))
}

// parseFloatQuery reads a required float query parameter.
func parseFloatQuery(c *gin.Context, name string) (float64, bool) {
	raw, exists := c.GetQuery(name)
	if !exists {
		badRequest(c, "Query parameter "+name+" is required")
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		badRequest(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return value, true
}
