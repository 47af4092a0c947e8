package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orghandbook/orghandbook-api/internal/dto"
	"github.com/orghandbook/orghandbook-api/internal/models"
	"github.com/orghandbook/orghandbook-api/internal/repository"
	"gorm.io/gorm"
)

type BuildingHandler struct {
	repo repository.BuildingRepository
}

func NewBuildingHandler(repo repository.BuildingRepository) *BuildingHandler {
	return &BuildingHandler{repo: repo}
}

// List returns a page of buildings
func (h *BuildingHandler) List(c *gin.Context) {
	skip, limit, ok := parseListParams(c)
	if !ok {
		return
	}

	buildings, err := h.repo.GetAll()
	if err != nil {
		internalError(c, "Failed to fetch buildings")
		return
	}

	c.JSON(http.StatusOK, dto.ToBuildingDTOs(pageSlice(buildings, skip, limit)))
}

// Get returns a building with its organizations
func (h *BuildingHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	building, err := h.repo.GetWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Building not found")
			return
		}
		internalError(c, "Failed to fetch building")
		return
	}

	c.JSON(http.StatusOK, dto.ToBuildingWithRelationsDTO(*building))
}

// Create inserts a new building
func (h *BuildingHandler) Create(c *gin.Context) {
	var req dto.BuildingCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	building := models.Building{
		Address:   req.Address,
		Longitude: *req.Longitude,
		Latitude:  *req.Latitude,
	}
	if err := h.repo.Create(&building); err != nil {
		internalError(c, "Failed to create building")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBuildingDTO(building))
}

// Update applies a partial update after checking existence
func (h *BuildingHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if _, err := h.repo.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Building not found")
			return
		}
		internalError(c, "Failed to fetch building")
		return
	}

	var req dto.BuildingUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.repo.Update(id, req.Fields()); err != nil {
		internalError(c, "Failed to update building")
		return
	}

	building, err := h.repo.Get(id)
	if err != nil {
		internalError(c, "Failed to fetch building")
		return
	}

	c.JSON(http.StatusOK, dto.ToBuildingDTO(*building))
}

// Delete removes a building; deleting an absent id succeeds
func (h *BuildingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrBuildingReferenced) {
			conflict(c, "Building is referenced by existing organizations")
			return
		}
		internalError(c, "Failed to delete building")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Building deleted"})
}
