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

type ActivityHandler struct {
	repo repository.ActivityRepository
}

func NewActivityHandler(repo repository.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{repo: repo}
}

// List returns a page of activities
func (h *ActivityHandler) List(c *gin.Context) {
	skip, limit, ok := parseListParams(c)
	if !ok {
		return
	}

	activities, err := h.repo.GetAll()
	if err != nil {
		internalError(c, "Failed to fetch activities")
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityDTOs(pageSlice(activities, skip, limit)))
}

// Get returns an activity with its parent, children and organizations
func (h *ActivityHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	activity, err := h.repo.GetWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Activity not found")
			return
		}
		internalError(c, "Failed to fetch activity")
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityWithRelationsDTO(*activity))
}

// Create inserts a new activity
func (h *ActivityHandler) Create(c *gin.Context) {
	var req dto.ActivityCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	activity := models.Activity{
		Name:     req.Name,
		ParentID: req.ParentID,
		Level:    req.Level,
	}
	if err := h.repo.Create(&activity); err != nil {
		internalError(c, "Failed to create activity")
		return
	}

	c.JSON(http.StatusCreated, dto.ToActivityDTO(activity))
}

// Update applies a partial update after checking existence
func (h *ActivityHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if _, err := h.repo.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Activity not found")
			return
		}
		internalError(c, "Failed to fetch activity")
		return
	}

	var req dto.ActivityUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.repo.Update(id, req.Fields()); err != nil {
		internalError(c, "Failed to update activity")
		return
	}

	activity, err := h.repo.Get(id)
	if err != nil {
		internalError(c, "Failed to fetch activity")
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityDTO(*activity))
}

// Delete removes an activity; deleting an absent id succeeds
func (h *ActivityHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(id); err != nil {
		internalError(c, "Failed to delete activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted"})
}

// Tree returns one level of the activity tree: the direct children of the
// parent_id path parameter, or the root activities when it is omitted.
func (h *ActivityHandler) Tree(c *gin.Context) {
	var parentID *uint64
	if raw := c.Param("parent_id"); raw != "" {
		id, ok := parseID(c, "parent_id")
		if !ok {
			return
		}
		parentID = &id
	}

	activities, err := h.repo.GetTree(parentID)
	if err != nil {
		internalError(c, "Failed to fetch activity tree")
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityDTOs(activities))
}
