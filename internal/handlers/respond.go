package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultListSkip  = 0
	defaultListLimit = 100
)

// respondDetail sends an error body in the API's uniform shape.
func respondDetail(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

func notFound(c *gin.Context, detail string) {
	respondDetail(c, http.StatusNotFound, detail)
}

func badRequest(c *gin.Context, detail string) {
	respondDetail(c, http.StatusBadRequest, detail)
}

func conflict(c *gin.Context, detail string) {
	respondDetail(c, http.StatusConflict, detail)
}

func internalError(c *gin.Context, detail string) {
	respondDetail(c, http.StatusInternalServerError, detail)
}

// parseID parses a positive integer path parameter.
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		badRequest(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}

// parseListParams reads skip/limit query parameters with their defaults.
func parseListParams(c *gin.Context) (skip, limit int, ok bool) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", strconv.Itoa(defaultListSkip)))
	if err != nil || skip < 0 {
		badRequest(c, "Invalid skip parameter")
		return 0, 0, false
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil || limit < 0 {
		badRequest(c, "Invalid limit parameter")
		return 0, 0, false
	}

	return skip, limit, true
}

// pageSlice applies skip/limit as an in-memory window over the full result
// set. A window past the end yields an empty slice, never an error.
func pageSlice[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}
