package handlers

import (
	"net/http"

	"solarvizyon/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the static tables the form shell renders:
// selectable locations with their reference sun data.

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListLocations returns the canonical location table.
func (h *CatalogHandler) ListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": catalog.Locations()})
}
