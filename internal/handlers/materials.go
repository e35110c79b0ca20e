package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"zenhome-backend/internal/catalog"
	"zenhome-backend/internal/models"
)

type MaterialsHandler struct {
	catalog *catalog.Catalog
}

func NewMaterialsHandler(cat *catalog.Catalog) *MaterialsHandler {
	return &MaterialsHandler{catalog: cat}
}

// List godoc
// @Summary     List catalog materials
// @Description Returns the materials library, optionally filtered by category
// @Tags        materials
// @Produce     json
// @Param       category query string false "Category filter (floor, wall, lighting, furniture, bath, structural)"
// @Success     200 {object} models.MaterialListResponse
// @Router      /materials [get]
func (h *MaterialsHandler) List(c *gin.Context) {
	materials := h.catalog.All()
	if cat := c.Query("category"); cat != "" {
		materials = h.catalog.ByCategory(models.Category(cat))
		if materials == nil {
			materials = []models.Material{}
		}
	}

	c.JSON(http.StatusOK, models.MaterialListResponse{
		Materials:  materials,
		Categories: h.catalog.Categories(),
	})
}

// Get godoc
// @Summary     Get one material
// @Tags        materials
// @Produce     json
// @Param       material_id path string true "Material ID"
// @Success     200 {object} models.Material
// @Failure     404 {object} models.ErrorResponse
// @Router      /materials/{material_id} [get]
func (h *MaterialsHandler) Get(c *gin.Context) {
	m, ok := h.catalog.Get(c.Param("material_id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "material not found"})
		return
	}
	c.JSON(http.StatusOK, m)
}
