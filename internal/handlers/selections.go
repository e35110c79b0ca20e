package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"zenhome-backend/internal/models"
	"zenhome-backend/internal/planner"
	"zenhome-backend/internal/store"
)

type SelectionsHandler struct {
	cell   *store.Cell
	engine *planner.Engine
}

func NewSelectionsHandler(cell *store.Cell, engine *planner.Engine) *SelectionsHandler {
	return &SelectionsHandler{cell: cell, engine: engine}
}

// Toggle godoc
// @Summary     Toggle a material selection
// @Description Adds the material ID to the selection set or removes it if already present. The set never holds duplicates.
// @Tags        selections
// @Produce     json
// @Security    Bearer
// @Param       material_id path string true "Material ID"
// @Success     200 {object} models.SelectionResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /project/selections/{material_id}/toggle [post]
func (h *SelectionsHandler) Toggle(c *gin.Context) {
	materialID := c.Param("material_id")

	var selected bool
	state, err := h.cell.Update(c.Request.Context(), func(state models.ProjectState) (models.ProjectState, error) {
		next, nowSelected := h.engine.ToggleMaterial(state, materialID)
		selected = nowSelected
		return next, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update selection", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SelectionResponse{
		SelectedMaterialIDs: state.SelectedMaterialIDs,
		Selected:            selected,
	})
}
