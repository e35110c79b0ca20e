package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"zenhome-backend/internal/models"
	"zenhome-backend/internal/store"
)

type ProjectHandler struct {
	cell *store.Cell
}

func NewProjectHandler(cell *store.Cell) *ProjectHandler {
	return &ProjectHandler{cell: cell}
}

// Get godoc
// @Summary     Get the current project
// @Tags        project
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ProjectResponse
// @Router      /project [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, models.ProjectResponse{Project: h.cell.Current()})
}

// Reset godoc
// @Summary     Reset the project to the default document
// @Tags        project
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ProjectResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /project/reset [post]
func (h *ProjectHandler) Reset(c *gin.Context) {
	state, err := h.cell.Reset(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to reset project",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, models.ProjectResponse{Project: state})
}
