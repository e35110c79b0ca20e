package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"zenhome-backend/internal/models"
	"zenhome-backend/internal/planner"
)

type SessionHandler struct {
	session *planner.Session
}

func NewSessionHandler(session *planner.Session) *SessionHandler {
	return &SessionHandler{session: session}
}

func sessionResponse(s *planner.Session) models.SessionResponse {
	roomID, tool, armed, selected := s.Snapshot()
	return models.SessionResponse{
		ActiveRoomID:    roomID,
		Tool:            string(tool),
		ArmedMaterialID: armed,
		SelectedItemID:  selected,
	}
}

// Get godoc
// @Summary     Get the planner session state
// @Description Ephemeral UI state: active room, tool mode, armed material, item selection. Never persisted.
// @Tags        session
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.SessionResponse
// @Router      /session [get]
func (h *SessionHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, sessionResponse(h.session))
}

// SetTool godoc
// @Summary     Switch the canvas tool
// @Description tool=place arms the given material for a single-shot placement; tool=select disarms it. Arming drops the current item selection.
// @Tags        session
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.SetToolRequest true "Tool and optional material to arm"
// @Success     200 {object} models.SessionResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /session/tool [put]
func (h *SessionHandler) SetTool(c *gin.Context) {
	var req models.SetToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	switch planner.Tool(req.Tool) {
	case planner.ToolSelect:
		h.session.SelectTool()
	case planner.ToolPlace:
		if req.MaterialID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "material_id is required to arm the place tool"})
			return
		}
		h.session.ArmMaterial(req.MaterialID)
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown tool", Message: "tool must be select or place"})
		return
	}

	c.JSON(http.StatusOK, sessionResponse(h.session))
}

// ClearSelection godoc
// @Summary     Clear the item selection
// @Description The empty-canvas click: drops the item selection without changing tool mode.
// @Tags        session
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.SessionResponse
// @Router      /session/selection/clear [post]
func (h *SessionHandler) ClearSelection(c *gin.Context) {
	h.session.ClearSelection()
	c.JSON(http.StatusOK, sessionResponse(h.session))
}
