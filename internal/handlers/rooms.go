package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"zenhome-backend/internal/models"
	"zenhome-backend/internal/planner"
	"zenhome-backend/internal/store"
)

type RoomsHandler struct {
	cell    *store.Cell
	engine  *planner.Engine
	session *planner.Session
}

func NewRoomsHandler(cell *store.Cell, engine *planner.Engine, session *planner.Session) *RoomsHandler {
	return &RoomsHandler{cell: cell, engine: engine, session: session}
}

// Create godoc
// @Summary     Create a room
// @Description Adds a room with dimensions clamped to at least 1m and makes it the active space
// @Tags        rooms
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       room body models.CreateRoomRequest true "Room definition"
// @Success     201 {object} models.RoomResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /project/rooms [post]
func (h *RoomsHandler) Create(c *gin.Context) {
	var req models.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	var created models.Room
	_, err := h.cell.Update(c.Request.Context(), func(state models.ProjectState) (models.ProjectState, error) {
		next, room, err := h.engine.AddRoom(state, req.Name, req.Type, req.Width, req.Length)
		created = room
		return next, err
	})
	if err != nil {
		if errors.Is(err, planner.ErrEmptyRoomName) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "room name must not be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create room", Message: err.Error()})
		return
	}

	h.session.ActivateRoom(created.ID)
	c.JSON(http.StatusCreated, models.RoomResponse{Room: created})
}

// UpdateDimensions godoc
// @Summary     Update room dimensions
// @Description Clamps width and length to at least 1m; placed items are never repositioned
// @Tags        rooms
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       room_id path string true "Room ID"
// @Param       dimensions body models.UpdateRoomRequest true "New dimensions"
// @Success     200 {object} models.RoomResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /project/rooms/{room_id} [patch]
func (h *RoomsHandler) UpdateDimensions(c *gin.Context) {
	var req models.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	roomID := c.Param("room_id")
	var updated models.Room
	_, err := h.cell.Update(c.Request.Context(), func(state models.ProjectState) (models.ProjectState, error) {
		next, room, err := h.engine.UpdateRoomDimensions(state, roomID, req.Width, req.Length)
		updated = room
		return next, err
	})
	if err != nil {
		respondPlannerError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.RoomResponse{Room: updated})
}

// Delete godoc
// @Summary     Remove a room
// @Tags        rooms
// @Produce     json
// @Security    Bearer
// @Param       room_id path string true "Room ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Router      /project/rooms/{room_id} [delete]
func (h *RoomsHandler) Delete(c *gin.Context) {
	roomID := c.Param("room_id")
	_, err := h.cell.Update(c.Request.Context(), func(state models.ProjectState) (models.ProjectState, error) {
		return h.engine.RemoveRoom(state, roomID)
	})
	if err != nil {
		respondPlannerError(c, err)
		return
	}

	h.session.RoomRemoved(roomID)
	c.Status(http.StatusNoContent)
}

// respondPlannerError maps planner sentinel errors to HTTP statuses.
func respondPlannerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "room not found"})
	case errors.Is(err, planner.ErrItemNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "item not found"})
	case errors.Is(err, planner.ErrNotPlacing), errors.Is(err, planner.ErrNoArmedMaterial):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "operation failed", Message: err.Error()})
	}
}
