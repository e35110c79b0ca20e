package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"zenhome-backend/internal/models"
	"zenhome-backend/internal/planner"
	"zenhome-backend/internal/store"
	"zenhome-backend/internal/supabase"
)

type ItemsHandler struct {
	cell    *store.Cell
	engine  *planner.Engine
	session *planner.Session
	storage *supabase.StorageClient
}

func NewItemsHandler(cell *store.Cell, engine *planner.Engine, session *planner.Session, storage *supabase.StorageClient) *ItemsHandler {
	return &ItemsHandler{cell: cell, engine: engine, session: session, storage: storage}
}

// Place godoc
// @Summary     Place an item on the canvas
// @Description Converts the click's pixel coordinates to grid units (0.1m snap) and places the armed material. Requires the place tool to be active with a material armed; on success the new item is selected and the tool reverts to select.
// @Tags        items
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       room_id path string true "Room ID"
// @Param       placement body models.PlaceItemRequest true "Canvas click"
// @Success     201 {object} models.ItemResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /project/rooms/{room_id}/items [post]
func (h *ItemsHandler) Place(c *gin.Context) {
	var req models.PlaceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	materialID, err := h.session.BeginPlacement()
	if err != nil {
		respondPlannerError(c, err)
		return
	}

	roomID := c.Param("room_id")
	var placed models.PlacedItem
	_, err = h.cell.Update(c.Request.Context(), func(state models.ProjectState) (models.ProjectState, error) {
		next, item, err := h.engine.PlaceItem(state, roomID, materialID, req.ScreenX, req.ScreenY, req.GridScale)
		placed = item
		return next, err
	})
	if err != nil {
		respondPlannerError(c, err)
		return
	}

	h.session.CompletePlacement(placed.ID)
	c.JSON(http.StatusCreated, models.ItemResponse{RoomID: roomID, Item: placed})
}

// Rotate godoc
// @Summary     Rotate an item
// @Description Applies a signed degree delta; the stored rotation is always normalized into [0,360)
// @Tags        items
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       room_id path string true "Room ID"
// @Param       item_id path string true "Item ID"
// @Param       rotation body models.RotateItemRequest true "Rotation delta in degrees"
// @Success     200 {object} models.ItemResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /project/rooms/{room_id}/items/{item_id}/rotate [post]
func (h *ItemsHandler) Rotate(c *gin.Context) {
	var req models.RotateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	roomID := c.Param("room_id")
	itemID := c.Param("item_id")
	var rotated models.PlacedItem
	_, err := h.cell.Update(c.Request.Context(), func(state models.ProjectState) (models.ProjectState, error) {
		next, item, err := h.engine.RotateItem(state, roomID, itemID, req.Delta)
		rotated = item
		return next, err
	})
	if err != nil {
		respondPlannerError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ItemResponse{RoomID: roomID, Item: rotated})
}

// Remove godoc
// @Summary     Remove an item
// @Description Deletes the item from its room and clears the selection if it was selected
// @Tags        items
// @Produce     json
// @Security    Bearer
// @Param       room_id path string true "Room ID"
// @Param       item_id path string true "Item ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Router      /project/rooms/{room_id}/items/{item_id} [delete]
func (h *ItemsHandler) Remove(c *gin.Context) {
	roomID := c.Param("room_id")
	itemID := c.Param("item_id")
	_, err := h.cell.Update(c.Request.Context(), func(state models.ProjectState) (models.ProjectState, error) {
		return h.engine.RemoveItem(state, roomID, itemID)
	})
	if err != nil {
		respondPlannerError(c, err)
		return
	}

	h.session.ItemRemoved(itemID)
	c.Status(http.StatusNoContent)
}

// AttachModel godoc
// @Summary     Attach a 3D model asset to an item
// @Description Accepts a multipart .glb or .gltf upload, stores it, and overwrites the item's model reference. Any other extension is rejected before any state change.
// @Tags        items
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       room_id path string true "Room ID"
// @Param       item_id path string true "Item ID"
// @Param       model formData file true "3D model file (.glb or .gltf)"
// @Success     200 {object} models.ModelAssetResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /project/rooms/{room_id}/items/{item_id}/model [post]
func (h *ItemsHandler) AttachModel(c *gin.Context) {
	if h.storage == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "model storage not configured"})
		return
	}

	file, err := c.FormFile("model")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no model file uploaded", Message: err.Error()})
		return
	}

	if _, err := supabase.ValidateModelFilename(file.Filename); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid model file", Message: err.Error()})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to open file", Message: err.Error()})
		return
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read file", Message: err.Error()})
		return
	}

	roomID := c.Param("room_id")
	itemID := c.Param("item_id")

	// Make sure the target exists before paying for the upload.
	current := h.cell.Current()
	room, ok := current.Room(roomID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "room not found"})
		return
	}
	found := false
	for _, it := range room.Items {
		if it.ID == itemID {
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "item not found"})
		return
	}

	_, publicURL, err := h.storage.UploadModel(current.ID, roomID, itemID, file.Filename, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to store model", Message: err.Error()})
		return
	}

	_, err = h.cell.Update(c.Request.Context(), func(state models.ProjectState) (models.ProjectState, error) {
		next, _, err := h.engine.AttachModelAsset(state, roomID, itemID, publicURL)
		return next, err
	})
	if err != nil {
		respondPlannerError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ModelAssetResponse{RoomID: roomID, ItemID: itemID, ModelURL: publicURL})
}
