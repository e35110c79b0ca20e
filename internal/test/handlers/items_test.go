package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zenhome-backend/internal/models"
	"zenhome-backend/internal/planner"
)

func TestItems_Place(t *testing.T) {
	env := newTestEnv(t, "")
	env.session.ArmMaterial("mat-5")

	w := env.do(t, "POST", "/api/v1/project/rooms/room-1/items", models.PlaceItemRequest{
		ScreenX: 125, ScreenY: 75, GridScale: 50,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[models.ItemResponse](t, w)
	assert.Equal(t, "room-1", resp.RoomID)
	assert.Equal(t, "mat-5", resp.Item.MaterialID)
	assert.Equal(t, 2.5, resp.Item.PosX)
	assert.Equal(t, 1.5, resp.Item.PosY)

	// single-shot: the tool reverts and the new item is selected
	_, tool, armed, selected := env.session.Snapshot()
	assert.Equal(t, planner.ToolSelect, tool)
	assert.Empty(t, armed)
	assert.Equal(t, resp.Item.ID, selected)
}

func TestItems_Place_WithoutArmedMaterial(t *testing.T) {
	env := newTestEnv(t, "")

	w := env.do(t, "POST", "/api/v1/project/rooms/room-1/items", models.PlaceItemRequest{
		ScreenX: 125, ScreenY: 75, GridScale: 50,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestItems_Place_UnknownRoomKeepsToolArmed(t *testing.T) {
	env := newTestEnv(t, "")
	env.session.ArmMaterial("mat-5")

	w := env.do(t, "POST", "/api/v1/project/rooms/missing/items", models.PlaceItemRequest{
		ScreenX: 0, ScreenY: 0, GridScale: 50,
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	// failed placement does not consume the armed material
	_, tool, armed, _ := env.session.Snapshot()
	assert.Equal(t, planner.ToolPlace, tool)
	assert.Equal(t, "mat-5", armed)
}

func TestItems_Rotate(t *testing.T) {
	env := newTestEnv(t, "")
	env.session.ArmMaterial("mat-5")
	placed := decode[models.ItemResponse](t, env.do(t, "POST", "/api/v1/project/rooms/room-1/items", models.PlaceItemRequest{GridScale: 50}))

	w := env.do(t, "POST", "/api/v1/project/rooms/room-1/items/"+placed.Item.ID+"/rotate", models.RotateItemRequest{Delta: -45})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.ItemResponse](t, w)
	assert.Equal(t, 315, resp.Item.Rotation)
}

func TestItems_Rotate_NotFound(t *testing.T) {
	env := newTestEnv(t, "")

	w := env.do(t, "POST", "/api/v1/project/rooms/room-1/items/missing/rotate", models.RotateItemRequest{Delta: 90})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItems_Remove_ClearsSelection(t *testing.T) {
	env := newTestEnv(t, "")
	env.session.ArmMaterial("mat-5")
	placed := decode[models.ItemResponse](t, env.do(t, "POST", "/api/v1/project/rooms/room-1/items", models.PlaceItemRequest{GridScale: 50}))
	require.Equal(t, placed.Item.ID, env.session.SelectedItem())

	w := env.do(t, "DELETE", "/api/v1/project/rooms/room-1/items/"+placed.Item.ID, nil)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, env.session.SelectedItem())

	state := env.cell.Current()
	room, ok := state.Room("room-1")
	require.True(t, ok)
	assert.Empty(t, room.Items)
}

func TestItems_AttachModel_StorageNotConfigured(t *testing.T) {
	env := newTestEnv(t, "")

	w := env.do(t, "POST", "/api/v1/project/rooms/room-1/items/item-1/model", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
