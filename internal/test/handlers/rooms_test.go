package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zenhome-backend/internal/models"
	"zenhome-backend/internal/planner"
)

func TestRooms_Create(t *testing.T) {
	env := newTestEnv(t, "")

	w := env.do(t, "POST", "/api/v1/project/rooms", models.CreateRoomRequest{
		Name: "Master Bedroom", Type: "bedroom", Width: 4.5, Length: 3.8,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[models.RoomResponse](t, w)
	assert.NotEmpty(t, resp.Room.ID)
	assert.Equal(t, "Master Bedroom", resp.Room.Name)

	// the new room becomes the active space
	roomID, tool, _, _ := env.session.Snapshot()
	assert.Equal(t, resp.Room.ID, roomID)
	assert.Equal(t, planner.ToolSelect, tool)

	assert.Len(t, env.cell.Current().Rooms, 2)
}

func TestRooms_Create_ClampsDimensions(t *testing.T) {
	env := newTestEnv(t, "")

	w := env.do(t, "POST", "/api/v1/project/rooms", models.CreateRoomRequest{
		Name: "Pantry", Type: "kitchen", Width: 0.2, Length: 0,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[models.RoomResponse](t, w)
	assert.Equal(t, 1.0, resp.Room.Width)
	assert.Equal(t, 1.0, resp.Room.Length)
}

func TestRooms_Create_RejectsBlankName(t *testing.T) {
	env := newTestEnv(t, "")

	w := env.do(t, "POST", "/api/v1/project/rooms", models.CreateRoomRequest{
		Name: "  ", Type: "living", Width: 4, Length: 4,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, env.cell.Current().Rooms, 1)
}

func TestRooms_UpdateDimensions(t *testing.T) {
	env := newTestEnv(t, "")

	w := env.do(t, "PATCH", "/api/v1/project/rooms/room-1", models.UpdateRoomRequest{Width: 7, Length: 0.5})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.RoomResponse](t, w)
	assert.Equal(t, 7.0, resp.Room.Width)
	assert.Equal(t, 1.0, resp.Room.Length)
}

func TestRooms_UpdateDimensions_NotFound(t *testing.T) {
	env := newTestEnv(t, "")

	w := env.do(t, "PATCH", "/api/v1/project/rooms/missing", models.UpdateRoomRequest{Width: 7, Length: 5})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRooms_Delete(t *testing.T) {
	env := newTestEnv(t, "")
	env.session.ActivateRoom("room-1")

	w := env.do(t, "DELETE", "/api/v1/project/rooms/room-1", nil)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, env.cell.Current().Rooms)

	roomID, _, _, _ := env.session.Snapshot()
	assert.Empty(t, roomID)
}

func TestRooms_Delete_NotFound(t *testing.T) {
	env := newTestEnv(t, "")

	w := env.do(t, "DELETE", "/api/v1/project/rooms/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
