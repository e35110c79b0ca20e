package planner

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"zenhome-backend/internal/models"
)

var (
	ErrEmptyRoomName   = errors.New("room name is empty")
	ErrRoomNotFound    = errors.New("room not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrNotPlacing      = errors.New("place tool is not active")
	ErrNoArmedMaterial = errors.New("no material armed for placement")
)

// Engine applies floor-plan transforms to project snapshots. Every
// method takes the current ProjectState by value and returns a new
// one; the input is never mutated.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

func clampDimension(v float64) float64 {
	if v < models.MinRoomDimension {
		return models.MinRoomDimension
	}
	return v
}

// AddRoom appends a new room with clamped dimensions. A blank or
// whitespace-only name is rejected and the snapshot is returned
// unchanged.
func (e *Engine) AddRoom(state models.ProjectState, name, roomType string, width, length float64) (models.ProjectState, models.Room, error) {
	if strings.TrimSpace(name) == "" {
		return state, models.Room{}, ErrEmptyRoomName
	}

	room := models.Room{
		ID:     uuid.New().String(),
		Name:   name,
		Type:   roomType,
		Width:  clampDimension(width),
		Length: clampDimension(length),
		Items:  []models.PlacedItem{},
	}

	next := state.Clone()
	next.Rooms = append(next.Rooms, room)
	return next, room, nil
}

// RemoveRoom drops a room and everything placed in it.
func (e *Engine) RemoveRoom(state models.ProjectState, roomID string) (models.ProjectState, error) {
	next := state.Clone()
	for i := range next.Rooms {
		if next.Rooms[i].ID == roomID {
			next.Rooms = append(next.Rooms[:i], next.Rooms[i+1:]...)
			return next, nil
		}
	}
	return state, ErrRoomNotFound
}

// PlaceItem converts a canvas click to grid coordinates and appends a
// new item to the room. Rotation starts at 0 and quantity at 1.
func (e *Engine) PlaceItem(state models.ProjectState, roomID, materialID string, screenX, screenY, gridScale float64) (models.ProjectState, models.PlacedItem, error) {
	next := state.Clone()
	room, ok := next.Room(roomID)
	if !ok {
		return state, models.PlacedItem{}, ErrRoomNotFound
	}

	item := models.PlacedItem{
		ID:         uuid.New().String(),
		MaterialID: materialID,
		Quantity:   1,
		PosX:       ScreenToGrid(screenX, gridScale),
		PosY:       ScreenToGrid(screenY, gridScale),
		Rotation:   0,
	}
	room.Items = append(room.Items, item)
	return next, item, nil
}

// RotateItem adds a signed delta to the item's rotation and normalizes
// the result into [0,360).
func (e *Engine) RotateItem(state models.ProjectState, roomID, itemID string, delta int) (models.ProjectState, models.PlacedItem, error) {
	next := state.Clone()
	room, ok := next.Room(roomID)
	if !ok {
		return state, models.PlacedItem{}, ErrRoomNotFound
	}
	for i := range room.Items {
		if room.Items[i].ID == itemID {
			room.Items[i].Rotation = NormalizeRotation(room.Items[i].Rotation + delta)
			return next, room.Items[i], nil
		}
	}
	return state, models.PlacedItem{}, ErrItemNotFound
}

// RemoveItem deletes an item from its room.
func (e *Engine) RemoveItem(state models.ProjectState, roomID, itemID string) (models.ProjectState, error) {
	next := state.Clone()
	room, ok := next.Room(roomID)
	if !ok {
		return state, ErrRoomNotFound
	}
	for i := range room.Items {
		if room.Items[i].ID == itemID {
			room.Items = append(room.Items[:i], room.Items[i+1:]...)
			return next, nil
		}
	}
	return state, ErrItemNotFound
}

// UpdateRoomDimensions clamps both dimensions to the minimum and
// writes them. Items that end up outside the new bounds stay where
// they are; the planner never repositions placed items.
func (e *Engine) UpdateRoomDimensions(state models.ProjectState, roomID string, width, length float64) (models.ProjectState, models.Room, error) {
	next := state.Clone()
	room, ok := next.Room(roomID)
	if !ok {
		return state, models.Room{}, ErrRoomNotFound
	}
	room.Width = clampDimension(width)
	room.Length = clampDimension(length)
	return next, *room, nil
}

// AttachModelAsset stores an opaque 3D-model reference on an item,
// replacing any previous one. Extension validation happens at the
// upload boundary before this is called.
func (e *Engine) AttachModelAsset(state models.ProjectState, roomID, itemID, modelURL string) (models.ProjectState, models.PlacedItem, error) {
	next := state.Clone()
	room, ok := next.Room(roomID)
	if !ok {
		return state, models.PlacedItem{}, ErrRoomNotFound
	}
	for i := range room.Items {
		if room.Items[i].ID == itemID {
			room.Items[i].ModelURL = modelURL
			return next, room.Items[i], nil
		}
	}
	return state, models.PlacedItem{}, ErrItemNotFound
}

// ToggleMaterial adds the ID to the selection set, or removes it if
// already present. The set stays duplicate-free and keeps insertion
// order.
func (e *Engine) ToggleMaterial(state models.ProjectState, materialID string) (models.ProjectState, bool) {
	next := state.Clone()
	for i, id := range next.SelectedMaterialIDs {
		if id == materialID {
			next.SelectedMaterialIDs = append(next.SelectedMaterialIDs[:i], next.SelectedMaterialIDs[i+1:]...)
			return next, false
		}
	}
	next.SelectedMaterialIDs = append(next.SelectedMaterialIDs, materialID)
	return next, true
}

// PrependDesign records a freshly generated visual, newest first.
func (e *Engine) PrependDesign(state models.ProjectState, design models.GeneratedDesign) models.ProjectState {
	next := state.Clone()
	next.GeneratedDesigns = append([]models.GeneratedDesign{design}, next.GeneratedDesigns...)
	return next
}
