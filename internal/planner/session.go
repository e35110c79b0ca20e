package planner

import "sync"

// Tool is the active canvas tool.
type Tool string

const (
	ToolSelect Tool = "select"
	ToolPlace  Tool = "place"
)

// Session is the ephemeral planner UI state: active room, tool mode,
// armed material and item selection. It is never persisted with the
// project and resets on restart.
//
// Transitions: arming a material switches to place; a successful
// placement selects the new item and reverts to select; picking the
// select tool explicitly disarms. Clicking empty canvas in select
// mode clears the item selection without changing tools.
type Session struct {
	mu sync.Mutex

	activeRoomID    string
	tool            Tool
	armedMaterialID string
	selectedItemID  string
}

func NewSession() *Session {
	return &Session{tool: ToolSelect}
}

// Snapshot returns a consistent copy of the session state.
func (s *Session) Snapshot() (activeRoomID string, tool Tool, armedMaterialID, selectedItemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeRoomID, s.tool, s.armedMaterialID, s.selectedItemID
}

// ArmMaterial arms a material for placement and switches to the place
// tool. Any current item selection is dropped.
func (s *Session) ArmMaterial(materialID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tool = ToolPlace
	s.armedMaterialID = materialID
	s.selectedItemID = ""
}

// SelectTool switches back to the select tool and disarms the
// material.
func (s *Session) SelectTool() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tool = ToolSelect
	s.armedMaterialID = ""
}

// BeginPlacement validates that a placement is currently allowed and
// returns the armed material.
func (s *Session) BeginPlacement() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tool != ToolPlace {
		return "", ErrNotPlacing
	}
	if s.armedMaterialID == "" {
		return "", ErrNoArmedMaterial
	}
	return s.armedMaterialID, nil
}

// CompletePlacement records a successful single-shot placement: the
// new item becomes selected and the tool reverts to select.
func (s *Session) CompletePlacement(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedItemID = itemID
	s.tool = ToolSelect
	s.armedMaterialID = ""
}

// ActivateRoom makes a room the active canvas and resets tool and
// selection state.
func (s *Session) ActivateRoom(roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeRoomID = roomID
	s.tool = ToolSelect
	s.armedMaterialID = ""
	s.selectedItemID = ""
}

// SelectItem marks an item as the current selection.
func (s *Session) SelectItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedItemID = itemID
}

// SelectedItem returns the current item selection, if any.
func (s *Session) SelectedItem() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedItemID
}

// ClearSelection drops the item selection. Tool mode is unchanged;
// this is the empty-canvas click in select mode.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedItemID = ""
}

// ItemRemoved clears the selection if the removed item was selected.
func (s *Session) ItemRemoved(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedItemID == itemID {
		s.selectedItemID = ""
	}
}

// RoomRemoved clears room-scoped state if the active room went away.
func (s *Session) RoomRemoved(roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeRoomID == roomID {
		s.activeRoomID = ""
		s.selectedItemID = ""
	}
}
