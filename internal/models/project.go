package models

// MinRoomDimension is the lower bound every room dimension is clamped
// to on write, in meters.
const MinRoomDimension = 1.0

// PlacedItem is a furnishing placed on a room's canvas. MaterialID is
// a weak reference into the catalog: a dangling ID is skipped at read
// time, never an error.
type PlacedItem struct {
	ID         string  `json:"id"`
	MaterialID string  `json:"material_id"`
	Quantity   int     `json:"quantity"`
	PosX       float64 `json:"pos_x"`
	PosY       float64 `json:"pos_y"`
	Rotation   int     `json:"rotation"` // degrees, always in [0,360)
	ModelURL   string  `json:"model_url,omitempty"`
}

// Room is one planned space. Width and Length are in meters and are
// kept >= MinRoomDimension by every write path.
type Room struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Type   string       `json:"type"`
	Width  float64      `json:"width"`
	Length float64      `json:"length"`
	Items  []PlacedItem `json:"items"`
}

// Area returns the room's floor area in square meters.
func (r Room) Area() float64 {
	return r.Width * r.Length
}

// GeneratedDesign is one AI-rendered visual. Immutable once created;
// the project keeps them newest first.
type GeneratedDesign struct {
	ID        string `json:"id"`
	Prompt    string `json:"prompt"`
	ImageURL  string `json:"image_url"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
}

// ProjectState is the single root aggregate the whole application
// edits. It is persisted and restored wholesale as one JSON snapshot.
type ProjectState struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Rooms               []Room            `json:"rooms"`
	GeneratedDesigns    []GeneratedDesign `json:"generated_designs"`
	SelectedMaterialIDs []string          `json:"selected_material_ids"`
}

// Clone returns a deep copy. Transforms operate on copies so a
// published snapshot is never mutated in place.
func (p ProjectState) Clone() ProjectState {
	out := p
	out.Rooms = make([]Room, len(p.Rooms))
	for i, r := range p.Rooms {
		out.Rooms[i] = r
		out.Rooms[i].Items = append([]PlacedItem(nil), r.Items...)
	}
	out.GeneratedDesigns = append([]GeneratedDesign(nil), p.GeneratedDesigns...)
	out.SelectedMaterialIDs = append([]string(nil), p.SelectedMaterialIDs...)
	return out
}

// Room returns a pointer to the room with the given ID.
func (p *ProjectState) Room(id string) (*Room, bool) {
	for i := range p.Rooms {
		if p.Rooms[i].ID == id {
			return &p.Rooms[i], true
		}
	}
	return nil, false
}

// TotalArea sums the floor area of every room.
func (p ProjectState) TotalArea() float64 {
	var total float64
	for _, r := range p.Rooms {
		total += r.Area()
	}
	return total
}

// IsSelected reports whether a material ID is in the selection set.
func (p ProjectState) IsSelected(materialID string) bool {
	for _, id := range p.SelectedMaterialIDs {
		if id == materialID {
			return true
		}
	}
	return false
}
