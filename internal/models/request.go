package models

type CreateRoomRequest struct {
	Name   string  `json:"name" example:"Master Bedroom"`
	Type   string  `json:"type" example:"bedroom"`
	Width  float64 `json:"width" example:"4.5"`
	Length float64 `json:"length" example:"3.8"`
}

type UpdateRoomRequest struct {
	Width  float64 `json:"width" example:"5"`
	Length float64 `json:"length" example:"6"`
}

// PlaceItemRequest carries the raw canvas click. Screen coordinates
// are pixels; the engine converts them to grid units.
type PlaceItemRequest struct {
	ScreenX   float64 `json:"screen_x" example:"125"`
	ScreenY   float64 `json:"screen_y" example:"75"`
	GridScale float64 `json:"grid_scale,omitempty" example:"50"`
}

type RotateItemRequest struct {
	Delta int `json:"delta" example:"-45"`
}

type GenerateDesignRequest struct {
	Prompt string `json:"prompt" example:"minimal japandi living room with large windows"`
}

type SetToolRequest struct {
	Tool       string `json:"tool" example:"place"`
	MaterialID string `json:"material_id,omitempty" example:"mat-5"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
