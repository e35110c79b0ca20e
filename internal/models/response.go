package models

type HealthResponse struct {
	Status string `json:"status"`
}

type MaterialListResponse struct {
	Materials  []Material `json:"materials"`
	Categories []Category `json:"categories"`
}

type ProjectResponse struct {
	Project ProjectState `json:"project"`
}

type RoomResponse struct {
	Room Room `json:"room"`
}

type ItemResponse struct {
	RoomID string     `json:"room_id"`
	Item   PlacedItem `json:"item"`
}

type SelectionResponse struct {
	SelectedMaterialIDs []string `json:"selected_material_ids"`
	Selected            bool     `json:"selected"`
}

// BudgetLine is one priced row of the bill of materials.
type BudgetLine struct {
	MaterialID string   `json:"material_id"`
	Name       string   `json:"name"`
	Category   Category `json:"category"`
	Unit       Unit     `json:"unit"`
	UnitPrice  float64  `json:"unit_price"`
	Quantity   float64  `json:"quantity"`
	Total      float64  `json:"total"`
}

type BudgetResponse struct {
	TotalArea  float64      `json:"total_area"`
	Lines      []BudgetLine `json:"lines"`
	GrandTotal float64      `json:"grand_total"`
}

type DesignResponse struct {
	Design GeneratedDesign `json:"design"`
}

type DesignListResponse struct {
	Designs []GeneratedDesign `json:"designs"`
}

type PromptSuggestion struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

type SuggestionListResponse struct {
	Suggestions []PromptSuggestion `json:"suggestions"`
}

type AdviceResponse struct {
	Advice string `json:"advice"`
}

// BudgetAnalysisResponse wraps the advisory result. Analysis is null
// when the gateway degraded; clients treat that as "not yet analyzed".
type BudgetAnalysisResponse struct {
	Analysis *BudgetAnalysis `json:"analysis"`
}

type BudgetAnalysis struct {
	Summary     string   `json:"analysis"`
	Suggestions []string `json:"suggestions"`
}

type SessionResponse struct {
	ActiveRoomID    string `json:"active_room_id,omitempty"`
	Tool            string `json:"tool"`
	ArmedMaterialID string `json:"armed_material_id,omitempty"`
	SelectedItemID  string `json:"selected_item_id,omitempty"`
}

type ModelAssetResponse struct {
	RoomID   string `json:"room_id"`
	ItemID   string `json:"item_id"`
	ModelURL string `json:"model_url"`
}
