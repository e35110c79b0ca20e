// Package budget derives a priced bill of materials from the current
// project and the materials catalog.
package budget

import (
	"zenhome-backend/internal/catalog"
	"zenhome-backend/internal/models"
)

// Compute prices the project's selected materials. Area-priced
// materials are billed against total floor area across every room;
// any other unit is billed flat at quantity 1 regardless of how many
// items are actually placed. Selected IDs missing from the catalog
// are skipped. Pure function: no caching, no side effects, an empty
// selection yields a zero total.
func Compute(project models.ProjectState, cat *catalog.Catalog) models.BudgetResponse {
	totalArea := project.TotalArea()

	lines := make([]models.BudgetLine, 0, len(project.SelectedMaterialIDs))
	var grandTotal float64
	for _, id := range project.SelectedMaterialIDs {
		m, ok := cat.Get(id)
		if !ok {
			continue
		}
		qty := 1.0
		if m.PricedByArea() {
			qty = totalArea
		}
		line := models.BudgetLine{
			MaterialID: m.ID,
			Name:       m.Name,
			Category:   m.Category,
			Unit:       m.Unit,
			UnitPrice:  m.Price,
			Quantity:   qty,
			Total:      qty * m.Price,
		}
		grandTotal += line.Total
		lines = append(lines, line)
	}

	return models.BudgetResponse{
		TotalArea:  totalArea,
		Lines:      lines,
		GrandTotal: grandTotal,
	}
}
