package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"zenhome-backend/internal/budget"
	"zenhome-backend/internal/catalog"
	"zenhome-backend/internal/gemini"
	"zenhome-backend/internal/models"
	"zenhome-backend/internal/store"
)

type BudgetHandler struct {
	cell    *store.Cell
	catalog *catalog.Catalog
	gemini  *gemini.Client
}

func NewBudgetHandler(cell *store.Cell, cat *catalog.Catalog, client *gemini.Client) *BudgetHandler {
	return &BudgetHandler{cell: cell, catalog: cat, gemini: client}
}

// Get godoc
// @Summary     Get the project budget
// @Description Prices the selected materials: area-priced entries against total floor area, everything else flat. Recomputed on every call.
// @Tags        budget
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.BudgetResponse
// @Router      /project/budget [get]
func (h *BudgetHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, budget.Compute(h.cell.Current(), h.catalog))
}

// Analyze godoc
// @Summary     Request an AI review of the budget
// @Description Forwards the bill of materials to the advisory gateway. A gateway failure is not an error: the analysis comes back null and clients treat that as "not yet analyzed".
// @Tags        budget
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.BudgetAnalysisResponse
// @Router      /project/budget/analysis [post]
func (h *BudgetHandler) Analyze(c *gin.Context) {
	b := budget.Compute(h.cell.Current(), h.catalog)

	items := make([]gemini.BudgetItem, len(b.Lines))
	for i, l := range b.Lines {
		items[i] = gemini.BudgetItem{Name: l.Name, Price: l.UnitPrice, Quantity: l.Quantity}
	}

	result := h.gemini.AnalyzeBudget(c.Request.Context(), items)
	if result == nil {
		c.JSON(http.StatusOK, models.BudgetAnalysisResponse{Analysis: nil})
		return
	}
	c.JSON(http.StatusOK, models.BudgetAnalysisResponse{
		Analysis: &models.BudgetAnalysis{
			Summary:     result.Summary,
			Suggestions: result.Suggestions,
		},
	})
}
