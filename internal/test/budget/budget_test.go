package budget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zenhome-backend/internal/budget"
	"zenhome-backend/internal/catalog"
	"zenhome-backend/internal/models"
	"zenhome-backend/internal/store"
)

func TestCompute_AreaVersusFlatPricing(t *testing.T) {
	// default project: one 6x8 room (48 sqm), mat-1 priced by area at
	// 458, mat-3 flat at 120
	b := budget.Compute(store.DefaultProject(), catalog.Default())

	assert.Equal(t, 48.0, b.TotalArea)
	require.Len(t, b.Lines, 2)

	assert.Equal(t, "mat-1", b.Lines[0].MaterialID)
	assert.Equal(t, 48.0, b.Lines[0].Quantity)
	assert.Equal(t, 48*458.0, b.Lines[0].Total)

	assert.Equal(t, "mat-3", b.Lines[1].MaterialID)
	assert.Equal(t, 1.0, b.Lines[1].Quantity)
	assert.Equal(t, 120.0, b.Lines[1].Total)

	assert.Equal(t, 48*458.0+120.0, b.GrandTotal)
}

func TestCompute_AreaSpansAllRooms(t *testing.T) {
	project := store.DefaultProject()
	project.Rooms = append(project.Rooms, models.Room{
		ID: "room-2", Name: "Bedroom", Type: "bedroom", Width: 4, Length: 5,
	})

	b := budget.Compute(project, catalog.Default())

	assert.Equal(t, 68.0, b.TotalArea)
	assert.Equal(t, 68.0, b.Lines[0].Quantity)
}

func TestCompute_SkipsDanglingSelections(t *testing.T) {
	project := store.DefaultProject()
	project.SelectedMaterialIDs = []string{"mat-1", "mat-removed", "mat-3"}

	b := budget.Compute(project, catalog.Default())

	require.Len(t, b.Lines, 2)
	assert.Equal(t, 48*458.0+120.0, b.GrandTotal)
}

func TestCompute_EmptySelection(t *testing.T) {
	project := store.DefaultProject()
	project.SelectedMaterialIDs = nil

	b := budget.Compute(project, catalog.Default())

	assert.Empty(t, b.Lines)
	assert.Equal(t, 0.0, b.GrandTotal)
	assert.Equal(t, 48.0, b.TotalArea)
}
