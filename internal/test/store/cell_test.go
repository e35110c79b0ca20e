package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zenhome-backend/internal/models"
	"zenhome-backend/internal/store"
)

// failingStore rejects every save.
type failingStore struct {
	store.ProjectStore
}

func (f *failingStore) Save(ctx context.Context, state models.ProjectState) error {
	return errors.New("disk full")
}

func TestNewCell_EmptyStoreYieldsDefaultProject(t *testing.T) {
	cell, err := store.NewCell(context.Background(), store.NewMemoryStore())
	require.NoError(t, err)

	project := cell.Current()
	assert.Equal(t, "proj-1", project.ID)
	assert.Equal(t, "My Dream Home", project.Name)
	require.Len(t, project.Rooms, 1)
	assert.Equal(t, "Main Living Room", project.Rooms[0].Name)
	assert.Equal(t, []string{"mat-1", "mat-3"}, project.SelectedMaterialIDs)
}

func TestNewCell_CorruptSnapshotFallsBackToDefault(t *testing.T) {
	backend := store.NewMemoryStore()
	backend.Seed([]byte(`{not json`))

	cell, err := store.NewCell(context.Background(), backend)
	require.NoError(t, err)
	assert.Equal(t, "proj-1", cell.Current().ID)
}

func TestNewCell_RestoresStoredSnapshot(t *testing.T) {
	stored := store.DefaultProject()
	stored.Name = "Beach House"
	raw, err := json.Marshal(stored)
	require.NoError(t, err)

	backend := store.NewMemoryStore()
	backend.Seed(raw)

	cell, err := store.NewCell(context.Background(), backend)
	require.NoError(t, err)
	assert.Equal(t, "Beach House", cell.Current().Name)
}

func TestCell_UpdatePersistsAcrossRestart(t *testing.T) {
	backend := store.NewMemoryStore()
	cell, err := store.NewCell(context.Background(), backend)
	require.NoError(t, err)

	_, err = cell.Update(context.Background(), func(state models.ProjectState) (models.ProjectState, error) {
		state.Name = "Renamed"
		return state, nil
	})
	require.NoError(t, err)

	// a new cell over the same backend sees the saved state
	restarted, err := store.NewCell(context.Background(), backend)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", restarted.Current().Name)
}

func TestCell_TransformErrorLeavesStateUntouched(t *testing.T) {
	cell, err := store.NewCell(context.Background(), store.NewMemoryStore())
	require.NoError(t, err)

	_, err = cell.Update(context.Background(), func(state models.ProjectState) (models.ProjectState, error) {
		return models.ProjectState{}, errors.New("boom")
	})
	assert.Error(t, err)
	assert.Equal(t, "proj-1", cell.Current().ID)
}

func TestCell_FailedSaveIsNotPublished(t *testing.T) {
	cell, err := store.NewCell(context.Background(), &failingStore{store.NewMemoryStore()})
	require.NoError(t, err)

	_, err = cell.Update(context.Background(), func(state models.ProjectState) (models.ProjectState, error) {
		state.Name = "Never Visible"
		return state, nil
	})
	require.Error(t, err)
	assert.Equal(t, "My Dream Home", cell.Current().Name)
}

func TestCell_CurrentReturnsIsolatedCopy(t *testing.T) {
	cell, err := store.NewCell(context.Background(), store.NewMemoryStore())
	require.NoError(t, err)

	copy1 := cell.Current()
	copy1.Rooms[0].Name = "Mutated"

	assert.Equal(t, "Main Living Room", cell.Current().Rooms[0].Name)
}

func TestCell_Reset(t *testing.T) {
	cell, err := store.NewCell(context.Background(), store.NewMemoryStore())
	require.NoError(t, err)

	_, err = cell.Update(context.Background(), func(state models.ProjectState) (models.ProjectState, error) {
		state.Name = "Customized"
		state.SelectedMaterialIDs = nil
		return state, nil
	})
	require.NoError(t, err)

	reset, err := cell.Reset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "My Dream Home", reset.Name)
	assert.Equal(t, []string{"mat-1", "mat-3"}, reset.SelectedMaterialIDs)
}
