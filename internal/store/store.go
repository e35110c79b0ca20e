// Package store persists the project document as a whole-snapshot
// JSON value under a single fixed key and owns the in-process copy of
// the current project.
package store

import (
	"context"

	"zenhome-backend/internal/models"
)

// SnapshotKey is the fixed slot every project snapshot is written to.
// The value carries no schema version; malformed data is discarded in
// favor of the default project.
const SnapshotKey = "zenhome:project"

// ProjectStore loads and saves the whole project document.
//
// Load fails soft: absent or unparseable data yields (nil, nil) after
// logging, never an error the caller has to surface. Save writes the
// full serialized snapshot atomically or not at all.
type ProjectStore interface {
	Load(ctx context.Context) (*models.ProjectState, error)
	Save(ctx context.Context, state models.ProjectState) error
}

// DefaultProject is the hardcoded fallback used when nothing valid is
// stored: one 6×8 living room and two pre-selected materials.
func DefaultProject() models.ProjectState {
	return models.ProjectState{
		ID:   "proj-1",
		Name: "My Dream Home",
		Rooms: []models.Room{
			{
				ID:     "room-1",
				Name:   "Main Living Room",
				Type:   "living",
				Width:  6,
				Length: 8,
				Items:  []models.PlacedItem{},
			},
		},
		GeneratedDesigns:    []models.GeneratedDesign{},
		SelectedMaterialIDs: []string{"mat-1", "mat-3"},
	}
}
