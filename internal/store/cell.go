package store

import (
	"context"
	"fmt"
	"sync"

	"zenhome-backend/internal/models"
)

// Cell holds the current project snapshot and serializes every state
// transition through a pure transform plus a write-through save. A
// failed save leaves the published snapshot untouched, so readers
// never observe a state that was not persisted.
type Cell struct {
	mu      sync.RWMutex
	current models.ProjectState
	backend ProjectStore
}

// NewCell restores the project from the backing store, falling back
// to the default project when nothing valid is stored.
func NewCell(ctx context.Context, backend ProjectStore) (*Cell, error) {
	loaded, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	current := DefaultProject()
	if loaded != nil {
		current = *loaded
	}
	return &Cell{current: current, backend: backend}, nil
}

// Current returns a deep copy of the published snapshot.
func (c *Cell) Current() models.ProjectState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.Clone()
}

// Update applies a pure transform to a copy of the current snapshot,
// saves the result write-through, and publishes it only if the save
// succeeded.
func (c *Cell) Update(ctx context.Context, transform func(models.ProjectState) (models.ProjectState, error)) (models.ProjectState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := transform(c.current.Clone())
	if err != nil {
		return models.ProjectState{}, err
	}
	if err := c.backend.Save(ctx, next); err != nil {
		return models.ProjectState{}, fmt.Errorf("failed to save project: %w", err)
	}
	c.current = next
	return next.Clone(), nil
}

// Reset replaces the project with the default document and persists
// it.
func (c *Cell) Reset(ctx context.Context) (models.ProjectState, error) {
	return c.Update(ctx, func(models.ProjectState) (models.ProjectState, error) {
		return DefaultProject(), nil
	})
}
