package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"zenhome-backend/internal/planner"
)

func TestScreenToGrid(t *testing.T) {
	assert.Equal(t, 2.5, planner.ScreenToGrid(125, 50))
	assert.Equal(t, 1.5, planner.ScreenToGrid(75, 50))
	assert.Equal(t, 0.0, planner.ScreenToGrid(0, 50))
}

func TestScreenToGrid_SnapsToTenth(t *testing.T) {
	// 123px at 50px/m is 2.46m, snapped to 2.5.
	assert.Equal(t, 2.5, planner.ScreenToGrid(123, 50))
	assert.Equal(t, 2.4, planner.ScreenToGrid(122, 50))
}

func TestScreenToGrid_InvalidScaleFallsBack(t *testing.T) {
	assert.Equal(t, 2.5, planner.ScreenToGrid(125, 0))
	assert.Equal(t, 2.5, planner.ScreenToGrid(125, -10))
}

func TestNormalizeRotation(t *testing.T) {
	assert.Equal(t, 0, planner.NormalizeRotation(0))
	assert.Equal(t, 45, planner.NormalizeRotation(45))
	assert.Equal(t, 0, planner.NormalizeRotation(360))
	assert.Equal(t, 315, planner.NormalizeRotation(-45))
	assert.Equal(t, 270, planner.NormalizeRotation(-90))
	assert.Equal(t, 10, planner.NormalizeRotation(730))
	assert.Equal(t, 350, planner.NormalizeRotation(-370))
}
