package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"zenhome-backend/internal/catalog"
	"zenhome-backend/internal/gemini"
	"zenhome-backend/internal/handlers"
	"zenhome-backend/internal/planner"
	"zenhome-backend/internal/store"
)

// testEnv wires the full route table over an in-memory store, the way
// main does, so handler tests exercise real state transitions.
type testEnv struct {
	router  *gin.Engine
	cell    *store.Cell
	session *planner.Session
}

func newTestEnv(t *testing.T, geminiBaseURL string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cell, err := store.NewCell(context.Background(), store.NewMemoryStore())
	require.NoError(t, err)

	cat := catalog.Default()
	engine := planner.New()
	session := planner.NewSession()
	client := gemini.NewClient(geminiBaseURL, "test-key")

	materialsHandler := handlers.NewMaterialsHandler(cat)
	projectHandler := handlers.NewProjectHandler(cell)
	roomsHandler := handlers.NewRoomsHandler(cell, engine, session)
	itemsHandler := handlers.NewItemsHandler(cell, engine, session, nil)
	selectionsHandler := handlers.NewSelectionsHandler(cell, engine)
	budgetHandler := handlers.NewBudgetHandler(cell, cat, client)
	designsHandler := handlers.NewDesignsHandler(cell, engine, client)
	sessionHandler := handlers.NewSessionHandler(session)

	router := gin.New()
	api := router.Group("/api/v1")
	api.GET("/materials", materialsHandler.List)
	api.GET("/materials/:material_id", materialsHandler.Get)
	api.GET("/project", projectHandler.Get)
	api.POST("/project/reset", projectHandler.Reset)
	api.POST("/project/rooms", roomsHandler.Create)
	api.PATCH("/project/rooms/:room_id", roomsHandler.UpdateDimensions)
	api.DELETE("/project/rooms/:room_id", roomsHandler.Delete)
	api.POST("/project/rooms/:room_id/items", itemsHandler.Place)
	api.POST("/project/rooms/:room_id/items/:item_id/rotate", itemsHandler.Rotate)
	api.DELETE("/project/rooms/:room_id/items/:item_id", itemsHandler.Remove)
	api.POST("/project/rooms/:room_id/items/:item_id/model", itemsHandler.AttachModel)
	api.POST("/project/selections/:material_id/toggle", selectionsHandler.Toggle)
	api.GET("/project/budget", budgetHandler.Get)
	api.POST("/project/budget/analysis", budgetHandler.Analyze)
	api.POST("/project/designs", designsHandler.Generate)
	api.GET("/project/designs", designsHandler.List)
	api.GET("/project/designs/suggestions", designsHandler.Suggestions)
	api.POST("/project/advice", designsHandler.Advice)
	api.GET("/session", sessionHandler.Get)
	api.PUT("/session/tool", sessionHandler.SetTool)
	api.POST("/session/selection/clear", sessionHandler.ClearSelection)

	return &testEnv{router: router, cell: cell, session: session}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
