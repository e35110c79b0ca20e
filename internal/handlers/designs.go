package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"zenhome-backend/internal/gemini"
	"zenhome-backend/internal/models"
	"zenhome-backend/internal/planner"
	"zenhome-backend/internal/store"
)

type DesignsHandler struct {
	cell   *store.Cell
	engine *planner.Engine
	gemini *gemini.Client

	// generating is the advisory in-flight flag: one visual
	// generation at a time, concurrent requests are rejected rather
	// than queued.
	generating atomic.Bool
}

func NewDesignsHandler(cell *store.Cell, engine *planner.Engine, client *gemini.Client) *DesignsHandler {
	return &DesignsHandler{cell: cell, engine: engine, gemini: client}
}

// promptSuggestions are the designer's preset prompts.
var promptSuggestions = []models.PromptSuggestion{
	{Label: "Japandi", Text: "Minimal japandi style, neutral palette, light wood, natural textures, clean lines."},
	{Label: "Industrial Loft", Text: "Modern industrial loft, exposed brick walls, high ceilings, large metal-framed windows, concrete floors."},
	{Label: "Mid-Century", Text: "Mid-century modern living room, walnut furniture, tapered legs, mustard and olive accents."},
	{Label: "Scandinavian", Text: "Bright scandinavian interior, white walls, cozy atmosphere, pale oak floors, minimal furniture."},
	{Label: "Biophilic", Text: "Biophilic interior design, lush indoor plants, natural stone wall, skylights, organic shapes."},
	{Label: "Marble Luxury", Text: "High-end luxury modern kitchen, white marble waterfall island, gold fixtures, integrated smart appliances."},
	{Label: "Cinematic Light", Text: "Dramatic cinematic lighting, warm ambient glow, architectural shadows, professional photography style."},
	{Label: "Moody Study", Text: "Academia-style home office, deep blue walls, leather chair, vintage desk, soft lamp light."},
}

// Generate godoc
// @Summary     Generate a design visual
// @Description Renders an AI visual for the prompt and prepends it to the project's gallery. A provider failure surfaces as an error and records nothing; a second request while one is in flight is rejected.
// @Tags        designs
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.GenerateDesignRequest true "Design prompt"
// @Success     201 {object} models.DesignResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /project/designs [post]
func (h *DesignsHandler) Generate(c *gin.Context) {
	var req models.GenerateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "prompt must not be empty"})
		return
	}

	if !h.generating.CompareAndSwap(false, true) {
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "a design is already being generated"})
		return
	}
	defer h.generating.Store(false)

	imageURL, err := h.gemini.GenerateVisual(c.Request.Context(), req.Prompt)
	if err != nil {
		log.Error().Err(err).Msg("design generation failed")
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "design generation failed, please try again"})
		return
	}

	design := models.GeneratedDesign{
		ID:        uuid.New().String(),
		Prompt:    req.Prompt,
		ImageURL:  imageURL,
		Timestamp: time.Now().UnixMilli(),
	}

	_, err = h.cell.Update(c.Request.Context(), func(state models.ProjectState) (models.ProjectState, error) {
		return h.engine.PrependDesign(state, design), nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to save design", Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.DesignResponse{Design: design})
}

// List godoc
// @Summary     List generated designs, newest first
// @Tags        designs
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.DesignListResponse
// @Router      /project/designs [get]
func (h *DesignsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, models.DesignListResponse{Designs: h.cell.Current().GeneratedDesigns})
}

// Suggestions godoc
// @Summary     List prompt presets
// @Tags        designs
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.SuggestionListResponse
// @Router      /project/designs/suggestions [get]
func (h *DesignsHandler) Suggestions(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuggestionListResponse{Suggestions: promptSuggestions})
}

// Advice godoc
// @Summary     Get AI design advice for the project
// @Description Never fails: when the gateway is unavailable a fixed fallback string is returned instead.
// @Tags        designs
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.AdviceResponse
// @Router      /project/advice [post]
func (h *DesignsHandler) Advice(c *gin.Context) {
	project := h.cell.Current()

	names := make([]string, len(project.Rooms))
	for i, r := range project.Rooms {
		names[i] = r.Name
	}
	summary := fmt.Sprintf("Project: %s. Rooms: %s", project.Name, strings.Join(names, ", "))

	advice := h.gemini.GetAdvice(c.Request.Context(), summary)
	c.JSON(http.StatusOK, models.AdviceResponse{Advice: advice})
}
