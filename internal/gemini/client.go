// Package gemini is the advisory gateway: a thin HTTP client for the
// Gemini generateContent API. Visual generation fails hard; advice
// and budget analysis degrade to fallback values so the rest of the
// application renders normally.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the public Generative Language endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/"

	visualModel = "gemini-2.5-flash-image"
	textModel   = "gemini-3-flash-preview"

	// AdviceFallback replaces the advice text whenever the gateway
	// call fails. Advice failures are never surfaced as errors.
	AdviceFallback = "AI advice is unavailable right now."
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// BudgetItem is one bill-of-materials row forwarded for analysis.
type BudgetItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// BudgetAnalysis is the structured result of a budget review. A nil
// analysis means "not yet analyzed", never an error state.
type BudgetAnalysis struct {
	Summary     string   `json:"analysis"`
	Suggestions []string `json:"suggestions"`
}

func (c *Client) generateContent(ctx context.Context, model string, reqBody generateRequest) (*generateResponse, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.baseURL, "/") + "/models/" + model + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generateContent failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result generateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// GenerateVisual renders an interior-design visual for the prompt and
// returns it as a data URL. A provider failure or a response without
// an image part is a hard error; the caller records nothing on
// failure.
func (c *Client) GenerateVisual(ctx context.Context, prompt string) (string, error) {
	framed := "High quality interior design rendering, professional photography, architectural visualization: " + prompt

	result, err := c.generateContent(ctx, visualModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: framed}}}},
	})
	if err != nil {
		return "", fmt.Errorf("visual generation failed: %w", err)
	}

	for _, cand := range result.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return "data:image/png;base64," + p.InlineData.Data, nil
			}
		}
	}
	return "", fmt.Errorf("visual generation failed: no image data in response")
}

// GetAdvice asks for structured design guidance on the project. Fails
// soft: any error is logged and the fixed fallback string is returned.
func (c *Client) GetAdvice(ctx context.Context, projectContext string) string {
	prompt := fmt.Sprintf(
		"As a senior interior designer, provide structured advice for this project: %s. "+
			"Cover lighting, spatial layout and color scheme. Respond in clear Markdown.",
		projectContext)

	result, err := c.generateContent(ctx, textModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		log.Warn().Err(err).Msg("design advice request failed, using fallback")
		return AdviceFallback
	}

	for _, cand := range result.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	log.Warn().Msg("design advice response contained no text, using fallback")
	return AdviceFallback
}

var budgetAnalysisSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"analysis": {"type": "STRING", "description": "overall budget assessment"},
		"suggestions": {
			"type": "ARRAY",
			"items": {"type": "STRING"},
			"description": "specific savings or upgrade suggestions"
		}
	},
	"required": ["analysis", "suggestions"]
}`)

// AnalyzeBudget reviews the bill of materials and suggests where to
// save or invest. Fails soft: any error yields nil, which callers
// treat as "not yet analyzed".
func (c *Client) AnalyzeBudget(ctx context.Context, items []BudgetItem) *BudgetAnalysis {
	rows := make([]string, len(items))
	for i, it := range items {
		rows[i] = fmt.Sprintf("%s: %g x %.2f", it.Name, it.Quantity, it.Price)
	}
	prompt := fmt.Sprintf(
		"Analyze this renovation budget and suggest where money could be saved or better invested:\n%s\nGive 3 concrete suggestions.",
		strings.Join(rows, "\n"))

	result, err := c.generateContent(ctx, textModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   budgetAnalysisSchema,
		},
	})
	if err != nil {
		log.Warn().Err(err).Msg("budget analysis request failed")
		return nil
	}

	for _, cand := range result.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text == "" {
				continue
			}
			var analysis BudgetAnalysis
			if err := json.Unmarshal([]byte(p.Text), &analysis); err != nil {
				log.Warn().Err(err).Msg("budget analysis response is not valid JSON")
				return nil
			}
			return &analysis
		}
	}
	return nil
}
