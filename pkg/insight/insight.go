// Package insight asks the hosted generative model for a structured
// reflection on a journal entry. Results are transient and never persisted.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/Arjun1106030909119/MindScribe/pkg/journal"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"

	// entries shorter than this are rejected before any network call
	minInputLength = 10
)

// ValidationError rejects analysis input before the collaborator is called.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AnalysisError is returned when the collaborator errors, answers with no
// text, or answers with text that is not the expected shape. No partial
// analysis is ever returned alongside one.
type AnalysisError struct {
	Message string
	Err     error
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("insight: %s: %v", e.Message, e.Err)
	}
	return "insight: " + e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// Client calls the generative model's generateContent endpoint with a JSON
// response schema so the reply is machine-readable.
type Client struct {
	BaseURL string
	APIKey  string
	Model   string

	client *http.Client
}

func New(apiKey, model string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		APIKey:  apiKey,
		Model:   model,
		client:  &http.Client{},
	}
}

// request/response wire shapes

type generateRequest struct {
	Contents         []content       `json:"contents"`
	GenerationConfig *generateConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateConfig struct {
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// responseSchema constrains the reply to exactly the four analysis fields.
var responseSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"summary":   {"type": "STRING"},
		"sentiment": {"type": "STRING"},
		"advice":    {"type": "STRING"},
		"keywords":  {"type": "ARRAY", "items": {"type": "STRING"}, "minItems": 3, "maxItems": 5}
	},
	"required": ["summary", "sentiment", "advice", "keywords"]
}`)

func prompt(text string) string {
	return fmt.Sprintf(`Analyze the following journal entry written by a user.
Provide a response in JSON format containing:
- summary: A 1-sentence summary of the entry.
- sentiment: The overall emotional tone (e.g., Hopeful, Anxious, Joyful).
- advice: A brief, supportive piece of advice or a relevant stoic/philosophical quote based on the content.
- keywords: An array of 3-5 tags representing the themes.

Journal Entry:
%q`, text)
}

// Analyze sends the entry text to the model and parses the structured
// reflection out of the reply.
func (c *Client) Analyze(ctx context.Context, text string) (*journal.Analysis, error) {
	if len(text) < minInputLength {
		return nil, &ValidationError{Message: "entry too short to analyze"}
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt(text)}}}},
		GenerationConfig: &generateConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema,
		},
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &AnalysisError{Message: "encoding request", Err: err}
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.BaseURL, c.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, &AnalysisError{Message: "building request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("insight: analysis request failed: %v", err)
		return nil, &AnalysisError{Message: "analysis request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &AnalysisError{Message: "reading response", Err: err}
	}

	out := generateResponse{}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &AnalysisError{Message: "unexpected response payload", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("model returned status %d", resp.StatusCode)
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		log.Printf("insight: %s", msg)
		return nil, &AnalysisError{Message: msg}
	}

	raw := ""
	if len(out.Candidates) > 0 && len(out.Candidates[0].Content.Parts) > 0 {
		raw = out.Candidates[0].Content.Parts[0].Text
	}
	if raw == "" {
		return nil, &AnalysisError{Message: "no response from model"}
	}

	analysis := &journal.Analysis{}
	if err := json.Unmarshal([]byte(raw), analysis); err != nil {
		return nil, &AnalysisError{Message: "response was not the expected shape", Err: err}
	}
	if !analysis.Complete() {
		return nil, &AnalysisError{Message: "response was missing required fields"}
	}
	return analysis, nil
}
