package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

const chatCompletionsPath = "/chat/completions"

// EmbeddingClient computes text embeddings through the OpenAI embeddings API.
type EmbeddingClient struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// NewEmbeddingClient constructs an embeddings client. chatURL is the
// configured chat-completions endpoint; the embeddings endpoint is derived
// from it so a single OPENAI_API_URL override covers both.
func NewEmbeddingClient(apiKey, model, chatURL string, timeout time.Duration) (*EmbeddingClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("EMBEDDING_MODEL is required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &EmbeddingClient{
		apiKey: apiKey,
		model:  model,
		apiURL: embeddingsURL(chatURL),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func embeddingsURL(chatURL string) string {
	trimmed := strings.TrimSpace(chatURL)
	if trimmed == "" {
		trimmed = defaultAPIURL
	}
	if strings.HasSuffix(trimmed, chatCompletionsPath) {
		return strings.TrimSuffix(trimmed, chatCompletionsPath) + "/embeddings"
	}
	return strings.TrimSuffix(trimmed, "/") + "/embeddings"
}

type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Embed returns one vector per input, in input order.
func (c *EmbeddingClient) Embed(ctx context.Context, inputs []string) ([][]float64, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	payload, err := json.Marshal(embeddingRequest{Model: c.model, Input: inputs})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed embeddingResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("openai embeddings parse: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("openai embeddings error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai embeddings status %d", resp.StatusCode)
	}
	if len(parsed.Data) != len(inputs) {
		return nil, fmt.Errorf("openai embeddings count mismatch: got %d, want %d", len(parsed.Data), len(inputs))
	}

	sort.Slice(parsed.Data, func(i, j int) bool { return parsed.Data[i].Index < parsed.Data[j].Index })
	out := make([][]float64, len(parsed.Data))
	for i, d := range parsed.Data {
		out[i] = d.Embedding
	}
	return out, nil
}
