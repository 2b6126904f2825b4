package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// AgentResult is the invocation envelope returned by the agent platform.
// Response stays opaque here; only the digest normalizer looks inside it.
type AgentResult struct {
	Success  bool            `json:"success"`
	Response json.RawMessage `json:"response,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// AgentClient calls the remote multi-agent platform over HTTP.
type AgentClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewAgentClient(baseURL, apiKey string) *AgentClient {
	return &AgentClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		// No client-side timeout: a digest run can take minutes while the
		// manager agent fans out to sub-agents. The caller's context bounds
		// the call.
		httpClient: &http.Client{},
	}
}

// Invoke sends a natural-language instruction to the given agent and returns
// the platform's result envelope.
func (c *AgentClient) Invoke(ctx context.Context, message, agentID string) (*AgentResult, error) {
	body, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return nil, fmt.Errorf("failed to encode agent request: %w", err)
	}

	url := fmt.Sprintf("%s/agents/%s/invoke", c.baseURL, agentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build agent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("agent request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("agent platform returned status %d", resp.StatusCode)
	}

	var result AgentResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode agent result: %w", err)
	}
	return &result, nil
}
