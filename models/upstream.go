package models

import "encoding/json"

// UpstreamResponse is the envelope returned by the extraction service. Only
// the output/content/text path is consumed; everything else is kept loose so
// new upstream fields never break deserialization.
type UpstreamResponse struct {
	ID        string               `json:"id"`
	Object    string               `json:"object"`
	CreatedAt int64                `json:"created_at"`
	Status    string               `json:"status"`
	Model     string               `json:"model"`
	Error     json.RawMessage      `json:"error,omitempty"`
	Output    []UpstreamOutputItem `json:"output"`
}

type UpstreamOutputItem struct {
	ID      string                `json:"id"`
	Type    string                `json:"type"`
	Status  string                `json:"status"`
	Role    string                `json:"role,omitempty"`
	Content []UpstreamContentItem `json:"content"`
}

type UpstreamContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
