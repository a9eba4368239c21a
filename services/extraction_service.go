package services

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/NascimentoLucas/GroceryAPI/config"
	"github.com/NascimentoLucas/GroceryAPI/utils"
)

// ExtractionService sends free text to the external extraction API and
// returns the raw response body for parsing.
type ExtractionService struct {
	cfg    config.ExtractionConfig
	client *resty.Client
}

func NewExtractionService(cfg config.ExtractionConfig) *ExtractionService {
	client := resty.New().
		SetBaseURL(cfg.URL).
		SetAuthToken(cfg.APIKey).
		SetTimeout(cfg.Timeout)

	return &ExtractionService{cfg: cfg, client: client}
}

type extractionRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

// UpstreamError reports a non-2xx answer from the extraction service. The
// body is kept whole here; the HTTP layer excerpts it before responding.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream extraction failed with status %d", e.StatusCode)
}

// Extract posts {model, input} with the configured prompt prepended to the
// caller text. Honors ctx cancellation; nothing has been persisted by the
// time this returns.
func (s *ExtractionService) Extract(ctx context.Context, text string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(extractionRequest{
			Model: s.cfg.Model,
			Input: s.cfg.BuildInput(text),
		}).
		Post("")
	if err != nil {
		return "", fmt.Errorf("extraction request failed: %w", err)
	}

	if resp.IsError() {
		utils.Logger.Warn("extraction service returned error status",
			zap.Int("status", resp.StatusCode()),
			zap.String("model", s.cfg.Model),
		)
		return "", &UpstreamError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	return resp.String(), nil
}
