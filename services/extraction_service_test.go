package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NascimentoLucas/GroceryAPI/config"
)

func testExtractionConfig(url string) config.ExtractionConfig {
	return config.ExtractionConfig{
		URL:     url,
		APIKey:  "test-secret",
		Model:   "text-extract-1",
		Prompt:  "Extract the recipe from the text below.",
		Timeout: 5 * time.Second,
	}
}

func TestExtractSendsModelAndPromptedInput(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"output":[]}`))
	}))
	defer srv.Close()

	svc := NewExtractionService(testExtractionConfig(srv.URL))
	respText, err := svc.Extract(context.Background(), "2 eggs and a cup of rice")
	require.NoError(t, err)
	assert.Equal(t, `{"output":[]}`, respText)

	assert.Equal(t, "Bearer test-secret", gotAuth)
	assert.Contains(t, gotContentType, "application/json")

	var payload struct {
		Model string `json:"model"`
		Input string `json:"input"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, "text-extract-1", payload.Model)
	assert.Equal(t, "Extract the recipe from the text below.\n2 eggs and a cup of rice", payload.Input)
}

func TestExtractDoesNotTransformInputText(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	svc := NewExtractionService(testExtractionConfig(srv.URL))
	_, err := svc.Extract(context.Background(), "  spaced  \n\ttext  ")
	require.NoError(t, err)

	var payload struct {
		Input string `json:"input"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, "Extract the recipe from the text below.\n  spaced  \n\ttext  ", payload.Input)
}

func TestExtractUpstreamErrorCarriesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("model overloaded"))
	}))
	defer srv.Close()

	svc := NewExtractionService(testExtractionConfig(srv.URL))
	respText, err := svc.Extract(context.Background(), "anything")
	assert.Empty(t, respText)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusServiceUnavailable, upstreamErr.StatusCode)
	assert.Equal(t, "model overloaded", upstreamErr.Body)
}

func TestExtractHonorsCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewExtractionService(testExtractionConfig(srv.URL))
	_, err := svc.Extract(ctx, "anything")
	require.Error(t, err)

	var upstreamErr *UpstreamError
	assert.False(t, errors.As(err, &upstreamErr), "cancellation is a transport failure, not an upstream status")
}
