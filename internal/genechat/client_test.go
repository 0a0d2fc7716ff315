package genechat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainHubsEmptyListSkipsRemoteCall(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "key", BaseURL: srv.URL})

	got := c.ExplainHubs(context.Background(), nil)
	assert.Equal(t, NoHubsMessage, got)
	assert.Zero(t, calls, "empty hub list must not hit the network")
}

func TestExplainHubs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4", req.Model)
		assert.Equal(t, 500, req.MaxTokens)
		assert.Equal(t, 0.7, req.Temperature)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Contains(t, req.Messages[1].Content, "TP53, MDM2")

		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  TP53 is the guardian of the genome.  "}}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})

	got := c.ExplainHubs(context.Background(), []string{"TP53", "MDM2"})
	assert.Equal(t, "TP53 is the guardian of the genome.", got, "response must be trimmed")
}

func TestExplainHubsAPIErrorSurfacesInline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid API key"}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "bad", BaseURL: srv.URL})

	got := c.ExplainHubs(context.Background(), []string{"TP53"})
	assert.True(t, strings.HasPrefix(got, "GeneChat error: "), "got %q", got)
	assert.Contains(t, got, "Invalid API key")
}

func TestExplainHubsNetworkErrorSurfacesInline(t *testing.T) {
	c := NewClient(Config{APIKey: "key", BaseURL: "http://127.0.0.1:1"})

	got := c.ExplainHubs(context.Background(), []string{"TP53"})
	assert.True(t, strings.HasPrefix(got, "GeneChat error: "), "got %q", got)
}
