package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuggingFaceProvider_Complete(t *testing.T) {
	var got hfRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/mistralai/Mistral-7B-Instruct-v0.3", r.URL.Path)
		assert.Equal(t, "Bearer hf-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(`[{"generated_text":" Gymlingoo \n"}]`))
	}))
	defer server.Close()

	p := NewHuggingFaceProvider(HuggingFaceConfig{
		APIKey:  "hf-test",
		BaseURL: server.URL,
		Model:   DefaultHuggingFaceModels[0],
	})
	reply, err := p.Complete(context.Background(), []Message{
		{Role: RoleSystem, Content: "be brief"},
		{Role: RoleUser, Content: "classify"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Gymlingoo", reply)
	assert.Equal(t, "SYSTEM: be brief\nUSER: classify\nASSISTANT:", got.Inputs)
	assert.Equal(t, 1024, got.Parameters.MaxNewTokens)
	assert.False(t, got.Parameters.ReturnFullText)
}

func TestExtractGeneratedText(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "list", body: `[{"generated_text":"Work"}]`, want: "Work"},
		{name: "object", body: `{"generated_text":"Work"}`, want: "Work"},
		{name: "unknown shape", body: `{"error":"loading"}`, want: `{"error":"loading"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractGeneratedText([]byte(tt.body)))
		})
	}
}

func TestCleanGeneratedText(t *testing.T) {
	assert.Equal(t, "Sleep", cleanGeneratedText("USER: classify\nASSISTANT: Sleep\n"))
	assert.Equal(t, "Break", cleanGeneratedText("ASSISTANT: no\nASSISTANT: Break"))
	assert.Equal(t, "Work", cleanGeneratedText("  Work  "))
}

func TestHuggingFaceProvider_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	p := NewHuggingFaceProvider(HuggingFaceConfig{APIKey: "k", BaseURL: server.URL, Model: "m"})
	_, err := p.Complete(context.Background(), nil)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
}
