package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VinodVen/growthai/pkg/ai"
)

func newServer(t *testing.T, status int, body string, seen *map[string]interface{}) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if seen != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIClient_Complete(t *testing.T) {
	var seen map[string]interface{}
	srv := newServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "**Happy birthday!**"}, "finish_reason": "stop"}]
	}`, &seen)

	client := ai.NewOpenAIClient("test-key", "gpt-4o-mini", srv.URL)
	out, err := client.Complete(context.Background(), ai.CompletionRequest{
		System: "You are a marketing assistant.",
		Prompt: "Write a birthday promotion.",
	})
	require.NoError(t, err)
	assert.Equal(t, "**Happy birthday!**", out)

	assert.Equal(t, "gpt-4o-mini", seen["model"])
	messages, ok := seen["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]interface{})["role"])
	assert.Equal(t, "user", messages[1].(map[string]interface{})["role"])
}

func TestOpenAIClient_APIError(t *testing.T) {
	srv := newServer(t, http.StatusUnauthorized, `{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`, nil)

	client := ai.NewOpenAIClient("test-key", "gpt-4o-mini", srv.URL)
	_, err := client.Complete(context.Background(), ai.CompletionRequest{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestOpenAIClient_EmptyChoices(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"id": "chatcmpl-2", "choices": []}`, nil)

	client := ai.NewOpenAIClient("test-key", "gpt-4o-mini", srv.URL)
	_, err := client.Complete(context.Background(), ai.CompletionRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, ai.ErrEmptyCompletion)
}

func TestOpenAIClient_NotConfigured(t *testing.T) {
	client := ai.NewOpenAIClient("", "gpt-4o-mini", "")
	_, err := client.Complete(context.Background(), ai.CompletionRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, ai.ErrNotConfigured)
}
