package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIChat_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-test", body["model"])

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-test",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"ok\":true}"}, "finish_reason": "stop"}]
		}`)
	}))
	defer server.Close()

	o := NewOpenAI("sk-test", server.URL+"/v1", "gpt-test")
	text, err := o.Chat(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, text)
	assert.Equal(t, "openai", o.Name())
	assert.Equal(t, "gpt-test", o.Model())
}

func TestOpenAIChat_DefaultModel(t *testing.T) {
	assert.Equal(t, DefaultOpenAIModel, NewOpenAI("sk", "", "").Model())
}

func TestOpenAIChat_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":{"message":"internal","type":"server_error"}}`)
	}))
	defer server.Close()

	_, err := NewOpenAI("sk-test", server.URL+"/v1", "").Chat(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestOpenAIChat_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"x","object":"chat.completion","choices":[]}`)
	}))
	defer server.Close()

	_, err := NewOpenAI("sk-test", server.URL+"/v1", "").Chat(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}
