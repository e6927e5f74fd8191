package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaCompleteSendsChatRequest(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"1. 안녕하십니까\n2. 반갑습니다"},"done":true}`))
	}))
	defer srv.Close()

	svc := NewOllamaService(srv.URL, "test-model", 5*time.Second)
	out, err := svc.Complete(context.Background(), Prompt{System: "sys", User: "usr"})

	require.NoError(t, err)
	assert.Equal(t, "1. 안녕하십니까\n2. 반갑습니다", out)
	assert.Equal(t, "test-model", got["model"])
	assert.Equal(t, false, got["stream"])
	messages := got["messages"].([]interface{})
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]interface{})["role"])
	assert.Equal(t, "usr", messages[1].(map[string]interface{})["content"])
}

func TestOllamaCompleteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewOllamaService(srv.URL, "missing", 5*time.Second).Complete(context.Background(), Prompt{})

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, ProviderOllama, upErr.Provider)
	assert.Equal(t, MsgOllamaFailed, upErr.Message)
}

func TestOllamaCompleteTimeoutSuggestsCommercialKey(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewOllamaService(srv.URL, "m", 50*time.Millisecond).Complete(context.Background(), Prompt{})

	msg, ok := UserMessage(err)
	require.True(t, ok)
	assert.Equal(t, MsgOllamaUnreachable, msg)
}

func TestOllamaCompleteConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewOllamaService(url, "m", time.Second).Complete(context.Background(), Prompt{})

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, MsgOllamaUnreachable, upErr.Message)
}

func TestOllamaCompleteCallerCancelledIsNotUnreachable(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewOllamaService(srv.URL, "m", time.Second).Complete(ctx, Prompt{})

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, MsgOllamaFailed, upErr.Message)
	assert.False(t, isConnectionError(fmt.Errorf("ollama request failed: %w", context.Canceled)))
}

func TestOllamaGettersAreReadPerCall(t *testing.T) {
	hits := map[string]int{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Model string `json:"model"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		hits[body.Model]++
		_, _ = w.Write([]byte(`{"message":{"content":"ok"}}`))
	}))
	defer srv.Close()

	model := "first"
	svc := NewOllamaServiceWithGetters(func() string { return srv.URL }, func() string { return model }, time.Second)

	_, err := svc.Complete(context.Background(), Prompt{})
	require.NoError(t, err)
	model = "second"
	_, err = svc.Complete(context.Background(), Prompt{})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"first": 1, "second": 1}, hits)
}
