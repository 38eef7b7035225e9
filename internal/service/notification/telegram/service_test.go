package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_SendText(t *testing.T) {
	var hits atomic.Int64
	var lastText atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		lastText.Store(r.URL.Query().Get("text"))
	}))
	defer srv.Close()

	svc := NewService("test-token", []string{"1", "2"}, WithBaseURL(srv.URL))
	require.NoError(t, svc.SendText(context.Background(), "window report"))

	assert.Equal(t, int64(2), hits.Load())
	assert.Equal(t, "window report", lastText.Load())
}

func TestService_SendText_RetriesThenFails(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewService("test-token", []string{"1"}, WithBaseURL(srv.URL))
	err := svc.SendText(context.Background(), "report")

	assert.Error(t, err)
	assert.Equal(t, int64(2), hits.Load(), "one retry per chat, then give up")
}
