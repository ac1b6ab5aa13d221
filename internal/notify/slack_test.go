package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tailwatch/tailwatch/internal/notify"
)

func TestDeliver_Success(t *testing.T) {
	var received notify.Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := notify.NewWebhookClient(srv.URL, 5*time.Second)
	msg := notify.BuildMessage(testContext(), "the summary", "Error Monitor", ":rotating_light:")

	err := client.Deliver(context.Background(), msg)

	require.NoError(t, err)
	assert.Equal(t, "Error Monitor", received.Username)
	assert.Len(t, received.Blocks, 4)
}

func TestDeliver_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := notify.NewWebhookClient(srv.URL, 5*time.Second)

	err := client.Deliver(context.Background(), notify.Message{})

	require.Error(t, err)
	assert.ErrorIs(t, err, notify.ErrDeliveryFailed)
	assert.Contains(t, err.Error(), "500")
}

func TestDeliver_Unreachable(t *testing.T) {
	client := notify.NewWebhookClient("http://127.0.0.1:1", time.Second)

	err := client.Deliver(context.Background(), notify.Message{})

	assert.ErrorIs(t, err, notify.ErrDeliveryFailed)
}
