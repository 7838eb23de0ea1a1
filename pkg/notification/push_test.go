package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	var got envelope
	var gotAuth string
	calls := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewDispatcher(Config{
		Endpoint: srv.URL,
		AppID:    "app-123",
		APIKey:   "key-456",
	})

	ok := d.Send(context.Background(), []string{"device-1", "device-2"},
		"Nueva solicitud de adopción", "Alguien quiere adoptar a Luna",
		map[string]string{"type": "adoption_request"},
		"http://media/luna.jpg")

	assert.True(t, ok)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "Basic key-456", gotAuth)
	assert.Equal(t, "app-123", got.AppID)
	assert.Equal(t, []string{"device-1", "device-2"}, got.IncludePlayerIDs)
	assert.Equal(t, "Nueva solicitud de adopción", got.Headings["en"])
	assert.Equal(t, "Alguien quiere adoptar a Luna", got.Contents["en"])
	assert.Equal(t, "adoption_request", got.Data["type"])
	assert.Equal(t, "http://media/luna.jpg", got.BigPicture)
	assert.Equal(t, "ic_stat_sosfido", got.SmallIcon)
}

func TestSend_EmptyDeviceListIsNoOp(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	d := NewDispatcher(Config{Endpoint: srv.URL})

	ok := d.Send(context.Background(), nil, "title", "message", nil, "")
	assert.False(t, ok)
	assert.Equal(t, 0, calls)
}

func TestSend_NonOKStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	d := NewDispatcher(Config{Endpoint: srv.URL})

	ok := d.Send(context.Background(), []string{"device-1"}, "title", "message", nil, "")
	assert.False(t, ok)
}

func TestSend_UnreachableServiceFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	d := NewDispatcher(Config{Endpoint: srv.URL})

	ok := d.Send(context.Background(), []string{"device-1"}, "title", "message", nil, "")
	assert.False(t, ok)
}
