package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost:5001", time.Second)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, "http://localhost:5001", client.BaseURL)
	assert.Equal(t, time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestHTTPClient_EmbeddedClientUsable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	resp, err := client.R().Get("/")

	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode())
}
