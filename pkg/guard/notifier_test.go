package guard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOfflinePostsHostAndReason(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := NewNotifier(server.URL, "", 2*time.Second)
	n.SetOffline(context.Background(), "db-01", "bad DIMM")

	assert.Equal(t, "db-01", got["hostname"])
	assert.Equal(t, "offline", got["status"])
	assert.Equal(t, "bad DIMM", got["reason"])
}

func TestSetOfflineSwallowsFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	n := NewNotifier(server.URL, "", time.Second)

	// Must not panic or propagate anything.
	n.SetOffline(context.Background(), "db-01", "maintenance")
}

func TestSetOfflineNilNotifier(t *testing.T) {
	var n *Notifier

	// Unconfigured notifier is a no-op.
	n.SetOffline(context.Background(), "db-01", "maintenance")
}

func TestNewNotifierWithoutEndpoint(t *testing.T) {
	assert.Nil(t, NewNotifier("", "", time.Second))
}
