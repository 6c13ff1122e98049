package inventory

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inventoryServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
}

func resolve(t *testing.T, body, hostname string) (Target, error) {
	t.Helper()
	server := inventoryServer(t, body)
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second)
	return client.Resolve(context.Background(), hostname)
}

func TestResolveSingleMatch(t *testing.T) {
	body := `{"hosts": [{"hostname": "web-01.region1", "ipmi_address": "10.1.2.3", "manufacturer": "Dell Inc."}]}`

	target, err := resolve(t, body, "web-01.region1")

	require.NoError(t, err)
	assert.Equal(t, "10.1.2.3", target.Addr)
	assert.Equal(t, ManufacturerDell, target.Manufacturer)
	assert.Equal(t, "web-01.region1", target.Hostname)
}

func TestResolveNoMatch(t *testing.T) {
	_, err := resolve(t, `{"hosts": []}`, "nope-01")

	require.Error(t, err)
	assert.True(t, IsNotFoundError(err))
}

func TestResolveAmbiguous(t *testing.T) {
	body := `{"hosts": [
		{"hostname": "web-01.region1", "ipmi_address": "10.1.2.3", "manufacturer": "Dell"},
		{"hostname": "web-01.region2", "ipmi_address": "10.4.5.6", "manufacturer": "Dell"}
	]}`

	_, err := resolve(t, body, "web-01")

	require.Error(t, err)
	assert.True(t, IsAmbiguousError(err))
	assert.Contains(t, err.Error(), "region suffix")
}

func TestResolveMissingAttributes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "no management address",
			body: `{"hosts": [{"hostname": "web-01", "manufacturer": "Dell"}]}`,
		},
		{
			name: "no manufacturer",
			body: `{"hosts": [{"hostname": "web-01", "ipmi_address": "10.1.2.3"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolve(t, tt.body, "web-01")

			require.Error(t, err)
			assert.True(t, IsMissingAttributeError(err))
		})
	}
}

func TestResolveInvalidAddresses(t *testing.T) {
	for _, addr := range []string{"", "''", "0.0.0.0", "  "} {
		t.Run(fmt.Sprintf("addr=%q", addr), func(t *testing.T) {
			body := fmt.Sprintf(`{"hosts": [{"hostname": "web-01", "ipmi_address": %q, "manufacturer": "Dell"}]}`, addr)

			_, err := resolve(t, body, "web-01")

			require.Error(t, err)
			assert.True(t, IsInvalidAddressError(err))
		})
	}
}

func TestParseManufacturer(t *testing.T) {
	tests := []struct {
		raw  string
		want Manufacturer
	}{
		{"Dell Inc.", ManufacturerDell},
		{"dell", ManufacturerDell},
		{"Supermicro", ManufacturerSupermicro},
		{"SUPERMICRO", ManufacturerSupermicro},
		{"Quanta", ManufacturerUnknown},
		{"", ManufacturerUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseManufacturer(tt.raw))
		})
	}
}

func TestResolveServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second)
	_, err := client.Resolve(context.Background(), "web-01")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
