package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// placeholder values some inventory records carry instead of a real address
const emptySentinel = "''"

// record is one machine entry as returned by the inventory service.
// Address and manufacturer are pointers so that an absent field (missing
// attribute) is distinguishable from a present-but-unusable value.
type record struct {
	Hostname     string  `json:"hostname"`
	IPMIAddress  *string `json:"ipmi_address"`
	Manufacturer *string `json:"manufacturer"`
}

type queryResponse struct {
	Hosts []record `json:"hosts"`
}

// Client resolves hostnames against the fleet inventory service.
type Client struct {
	rest *resty.Client
}

// NewClient creates an inventory client for the given service endpoint.
func NewClient(endpoint, token string, timeout time.Duration) *Client {
	rest := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if token != "" {
		rest.SetAuthToken(token)
	}

	return &Client{rest: rest}
}

// Resolve looks up a hostname and returns its management target.
func (c *Client) Resolve(ctx context.Context, hostname string) (Target, error) {
	log.Debug().Str("hostname", hostname).Msg("Resolving host in inventory")

	var result queryResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParam("hostname", hostname).
		SetResult(&result).
		Get("/api/v1/hosts")
	if err != nil {
		return Target{}, fmt.Errorf("inventory query failed: %w", err)
	}
	if resp.IsError() {
		return Target{}, fmt.Errorf("inventory query failed: HTTP %d: %s", resp.StatusCode(), resp.Status())
	}

	switch len(result.Hosts) {
	case 0:
		return Target{}, &NotFoundError{Hostname: hostname}
	case 1:
	default:
		return Target{}, &AmbiguousError{Hostname: hostname, Matches: len(result.Hosts)}
	}

	rec := result.Hosts[0]
	if rec.IPMIAddress == nil {
		return Target{}, &MissingAttributeError{Hostname: hostname, Attribute: "management address"}
	}
	if rec.Manufacturer == nil {
		return Target{}, &MissingAttributeError{Hostname: hostname, Attribute: "manufacturer"}
	}

	addr := strings.TrimSpace(*rec.IPMIAddress)
	if addr == "" || addr == emptySentinel || addr == "0.0.0.0" {
		return Target{}, &InvalidAddressError{Hostname: hostname, Addr: addr}
	}

	target := Target{
		Hostname:     hostname,
		Addr:         addr,
		Manufacturer: ParseManufacturer(*rec.Manufacturer),
	}

	log.Debug().
		Str("hostname", hostname).
		Str("addr", target.Addr).
		Str("manufacturer", string(target.Manufacturer)).
		Msg("Host resolved")

	return target, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
