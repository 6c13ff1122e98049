package transport

import (
	"context"

	"github.com/sylgeist/oob-cli/pkg/inventory"
)

// Payload describes a single vendor operation for a transport to execute.
// The CLI and shell transports consume Command; the REST transport consumes
// Method, Path and Body.
type Payload struct {
	// Command is the free-form command string for the local IPMI CLI or the
	// remote vendor shell.
	Command string

	// Method is the HTTP method for the REST transport ("GET" or "POST").
	Method string

	// Path is the resource path below the management endpoint.
	Path string

	// Body is the JSON body for POST requests.
	Body map[string]string
}

// Transport executes exactly one operation against a resolved target and
// returns the raw response text. Implementations open a fresh, cold session
// per call and guarantee cleanup on all exit paths.
type Transport interface {
	Execute(ctx context.Context, target inventory.Target, p Payload) (string, error)
}

// DiskEntry is one physical drive slot as reported by a transport, in the
// transport's native reporting order.
type DiskEntry struct {
	Bay    string
	Status string
	Size   string // size (RACADM) or capacity (Redfish)
	Detail string // serial number (RACADM) or model (Redfish)
}
