package ipmi

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/sylgeist/oob-cli/pkg/config"
	"github.com/sylgeist/oob-cli/pkg/inventory"
	"github.com/sylgeist/oob-cli/pkg/transport"
)

// sessionFailure is the generic ipmitool failure line that covers everything
// from packet loss to a wrong password. A single verbose re-probe is needed
// to tell those apart.
const sessionFailure = "Unable to establish IPMI v2 / RMCP+ session"

// authFailureSignature only appears in verbose output when the BMC rejects
// the RAKP exchange, i.e. the credentials are wrong.
const authFailureSignature = "RAKP 2 HMAC is invalid"

// Client executes IPMI operations by spawning the local ipmitool binary
// against the target's management address. More resilient than the native
// library bindings, which can panic on malformed BMC responses.
type Client struct {
	cfg config.IPMIConfig
}

// NewClient creates a subprocess-based IPMI transport.
func NewClient(cfg config.IPMIConfig) *Client {
	return &Client{cfg: cfg}
}

// Execute runs one ipmitool command against the target. The management
// address is probed for reachability first; the primary call is never
// attempted against a dead address.
func (c *Client) Execute(ctx context.Context, target inventory.Target, p transport.Payload) (string, error) {
	if err := c.probe(ctx, target.Addr); err != nil {
		return "", err
	}

	output := c.run(ctx, target.Addr, p.Command, false)

	return c.classify(ctx, target.Addr, p.Command, output)
}

// probe sends two ICMP echo requests at the management address. Total loss
// short-circuits the operation as unreachable.
func (c *Client) probe(ctx context.Context, addr string) error {
	probeCtx, cancel := context.WithTimeout(ctx, c.cfg.ProbeTimeout)
	defer cancel()

	cmd := exec.CommandContext(probeCtx, "ping", "-c", "2", "-W", "2", addr)

	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined

	log.Debug().Str("addr", addr).Msg("Probing management address")

	err := cmd.Run()
	if err != nil || strings.Contains(combined.String(), "100% packet loss") {
		return &transport.UnreachableError{Addr: addr}
	}

	return nil
}

// run invokes ipmitool once. The context deadline is the soft timeout; the
// process gets SIGTERM at the deadline and SIGKILL after the grace period.
func (c *Client) run(ctx context.Context, addr, command string, verbose bool) string {
	cmdArgs := []string{
		"-I", "lanplus",
		"-H", addr,
		"-U", c.cfg.Username,
		"-P", c.cfg.Password,
	}
	if verbose {
		cmdArgs = append(cmdArgs, "-vv")
	}
	cmdArgs = append(cmdArgs, strings.Fields(command)...)

	runCtx, cancel := context.WithTimeout(ctx, c.cfg.CommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, "ipmitool", cmdArgs...)
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = c.cfg.KillGrace

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug().
		Str("addr", addr).
		Str("command", command).
		Bool("verbose", verbose).
		Msg("Executing ipmitool command")

	// ipmitool exits non-zero on most session failures; the interesting
	// detail is in the captured output, so classification happens on text
	// rather than on the exit error.
	_ = cmd.Run()

	return strings.TrimSpace(stdout.String() + stderr.String())
}

// classify maps raw ipmitool output onto the transport error taxonomy.
func (c *Client) classify(ctx context.Context, addr, command, output string) (string, error) {
	if output == "" {
		return "", &transport.TimeoutError{Addr: addr, Command: command}
	}

	if strings.Contains(output, sessionFailure) {
		return "", c.diagnoseSessionFailure(ctx, addr, command)
	}

	return output, nil
}

// diagnoseSessionFailure re-invokes the failed command once with increased
// verbosity, solely to detect the authentication failure signature. This is
// a diagnostic probe, not a retry of the operation.
func (c *Client) diagnoseSessionFailure(ctx context.Context, addr, command string) error {
	log.Debug().Str("addr", addr).Msg("Session failed, probing for authentication failure")

	verboseOut := c.run(ctx, addr, command, true)

	if strings.Contains(verboseOut, authFailureSignature) {
		return &transport.AuthError{Addr: addr, Err: errors.New("BMC rejected the RAKP exchange (bad credentials)")}
	}

	return &transport.ProtocolError{Addr: addr, Detail: sessionFailure}
}
