package racadm

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/rs/zerolog/log"
	gssh "golang.org/x/crypto/ssh"

	"github.com/sylgeist/oob-cli/pkg/config"
	"github.com/sylgeist/oob-cli/pkg/inventory"
	"github.com/sylgeist/oob-cli/pkg/transport"
)

// serviceUser is the fixed service account on Dell management controllers.
const serviceUser = "root"

// BlinkSuccessMarker appears in RACADM output when a blink/unblink request
// was accepted by the storage controller.
const BlinkSuccessMarker = "STOR095"

// Client executes RACADM commands over an SSH session on the target's
// management controller. One session per invocation, no reuse.
type Client struct {
	cfg config.IPMIConfig
}

// NewClient creates an SSH-based RACADM transport.
func NewClient(cfg config.IPMIConfig) *Client {
	return &Client{cfg: cfg}
}

// Execute opens an authenticated session, runs exactly one command and
// closes the session regardless of outcome.
func (c *Client) Execute(ctx context.Context, target inventory.Target, p transport.Payload) (string, error) {
	conf := &gssh.ClientConfig{
		User:            serviceUser,
		Auth:            []gssh.AuthMethod{gssh.Password(c.cfg.Password)},
		HostKeyCallback: gssh.InsecureIgnoreHostKey(),
		Timeout:         c.cfg.ConnectTimeout,
	}

	addr := target.Addr
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, "22")
	}

	log.Debug().
		Str("addr", addr).
		Str("command", p.Command).
		Msg("Opening management shell session")

	client, err := gssh.Dial("tcp", addr, conf)
	if err != nil {
		if strings.Contains(err.Error(), "unable to authenticate") {
			return "", &transport.AuthError{Addr: target.Addr, Err: err}
		}
		return "", &transport.ProtocolError{Addr: target.Addr, Detail: err.Error()}
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return "", &transport.ProtocolError{Addr: target.Addr, Detail: fmt.Sprintf("session open failed: %v", err)}
	}
	defer session.Close()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	// Bound the whole command, not just the dial. A stalled RACADM call
	// would otherwise hang the invocation indefinitely.
	runCtx, cancel := context.WithTimeout(ctx, c.cfg.SessionTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- session.Run(p.Command) }()

	select {
	case <-runCtx.Done():
		// Closing the underlying connection interrupts the stuck Run.
		_ = client.Close()
		return "", &transport.TimeoutError{Addr: target.Addr, Command: p.Command}
	case err = <-done:
	}

	output := strings.TrimSpace(stdout.String() + stderr.String())

	if err != nil {
		if _, ok := err.(*gssh.ExitError); ok {
			// RACADM reports detail on the captured streams; surface it.
			return output, nil
		}
		return "", &transport.ProtocolError{Addr: target.Addr, Detail: err.Error()}
	}

	return output, nil
}
