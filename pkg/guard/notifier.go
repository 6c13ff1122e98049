package guard

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// Notifier marks a host offline in the fleet-status service after a
// destructive operation. Notification is best-effort: failures are logged
// and swallowed, never propagated to the operator.
type Notifier struct {
	rest *resty.Client
}

// NewNotifier creates a fleet-status notifier for the given endpoint.
// A nil notifier is returned when no endpoint is configured.
func NewNotifier(endpoint, token string, timeout time.Duration) *Notifier {
	if endpoint == "" {
		return nil
	}

	rest := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if token != "" {
		rest.SetAuthToken(token)
	}

	return &Notifier{rest: rest}
}

// SetOffline records the host as offline with the operator's reason.
func (n *Notifier) SetOffline(ctx context.Context, hostname, reason string) {
	if n == nil {
		return
	}

	err := retry.Do(
		func() error {
			resp, err := n.rest.R().
				SetContext(ctx).
				SetBody(map[string]string{
					"hostname": hostname,
					"status":   "offline",
					"reason":   reason,
				}).
				Post("/api/v1/status")
			if err != nil {
				return err
			}
			if resp.IsError() {
				return fmt.Errorf("fleet-status returned HTTP %d", resp.StatusCode())
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(2),
		retry.Delay(500*time.Millisecond),
	)
	if err != nil {
		log.Warn().Err(err).Str("hostname", hostname).Msg("Failed to mark host offline in fleet status")
		return
	}

	log.Info().Str("hostname", hostname).Str("reason", reason).Msg("Host marked offline in fleet status")
}
