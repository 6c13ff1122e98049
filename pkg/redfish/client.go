package redfish

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sylgeist/oob-cli/pkg/config"
	"github.com/sylgeist/oob-cli/pkg/inventory"
	"github.com/sylgeist/oob-cli/pkg/transport"
)

// serviceUser is the fixed service account on the management REST endpoint.
const serviceUser = "root"

// Client executes operations against the target's Redfish endpoint.
// Every invocation brackets exactly one GET or POST between session login
// and logout; nothing is pooled or reused across invocations.
type Client struct {
	cfg        config.IPMIConfig
	httpClient *http.Client
}

// NewClient creates a Redfish transport. Certificate validation is relaxed
// on purpose: management endpoints ship self-signed certificates, and the
// accepted trade-off is to trust the management network instead.
func NewClient(cfg config.IPMIConfig) *Client {
	httpClient := &http.Client{
		Timeout: cfg.SessionTimeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		},
	}

	return &Client{cfg: cfg, httpClient: httpClient}
}

// Execute logs in, issues the single request described by the payload and
// logs out on all exit paths.
func (c *Client) Execute(ctx context.Context, target inventory.Target, p transport.Payload) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.SessionTimeout)
	defer cancel()

	token, sessionURI, err := c.createSession(reqCtx, target.Addr)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := c.deleteSession(reqCtx, target.Addr, sessionURI, token); err != nil {
			log.Warn().Err(err).Str("addr", target.Addr).Msg("Failed to delete Redfish session")
		}
	}()

	switch p.Method {
	case http.MethodGet:
		return c.get(reqCtx, target.Addr, p.Path, token)
	case http.MethodPost:
		return c.post(reqCtx, target.Addr, p.Path, p.Body, token)
	default:
		return "", &transport.ProtocolError{Addr: target.Addr, Detail: fmt.Sprintf("unsupported method %q", p.Method)}
	}
}

// baseURL builds the HTTPS root for a management address.
func baseURL(addr string) string {
	return "https://" + addr
}

// createSession opens a Redfish session and returns the auth token and the
// session resource URI used for logout.
func (c *Client) createSession(ctx context.Context, addr string) (string, string, error) {
	payload := map[string]string{
		"UserName": serviceUser,
		"Password": c.cfg.Password,
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal session payload: %w", err)
	}

	sessionURL := baseURL(addr) + "/redfish/v1/SessionService/Sessions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sessionURL, strings.NewReader(string(payloadBytes)))
	if err != nil {
		return "", "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(serviceUser, c.cfg.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", &transport.ProtocolError{Addr: addr, Detail: fmt.Sprintf("session creation failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", "", &transport.AuthError{Addr: addr, Err: fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)}
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", "", &transport.ProtocolError{Addr: addr, StatusCode: resp.StatusCode, Detail: fmt.Sprintf("session creation failed: HTTP %d", resp.StatusCode)}
	}

	token := resp.Header.Get("X-Auth-Token")
	if token == "" {
		return "", "", &transport.ProtocolError{Addr: addr, Detail: "no X-Auth-Token in session response"}
	}

	var session struct {
		ODataID string `json:"@odata.id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return token, "", fmt.Errorf("failed to decode session: %w", err)
	}

	log.Debug().Str("addr", addr).Str("session", session.ODataID).Msg("Redfish session created")

	return token, session.ODataID, nil
}

// deleteSession terminates a Redfish session to free the slot.
func (c *Client) deleteSession(ctx context.Context, addr, sessionURI, token string) error {
	if sessionURI == "" {
		return fmt.Errorf("sessionURI is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, baseURL(addr)+sessionURI, nil)
	if err != nil {
		return fmt.Errorf("failed to create DELETE request: %w", err)
	}

	req.Header.Set("X-Auth-Token", token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("DELETE request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("session deletion failed: HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return nil
}

// get issues the single GET of an invocation and returns the raw body.
func (c *Client) get(ctx context.Context, addr, path, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL(addr)+path, nil)
	if err != nil {
		return "", err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Auth-Token", token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &transport.ProtocolError{Addr: addr, Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &transport.ProtocolError{Addr: addr, Detail: fmt.Sprintf("failed to read response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", c.statusError(addr, resp.StatusCode, body)
	}

	return string(body), nil
}

// post issues the single POST of an invocation. Success is HTTP 200; any
// other status surfaces the vendor's embedded extended-error message where
// one exists.
func (c *Client) post(ctx context.Context, addr, path string, body map[string]string, token string) (string, error) {
	payloadBytes, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL(addr)+path, strings.NewReader(string(payloadBytes)))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Auth-Token", token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &transport.ProtocolError{Addr: addr, Detail: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &transport.ProtocolError{Addr: addr, Detail: fmt.Sprintf("failed to read response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", c.statusError(addr, resp.StatusCode, respBody)
	}

	return string(respBody), nil
}

// statusError maps a non-200 response onto the transport taxonomy,
// preferring the vendor's extended-error message. An undocumented status
// with no parseable detail stays a ProtocolError carrying the raw code.
func (c *Client) statusError(addr string, statusCode int, body []byte) error {
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		return &transport.AuthError{Addr: addr, Err: fmt.Errorf("HTTP %d", statusCode)}
	}

	if msg := extendedErrorMessage(body); msg != "" {
		return &transport.ProtocolError{Addr: addr, StatusCode: statusCode, Detail: msg}
	}

	return &transport.ProtocolError{Addr: addr, StatusCode: statusCode}
}

// extendedErrorMessage pulls the first message out of a Redfish
// @Message.ExtendedInfo error body, if present.
func extendedErrorMessage(body []byte) string {
	var parsed struct {
		Error struct {
			ExtendedInfo []struct {
				Message string `json:"Message"`
			} `json:"@Message.ExtendedInfo"`
		} `json:"error"`
	}

	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if len(parsed.Error.ExtendedInfo) == 0 {
		return ""
	}

	return parsed.Error.ExtendedInfo[0].Message
}
