// Package sessionserver talks to Mojang's session server: the HTTP join
// step a client performs after receiving an online-mode
// EncryptionRequest, and the ComputeServerHash helper the join-handshake
// driver needs to build that request.
package sessionserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-mc47/protocol/cipher"
	"github.com/go-mc47/protocol/wire"
)

// Client is an HTTP client for Mojang's session server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client pointed at the production session server.
func NewClient() *Client {
	return NewClientWithURL("https://sessionserver.mojang.com")
}

// NewClientWithURL creates a Client against a custom base URL, useful for
// testing against a local fake.
func NewClientWithURL(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// joinRequest is the payload for POST /session/minecraft/join.
type joinRequest struct {
	AccessToken     string `json:"accessToken"`
	SelectedProfile string `json:"selectedProfile"`
	ServerID        string `json:"serverId"`
}

// errorResponse is Mojang's error envelope, returned with a non-2xx
// status on failure.
type errorResponse struct {
	Error        string `json:"error"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	Path         string `json:"path,omitempty"`
}

func (e errorResponse) String() string {
	if e.ErrorMessage != "" {
		return fmt.Sprintf("%s: %s (path: %s)", e.Error, e.ErrorMessage, e.Path)
	}
	return fmt.Sprintf("%s (path: %s)", e.Error, e.Path)
}

// Join authenticates a client session with the session server so the
// server can later validate it via hasJoined. accessToken and
// selectedProfile (32-hex-digit UUID, no dashes) come from the caller's
// Credentials; serverID is the Minecraft server hash computed from the
// EncryptionRequest fields.
func (c *Client) Join(ctx context.Context, accessToken, selectedProfile, serverID string) error {
	if !ValidateAccessToken(accessToken) {
		return fmt.Errorf("sessionserver: invalid access token format: %w", ErrAuth)
	}
	if !wire.ValidateUUID(selectedProfile) {
		return fmt.Errorf("sessionserver: invalid selectedProfile UUID format: %s: %w", selectedProfile, ErrAuth)
	}

	body, err := json.Marshal(joinRequest{
		AccessToken:     accessToken,
		SelectedProfile: selectedProfile,
		ServerID:        serverID,
	})
	if err != nil {
		return fmt.Errorf("sessionserver: marshal join request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/session/minecraft/join", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sessionserver: build join request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "go-mc47-protocol")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sessionserver: join request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("sessionserver: read join response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp errorResponse
	if err := json.Unmarshal(respBody, &errResp); err != nil {
		return fmt.Errorf("sessionserver: join failed: %s (status %d): %w", string(respBody), resp.StatusCode, ErrAuth)
	}
	return fmt.Errorf("sessionserver: join failed: %s (status %d): %w", errResp.String(), resp.StatusCode, ErrAuth)
}

// ComputeServerHash computes the non-standard Minecraft server hash:
// SHA-1 over serverID‖sharedSecret‖publicKeyDER, rendered as the
// two's-complement hex digest the session server expects.
func ComputeServerHash(serverID string, sharedSecret, publicKeyDER []byte) string {
	h := cipher.NewMinecraftSHA1()
	h.Write([]byte(serverID))
	h.Write(sharedSecret)
	h.Write(publicKeyDER)
	return h.HexDigest()
}

// ValidateAccessToken checks an access token's shape is at least
// plausible before it is sent over the wire.
func ValidateAccessToken(token string) bool {
	return len(token) > 10 && len(token) < 2048
}
