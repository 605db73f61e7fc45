// Package join drives the online-mode login handshake: it reacts to the
// server's EncryptionRequest by computing the Minecraft server hash,
// authenticating against the session server, encrypting the shared
// secret under the server's RSA key, and installing the session cipher.
package join

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/go-mc47/protocol/cipher"
	"github.com/go-mc47/protocol/protocol"
	"github.com/go-mc47/protocol/session"
	"github.com/go-mc47/protocol/sessionserver"
	"github.com/go-mc47/protocol/wire"
)

// Credentials supplies the identity the join driver authenticates as.
// Acquiring these (OAuth device-code flow, cached tokens, …) is out of
// scope for this engine; callers inject whatever already satisfies it.
type Credentials interface {
	AccessToken() string
	ProfileUUID() string
	ProfileName() string
}

// SessionServerClient is the subset of sessionserver.Client the driver
// depends on, narrowed to an interface so tests can substitute a fake
// without standing up an HTTP server.
type SessionServerClient interface {
	Join(ctx context.Context, accessToken, selectedProfile, serverHash string) error
}

// EncryptionRequest is the decoded Login-phase packet 0x01 that triggers
// the handshake.
type EncryptionRequest struct {
	ServerID    string
	PublicKey   []byte
	VerifyToken []byte
}

// Driver runs the join handshake against a single session.
type Driver struct {
	sess  *session.Session
	creds Credentials
	ss    SessionServerClient
	log   *zap.Logger
}

// NewDriver constructs a Driver bound to sess, authenticating as creds
// via ss.
func NewDriver(sess *session.Session, creds Credentials, ss SessionServerClient, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{sess: sess, creds: creds, ss: ss, log: log}
}

// Handle runs steps 1-5 of the handshake in response to req: generates
// the shared secret, authenticates with the session server, builds the
// EncryptionResponse payload to send back, and installs the cipher on
// the session immediately afterward (every byte from this point on is
// encrypted, including the response we just sent being read back by the
// server).
//
// The caller is responsible for writing the returned EncryptionResponse
// payload as packet 0x01 before any further reads or writes touch the
// session — InstallCipher has already been applied to sess by the time
// Handle returns, so the caller's own Send goes through the cipher too,
// matching what the server expects.
func (d *Driver) Handle(ctx context.Context, req EncryptionRequest) (encryptionResponse []byte, err error) {
	sharedSecret := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, sharedSecret); err != nil {
		return nil, fmt.Errorf("join: generate shared secret: %w", err)
	}

	serverHash := sessionserver.ComputeServerHash(req.ServerID, sharedSecret, req.PublicKey)
	d.log.Debug("computed server hash", zap.String("hash", serverHash))

	if err := d.ss.Join(ctx, d.creds.AccessToken(), undashedUUID(d.creds.ProfileUUID()), serverHash); err != nil {
		return nil, fmt.Errorf("join: session server join: %w: %w", err, sessionserver.ErrAuth)
	}

	encSecret, err := cipher.NewEncryption().EncryptWithPublicKey(req.PublicKey, sharedSecret)
	if err != nil {
		return nil, fmt.Errorf("join: encrypt shared secret: %w", err)
	}
	encToken, err := cipher.NewEncryption().EncryptWithPublicKey(req.PublicKey, req.VerifyToken)
	if err != nil {
		return nil, fmt.Errorf("join: encrypt verify token: %w", err)
	}

	payload, err := encodeEncryptionResponse(encSecret, encToken)
	if err != nil {
		return nil, fmt.Errorf("join: encode encryption response: %w", err)
	}

	if err := d.sess.InstallCipher(sharedSecret); err != nil {
		return nil, fmt.Errorf("join: install cipher: %w", err)
	}

	return payload, nil
}

// encodeEncryptionResponse writes the two length-prefixed byte arrays
// that make up the client's EncryptionResponse body.
func encodeEncryptionResponse(encryptedSecret, encryptedToken []byte) ([]byte, error) {
	pkt := protocol.EncryptionResponse{
		SharedSecret: wire.PrefixedByteArray(encryptedSecret),
		VerifyToken:  wire.PrefixedByteArray(encryptedToken),
	}
	buf := wire.NewWriter()
	if err := protocol.Encode(buf, &pkt); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeEncryptionRequest parses the Login-phase 0x01 packet body.
func DecodeEncryptionRequest(data []byte) (EncryptionRequest, error) {
	var pkt protocol.EncryptionRequest
	if err := protocol.Decode(wire.NewReader(data), &pkt); err != nil {
		return EncryptionRequest{}, fmt.Errorf("join: decode encryption request: %w", err)
	}
	return EncryptionRequest{
		ServerID:    string(pkt.ServerID),
		PublicKey:   []byte(pkt.PublicKey),
		VerifyToken: []byte(pkt.VerifyToken),
	}, nil
}

// undashedUUID normalizes a profile UUID to the bare 32-hex-digit form
// the session server's join endpoint expects (selectedProfile), regardless
// of which form the caller's Credentials supplied.
func undashedUUID(raw string) string {
	if !strings.Contains(raw, "-") {
		return raw
	}
	u, err := wire.UUIDFromString(raw)
	if err != nil {
		return raw
	}
	return hex.EncodeToString(u[:])
}
