// Package session drives a single client connection through the
// Handshaking -> Login -> Play state machine: dialing, packet
// send/receive, compression, and encryption are all owned here so that
// the packet layer above only ever deals with typed payloads.
package session

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/go-mc47/protocol/cipher"
	"github.com/go-mc47/protocol/framer"
	"github.com/go-mc47/protocol/protocol"
	"github.com/go-mc47/protocol/wire"
)

// Phase is the local-only protocol state; see framer.State for the
// underlying values (Handshake, Status, Login, Play).
type Phase = framer.State

const (
	PhaseHandshake = framer.StateHandshake
	PhaseStatus    = framer.StateStatus
	PhaseLogin     = framer.StateLogin
	PhasePlay      = framer.StatePlay
)

// Inbound is one decoded-but-untyped packet read off the wire.
type Inbound struct {
	PacketID int32
	Data     []byte
}

// Session owns one TCP connection to a protocol-47 server and
// serializes all outgoing writes behind a single mutex so that
// concurrent senders never interleave partial packets on the wire.
type Session struct {
	conn net.Conn
	log  *zap.Logger

	phase                Phase
	compressionThreshold int
	compressionSet       bool

	cipherInstalled bool

	writeMu sync.Mutex
}

// New wraps an already-dialed connection. Most callers should use
// Connect instead.
func New(conn net.Conn, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		conn:                 conn,
		log:                  log,
		phase:                PhaseHandshake,
		compressionThreshold: -1,
	}
}

// Connect resolves address (applying the Minecraft SRV-record convention
// when no port is given) and dials a TCP connection in the Handshaking
// phase.
func Connect(address string, log *zap.Logger) (*Session, error) {
	resolved, err := resolveAddress(address)
	if err != nil {
		return nil, fmt.Errorf("session: resolve address: %w", err)
	}
	conn, err := net.Dial("tcp", resolved)
	if err != nil {
		return nil, fmt.Errorf("session: dial %s: %w", resolved, err)
	}
	return New(conn, log), nil
}

func resolveAddress(address string) (string, error) {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		host, port = address, ""
	}
	if port != "" {
		return net.JoinHostPort(host, port), nil
	}

	_, srvs, err := net.LookupSRV("minecraft", "tcp", host)
	if err == nil && len(srvs) > 0 {
		target := strings.TrimSuffix(srvs[0].Target, ".")
		return net.JoinHostPort(target, strconv.Itoa(int(srvs[0].Port))), nil
	}
	return net.JoinHostPort(host, "25565"), nil
}

// Phase returns the session's current local phase.
func (s *Session) Phase() Phase { return s.phase }

// SetPhase transitions the session to a new phase. Callers drive this
// themselves after sending Handshake / on receipt of LoginSuccess — it is never
// inferred from wire content.
func (s *Session) SetPhase(p Phase) {
	s.log.Debug("phase transition", zap.Uint8("from", uint8(s.phase)), zap.Uint8("to", uint8(p)))
	s.phase = p
}

// EnableCompression sets the compression threshold. Calling it twice
// with different thresholds in the same session is a programming error,
// since the server only ever sends SetCompression once per login.
func (s *Session) EnableCompression(threshold int) error {
	if s.compressionSet && s.compressionThreshold != threshold {
		return fmt.Errorf("session: compression threshold already set to %d, cannot change to %d", s.compressionThreshold, threshold)
	}
	s.compressionThreshold = threshold
	s.compressionSet = true
	s.log.Debug("compression enabled", zap.Int("threshold", threshold))
	return nil
}

// InstallCipher performs the one-shot installation of the CFB8 streams
// for both directions using the given 16-byte shared secret. It is an
// error to call this more than once.
func (s *Session) InstallCipher(sharedSecret []byte) error {
	if s.cipherInstalled {
		return fmt.Errorf("session: cipher already installed")
	}
	enc := cipher.NewEncryption()
	enc.SetSharedSecret(sharedSecret)
	if err := enc.EnableEncryption(); err != nil {
		return fmt.Errorf("session: enable encryption: %w", err)
	}

	s.conn = &cipherConn{Conn: s.conn, enc: enc}
	s.cipherInstalled = true
	s.log.Debug("cipher installed")
	return nil
}

// cipherConn wraps a net.Conn, transparently encrypting writes and
// decrypting reads with a single persistent Encryption instance per
// connection, so the CFB8 feedback register advances correctly across
// calls instead of resetting per packet.
type cipherConn struct {
	net.Conn
	enc *cipher.Encryption
}

func (c *cipherConn) Read(p []byte) (int, error) {
	n, err := c.Conn.Read(p)
	if n > 0 {
		dec := c.enc.Decrypt(p[:n])
		copy(p[:n], dec)
	}
	return n, err
}

func (c *cipherConn) Write(p []byte) (int, error) {
	return c.Conn.Write(c.enc.Encrypt(p))
}

// Send serializes id and data as one WirePacket and writes it to the
// connection, applying compression if enabled. Concurrent callers are
// serialized so packets are never interleaved on the wire.
func (s *Session) Send(id int32, data []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	wp := &framer.WirePacket{PacketID: wire.VarInt(id), Data: data}
	threshold := -1
	if s.compressionSet {
		threshold = s.compressionThreshold
	}
	if err := wp.WriteTo(s.conn, threshold); err != nil {
		return fmt.Errorf("session: send packet 0x%02X: %w", id, err)
	}
	return nil
}

// Recv reads and deframes the next packet from the wire. Resolving the
// raw packet ID against a schema table is the caller's responsibility —
// an ID unknown to the caller's table is a recoverable situation, not a
// framing failure, so it is returned rather than rejected here.
func (s *Session) Recv() (Inbound, error) {
	threshold := -1
	if s.compressionSet {
		threshold = s.compressionThreshold
	}
	wp, err := framer.ReadFrom(s.conn, threshold)
	if err != nil {
		return Inbound{}, fmt.Errorf("session: recv: %w", err)
	}
	return Inbound{PacketID: int32(wp.PacketID), Data: wp.Data}, nil
}

// SendPacket resolves pkt's wire ID for the session's current phase,
// refuses to send anything but a serverbound packet, encodes it, and
// writes it with Send. pkt must be a pointer to a type registered in
// protocol's schema (everything protocol.Lookup can return).
func (s *Session) SendPacket(pkt any) error {
	bound, id, err := protocol.IDOf(s.phase, pkt)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if bound != framer.Serverbound {
		return fmt.Errorf("%w: %T is not a serverbound packet", protocol.ErrInvariant, pkt)
	}
	data, err := protocol.EncodePacket(s.phase, bound, id, pkt)
	if err != nil {
		return fmt.Errorf("session: encode packet 0x%02X: %w", id, err)
	}
	return s.Send(int32(id), data)
}

// RecvPacket reads the next packet and resolves it against the schema
// table for (phase, Clientbound, raw_id). An ID unknown to the schema is
// returned as a wrapped protocol.ErrUnknownPacket alongside the raw
// payload bytes rather than treated as a framing failure, so callers can
// choose to skip packets their schema doesn't cover and keep the session
// alive.
func (s *Session) RecvPacket() (pkt any, raw Inbound, err error) {
	raw, err = s.Recv()
	if err != nil {
		return nil, raw, err
	}
	pkt, err = protocol.DecodePacket(s.phase, framer.Clientbound, wire.VarInt(raw.PacketID), raw.Data)
	if err != nil {
		return nil, raw, fmt.Errorf("session: %w", err)
	}
	return pkt, raw, nil
}

// Close closes the underlying connection.
func (s *Session) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
