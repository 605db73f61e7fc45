// Package framer implements the length-prefixed, optionally zlib-compressed
// packet framing used by protocol version 47.
//
// Packet format: https://wiki.vg/index.php?title=Protocol&oldid=7368#Packet_format
package framer

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/go-mc47/protocol/wire"
)

// State is the protocol phase a connection is in. Unlike packet IDs, state
// is never sent on the wire; both ends track it locally and transition on
// Handshake / LoginSuccess.
type State uint8

const (
	StateHandshake State = iota
	StateStatus
	StateLogin
	StatePlay
)

// Bound is the direction a packet travels.
type Bound uint8

const (
	// Serverbound: client -> server.
	Serverbound Bound = iota
	// Clientbound: server -> client.
	Clientbound
)

// WirePacket is a packet as it appears on the wire: a packet ID and its
// raw, still-typed-agnostic payload.
type WirePacket struct {
	PacketID wire.VarInt
	Data     []byte
}

// ReadFrom reads one WirePacket from r. compressionThreshold < 0 means
// compression has not yet been enabled on this connection; any
// non-negative value (including 0) means the Data Length field is present
// and packets at or above the threshold are zlib-compressed.
func ReadFrom(r io.Reader, compressionThreshold int) (*WirePacket, error) {
	packetLength, err := wire.DecodeVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("framer: read packet length: %w: %w", err, wire.ErrMalformedWire)
	}
	if packetLength < 0 {
		return nil, fmt.Errorf("framer: negative packet length %d: %w", packetLength, wire.ErrMalformedWire)
	}

	body := make([]byte, packetLength)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("framer: read packet body: %w: %w", err, wire.ErrMalformedWire)
	}
	reader := bytes.NewReader(body)

	if compressionThreshold >= 0 {
		return readCompressed(reader)
	}
	return readUncompressed(reader)
}

func readUncompressed(r *bytes.Reader) (*WirePacket, error) {
	id, err := wire.DecodeVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("framer: read packet id: %w: %w", err, wire.ErrMalformedWire)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("framer: read packet data: %w: %w", err, wire.ErrMalformedWire)
	}
	return &WirePacket{PacketID: id, Data: data}, nil
}

func readCompressed(r *bytes.Reader) (*WirePacket, error) {
	dataLength, err := wire.DecodeVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("framer: read data length: %w: %w", err, wire.ErrMalformedWire)
	}

	// A Data Length of zero means the server chose not to compress this
	// particular packet even though compression is enabled.
	if dataLength == 0 {
		return readUncompressed(r)
	}

	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("framer: read compressed payload: %w: %w", err, wire.ErrMalformedWire)
	}
	uncompressed, err := inflate(compressed)
	if err != nil {
		return nil, fmt.Errorf("framer: inflate: %w: %w", err, wire.ErrMalformedWire)
	}
	if len(uncompressed) != int(dataLength) {
		return nil, fmt.Errorf("framer: declared data length %d does not match inflated length %d: %w", dataLength, len(uncompressed), wire.ErrMalformedWire)
	}

	return readUncompressed(bytes.NewReader(uncompressed))
}

// WriteTo encodes and writes the WirePacket to w under the given
// compression threshold (< 0 disables compression framing entirely).
func (p *WirePacket) WriteTo(w io.Writer, compressionThreshold int) error {
	var framed []byte
	var err error
	if compressionThreshold >= 0 {
		framed, err = p.encodeCompressed(compressionThreshold)
	} else {
		framed, err = p.encodeUncompressed()
	}
	if err != nil {
		return fmt.Errorf("framer: encode: %w", err)
	}
	_, err = w.Write(framed)
	return err
}

func (p *WirePacket) encodeUncompressed() ([]byte, error) {
	var body bytes.Buffer
	if err := p.PacketID.Encode(&body); err != nil {
		return nil, err
	}
	body.Write(p.Data)

	var out bytes.Buffer
	if err := wire.VarInt(body.Len()).Encode(&out); err != nil {
		return nil, err
	}
	out.Write(body.Bytes())
	return out.Bytes(), nil
}

// encodeCompressed follows the with-compression framing: packets whose
// uncompressed (ID + data) size is below the threshold are still sent with
// a Data Length field, but set to zero and left uncompressed; the vanilla
// server rejects compressed packets under the threshold, so this engine
// never compresses below it either.
func (p *WirePacket) encodeCompressed(threshold int) ([]byte, error) {
	var payload bytes.Buffer
	if err := p.PacketID.Encode(&payload); err != nil {
		return nil, err
	}
	payload.Write(p.Data)
	uncompressedLen := payload.Len()

	var body bytes.Buffer
	if uncompressedLen >= threshold {
		if err := wire.VarInt(uncompressedLen).Encode(&body); err != nil {
			return nil, err
		}
		body.Write(deflate(payload.Bytes()))
	} else {
		if err := wire.VarInt(0).Encode(&body); err != nil {
			return nil, err
		}
		body.Write(payload.Bytes())
	}

	var out bytes.Buffer
	if err := wire.VarInt(body.Len()).Encode(&out); err != nil {
		return nil, err
	}
	out.Write(body.Bytes())
	return out.Bytes(), nil
}

func deflate(data []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, _ = zw.Write(data)
	_ = zw.Close()
	return buf.Bytes()
}

func inflate(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
