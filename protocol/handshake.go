package protocol

import "github.com/go-mc47/protocol/wire"

// Handshake is serverbound Handshaking 0x00. It is always the first packet
// sent on a new connection and selects the next phase: 1 (status) or 2
// (login). This engine only pursues the login path, but the status value
// is still a valid NextState.
type Handshake struct {
	ProtocolVersion wire.VarInt
	ServerAddress   wire.String
	ServerPort      wire.Uint16
	NextState       wire.VarInt
}

// Next-state values carried in Handshake.NextState.
const (
	NextStateStatus wire.VarInt = 1
	NextStateLogin  wire.VarInt = 2
)

// ProtocolVersion47 is the protocol version this engine implements
// (Minecraft 1.8.x).
const ProtocolVersion47 wire.VarInt = 47
