// Package wire provides primitive types and serialization utilities
// for Minecraft Java Edition protocol version 47 (game version 1.8.x).
//
// All types follow the protocol's wire format as captured by:
// https://wiki.vg/index.php?title=Protocol&oldid=7368
package wire

// ByteArray is a raw byte sequence used throughout the protocol.
type ByteArray = []byte
