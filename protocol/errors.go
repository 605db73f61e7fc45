package protocol

import "errors"

// ErrUnknownPacket is returned when a received (phase, direction, id)
// triple has no registered schema. It is recoverable: the caller gets the
// raw payload back and may choose to skip it and keep the session alive.
var ErrUnknownPacket = errors.New("protocol: unknown packet id for current phase")

// ErrInvariant marks a programming error in the caller's use of this
// package: reading a conditional field that the wire form says is absent,
// sending a packet whose phase or direction does not match the session,
// and similar misuse that a correct caller never triggers.
var ErrInvariant = errors.New("protocol: invariant violation")
