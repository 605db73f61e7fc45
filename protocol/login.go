package protocol

import "github.com/go-mc47/protocol/wire"

// LoginStart is serverbound Login 0x00.
type LoginStart struct {
	Name wire.String
}

// EncryptionResponse is serverbound Login 0x01, the client's reply to
// EncryptionRequest carrying the RSA-encrypted shared secret and verify
// token. Built by the join driver (see the join package) rather than
// filled in directly by callers.
type EncryptionResponse struct {
	SharedSecret wire.PrefixedByteArray
	VerifyToken  wire.PrefixedByteArray
}

// LoginDisconnect is clientbound Login 0x00: a JSON chat component
// explaining why the server closed the connection before Play.
type LoginDisconnect struct {
	Reason wire.String
}

// EncryptionRequest is clientbound Login 0x01, the trigger for the join
// handshake (see the join package).
type EncryptionRequest struct {
	ServerID    wire.String
	PublicKey   wire.PrefixedByteArray
	VerifyToken wire.PrefixedByteArray
}

// LoginSuccess is clientbound Login 0x02. Receiving it transitions the
// session to Play.
type LoginSuccess struct {
	UUID     wire.String
	Username wire.String
}

// SetCompression is clientbound Login 0x03 (also resent in Play as 0x46).
// A negative Threshold disables compression; zero compresses every packet.
type SetCompression struct {
	Threshold wire.VarInt
}
