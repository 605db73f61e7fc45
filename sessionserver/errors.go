package sessionserver

import "errors"

// ErrAuth marks a fatal authentication failure against Mojang's session
// server or the join-handshake driver that calls it: a non-2xx join
// response, a malformed credential, or any other condition that means
// this session cannot proceed online-mode. Callers distinguish it from
// transport-level errors with errors.Is(err, ErrAuth).
var ErrAuth = errors.New("sessionserver: authentication failed")
