// Package auth holds the identity handed to the join handshake.
//
// Acquiring a Minecraft access token (the Microsoft/XBL/XSTS/Minecraft
// OAuth chain) is explicitly out of scope for this engine: callers are
// expected to run whatever auth flow they already have and hand the
// result in here as LoginData.
package auth

// LoginData is the result of a completed Microsoft/Minecraft login:
// access token, profile UUID, and profile name.
type LoginData struct {
	AccessToken string
	UUID        string
	Username    string
}

// AsCredentials adapts LoginData to join.Credentials without importing
// the join package here, avoiding a dependency cycle between the two
// packages.
func (d LoginData) AsCredentials() StaticCredentials {
	return StaticCredentials{
		accessToken: d.AccessToken,
		profileUUID: d.UUID,
		profileName: d.Username,
	}
}

// StaticCredentials is a fixed-value implementation of join.Credentials,
// suitable for a login that has already produced an access token and
// profile (and for tests).
type StaticCredentials struct {
	accessToken string
	profileUUID string
	profileName string
}

// NewStaticCredentials builds a StaticCredentials from already-obtained
// values.
func NewStaticCredentials(accessToken, profileUUID, profileName string) StaticCredentials {
	return StaticCredentials{accessToken: accessToken, profileUUID: profileUUID, profileName: profileName}
}

func (c StaticCredentials) AccessToken() string { return c.accessToken }
func (c StaticCredentials) ProfileUUID() string { return c.profileUUID }
func (c StaticCredentials) ProfileName() string { return c.profileName }
