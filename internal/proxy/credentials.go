package proxy

import (
	"mygres/proxy/internal/auth"
)

// credentialProvider adapts auth.Provider to the wire library's handshake.
// CheckUsername runs the username equality check; GetCredential hands the
// configured password to the library so the client's native-password
// scramble is actually verified. Historical deployments skipped the password
// comparison entirely; verifying it is a deliberate behavior change.
type credentialProvider struct {
	auth *auth.Provider
}

func (p *credentialProvider) CheckUsername(username string) (bool, error) {
	return p.auth.Authenticate(username), nil
}

func (p *credentialProvider) GetCredential(username string) (string, bool, error) {
	return p.auth.Password(), true, nil
}
