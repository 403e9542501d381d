// Package auth implements the credential check for the MySQL handshake.
// Authentication compares the presented username against the configured
// MySQL username; the password itself is verified at the wire layer using
// the native-password scramble, with the expected password supplied from
// configuration.
package auth

import (
	"crypto/rand"

	"github.com/pterm/pterm"

	"mygres/proxy/internal/config"
)

// DefaultAuthPlugin is the authentication plugin advertised in the handshake.
const DefaultAuthPlugin = "mysql_native_password"

// legacySaltSeed is the fixed byte sequence historical deployments derived
// their handshake salt from.
const legacySaltSeed = ";X,po_k}o6^Wz!/kM}Na"

// Provider answers handshake credential questions for incoming connections.
// It holds an immutable snapshot of the expected client credentials.
type Provider struct {
	cfg config.Config
	log *pterm.Logger
}

// NewProvider creates a Provider bound to the loaded configuration.
// The logger may be nil, in which case authentication attempts are not logged.
func NewProvider(cfg config.Config, log *pterm.Logger) *Provider {
	return &Provider{cfg: cfg, log: log}
}

// Authenticate reports whether the presented username exactly equals the
// configured MySQL username. Every attempt is logged.
func (p *Provider) Authenticate(username string) bool {
	if p.log != nil {
		p.log.Info("authentication attempt", p.log.Args("user", username))
	}
	return username == p.cfg.MySQLUsername
}

// Password returns the password the wire layer verifies the client's
// scramble response against.
func (p *Provider) Password() string {
	return p.cfg.MySQLPassword
}

// DefaultPlugin returns the authentication plugin identifier sent to clients.
func (p *Provider) DefaultPlugin() string {
	return DefaultAuthPlugin
}

// Salt returns a 20-byte handshake salt from the system's secure random
// source. Earlier versions of this server reused one deterministic salt for
// every connection; a fresh salt per call closes that gap. If the random
// source fails the deterministic legacy salt is used so the handshake can
// still proceed.
func (p *Provider) Salt() [20]byte {
	var salt [20]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return p.LegacySalt()
	}
	// The salt is sent as a NUL-terminated string in the handshake packet,
	// so it must not contain NUL; '$' collides with the client's placeholder
	// escaping. Bump either to the next byte value.
	for i := range salt {
		if salt[i] == 0x00 || salt[i] == '$' {
			salt[i]++
		}
	}
	return salt
}

// LegacySalt returns the deterministic salt used by historical deployments:
// a fixed literal with any NUL or '$' byte replaced by the next byte value.
// It is identical on every call.
func (p *Provider) LegacySalt() [20]byte {
	var salt [20]byte
	copy(salt[:], legacySaltSeed)
	for i := range salt {
		if salt[i] == 0x00 || salt[i] == '$' {
			salt[i]++
		}
	}
	return salt
}
