package auth

import (
	"testing"

	"mygres/proxy/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		DBHost:        "localhost",
		DBUser:        "postgres",
		DBPassword:    "password",
		MySQLUsername: "testuser",
		MySQLPassword: "testpass",
		BindAddress:   "0.0.0.0:3306",
	}
}

func TestAuthenticate(t *testing.T) {
	p := NewProvider(testConfig(), nil)

	tests := []struct {
		name     string
		username string
		want     bool
	}{
		{"matching username", "testuser", true},
		{"wrong username", "wronguser", false},
		{"empty username", "", false},
		{"case sensitive", "TestUser", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Authenticate(tt.username); got != tt.want {
				t.Errorf("Authenticate(%q) = %v, want %v", tt.username, got, tt.want)
			}
		})
	}
}

func TestDefaultPlugin(t *testing.T) {
	p := NewProvider(testConfig(), nil)
	if got := p.DefaultPlugin(); got != "mysql_native_password" {
		t.Errorf("DefaultPlugin() = %q, want %q", got, "mysql_native_password")
	}
}

func TestPassword(t *testing.T) {
	p := NewProvider(testConfig(), nil)
	if got := p.Password(); got != "testpass" {
		t.Errorf("Password() = %q, want %q", got, "testpass")
	}
}

func TestLegacySaltDeterministic(t *testing.T) {
	p := NewProvider(testConfig(), nil)

	first := p.LegacySalt()
	second := p.LegacySalt()
	if first != second {
		t.Error("LegacySalt() should return the same salt on every call")
	}
	if len(first) != 20 {
		t.Errorf("salt length = %d, want 20", len(first))
	}
}

func TestLegacySaltNoForbiddenBytes(t *testing.T) {
	p := NewProvider(testConfig(), nil)

	for i, b := range p.LegacySalt() {
		if b == 0x00 {
			t.Errorf("salt byte %d is NUL", i)
		}
		if b == '$' {
			t.Errorf("salt byte %d is '$'", i)
		}
	}
}

func TestSaltRandomized(t *testing.T) {
	p := NewProvider(testConfig(), nil)

	first := p.Salt()
	second := p.Salt()
	if first == second {
		t.Error("Salt() returned the same value twice; expected per-call randomness")
	}
	for i, b := range first {
		if b == 0x00 || b == '$' {
			t.Errorf("salt byte %d = %#x; NUL and '$' must not appear", i, b)
		}
	}
}
