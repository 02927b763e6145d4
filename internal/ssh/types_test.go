package ssh

import (
	"errors"
	"testing"
)

func TestCredentials_Validate_PasswordOnly(t *testing.T) {
	creds := &Credentials{Host: "example.com", Port: 22, Username: "user", Password: "secret"}

	if err := creds.Validate(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestCredentials_Validate_KeyOnly(t *testing.T) {
	creds := &Credentials{Host: "example.com", Port: 22, Username: "user", PrivateKeyPath: "/home/user/.ssh/id_ed25519"}

	if err := creds.Validate(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestCredentials_Validate_NoAuthMethod(t *testing.T) {
	creds := &Credentials{Host: "example.com", Port: 22, Username: "user"}

	if err := creds.Validate(); !errors.Is(err, ErrNoAuthMethodProvided) {
		t.Errorf("expected ErrNoAuthMethodProvided, got %v", err)
	}
}

func TestCredentials_Validate_BothAuthMethods(t *testing.T) {
	creds := &Credentials{Host: "example.com", Port: 22, Username: "user", Password: "secret", PrivateKeyPath: "/home/user/.ssh/id_ed25519"}

	if err := creds.Validate(); !errors.Is(err, ErrAmbiguousAuthMethod) {
		t.Errorf("expected ErrAmbiguousAuthMethod, got %v", err)
	}
}
