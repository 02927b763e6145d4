package profiles

import (
	"strings"
	"testing"
)

func removeSpaces(s string) string {
	s = strings.ReplaceAll(s, "\t", "")
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

func TestProfile_AsSSHConfigEntry_WithKey(t *testing.T) {
	profile := Profile{
		Name:           "build",
		Host:           "build.internal",
		Port:           2222,
		Username:       "ci",
		PrivateKeyPath: "/home/ci/.ssh/id_ed25519",
	}

	expected := `
Host build
    HostName build.internal
    User ci
    Port 2222
    IdentityFile /home/ci/.ssh/id_ed25519
`

	got, err := profile.AsSSHConfigEntry()

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if removeSpaces(got) != removeSpaces(expected) {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestProfile_AsSSHConfigEntry_WithoutKey(t *testing.T) {
	profile := Profile{
		Name:     "web",
		Host:     "example.com",
		Port:     22,
		Username: "deploy",
	}

	got, err := profile.AsSSHConfigEntry()

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if strings.Contains(got, "IdentityFile") {
		t.Errorf("expected no IdentityFile line, got %s", got)
	}

	expected := `
Host web
    HostName example.com
    User deploy
    Port 22
`

	if removeSpaces(got) != removeSpaces(expected) {
		t.Errorf("expected %s, got %s", expected, got)
	}
}
