package commands

import "testing"

func TestParseSSHURL_WithPort(t *testing.T) {
	username, hostname, port, err := parseSSHURL("admin@10.0.0.5:2222")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if username != "admin" || hostname != "10.0.0.5" || port != 2222 {
		t.Errorf("unexpected parse result: %s %s %d", username, hostname, port)
	}
}

func TestParseSSHURL_DefaultPort(t *testing.T) {
	username, hostname, port, err := parseSSHURL("deploy@example.com")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if username != "deploy" || hostname != "example.com" || port != 22 {
		t.Errorf("unexpected parse result: %s %s %d", username, hostname, port)
	}
}

func TestParseSSHURL_MissingUsername(t *testing.T) {
	_, _, _, err := parseSSHURL("example.com:22")

	if err == nil {
		t.Error("expected an error for a URL without username")
	}
}

func TestParseSSHURL_InvalidPort(t *testing.T) {
	_, _, _, err := parseSSHURL("admin@example.com:notaport")

	if err == nil {
		t.Error("expected an error for a non-numeric port")
	}
}

func TestParseSSHURL_PortOutOfRange(t *testing.T) {
	_, _, _, err := parseSSHURL("admin@example.com:70000")

	if err == nil {
		t.Error("expected an error for a port above 65535")
	}
}
