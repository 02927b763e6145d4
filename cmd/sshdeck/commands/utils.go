package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"syscall"

	"sshdeck/cmd/sshdeck/config"
	"sshdeck/internal/profiles"
	"sshdeck/internal/ssh"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPasswordSecurely reads a password from the terminal without echoing.
func readPasswordSecurely(prompt string, out io.Writer) (string, error) {
	fmt.Fprintf(out, "%s", prompt)

	bytePassword, err := term.ReadPassword(int(syscall.Stdin))

	fmt.Fprintf(out, "\n")

	if err != nil {
		return "", err
	}
	return string(bytePassword), nil
}

// parseSSHURL parses an SSH URL in the format username@hostname:port or
// username@hostname. Returns username, hostname, port, and any error.
func parseSSHURL(sshURL string) (username, hostname string, port uint16, err error) {
	port = config.Config.DefaultSSHPort

	if strings.Contains(sshURL, ":") {
		parts := strings.Split(sshURL, ":")
		if len(parts) != 2 {
			return "", "", 0, fmt.Errorf("invalid SSH URL format: %s", sshURL)
		}

		if portStr := parts[1]; portStr != "" {
			parsedPort, err := strconv.ParseUint(portStr, 10, 16)

			if err != nil {
				return "", "", 0, fmt.Errorf("invalid port number: %s", portStr)
			}

			port = uint16(parsedPort)
		}

		sshURL = parts[0]
	}

	if strings.Contains(sshURL, "@") {
		parts := strings.Split(sshURL, "@")
		if len(parts) != 2 {
			return "", "", 0, fmt.Errorf("invalid SSH URL format: %s", sshURL)
		}
		username = parts[0]
		hostname = parts[1]
	} else {
		return "", "", 0, fmt.Errorf("username is required in SSH URL format: username@hostname[:port]")
	}

	if username == "" {
		return "", "", 0, fmt.Errorf("username cannot be empty")
	}
	if hostname == "" {
		return "", "", 0, fmt.Errorf("hostname cannot be empty")
	}

	return username, hostname, port, nil
}

// buildSSHCredentials resolves the positional target argument (a saved
// profile name or a username@hostname[:port] URL) and collects the missing
// secret interactively. Exactly one authentication method ends up set.
func buildSSHCredentials(cmd *cobra.Command, target string, sshKeyPassSkip bool) (*ssh.Credentials, error) {
	creds := &ssh.Credentials{}

	profile, err := profilesRepository.GetByName(target)

	if err != nil && !errors.Is(err, profiles.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to look up profile '%s': %v", target, err)
	}

	if profile != nil {
		creds.Username = profile.Username
		creds.Host = profile.Host
		creds.Port = profile.Port
		creds.PrivateKeyPath = profile.PrivateKeyPath
	} else {
		username, hostname, port, err := parseSSHURL(target)
		if err != nil {
			return nil, fmt.Errorf("'%s' is neither a saved profile nor a valid SSH URL: %v", target, err)
		}
		creds.Username = username
		creds.Host = hostname
		creds.Port = port
	}

	if keyPath := cmd.Flag("ssh-key-path").Value.String(); keyPath != "" {
		creds.PrivateKeyPath = keyPath
	}

	if creds.PrivateKeyPath != "" {
		if !sshKeyPassSkip {
			if passphrase, err := readPasswordSecurely("🔒 Enter SSH key passphrase (leave empty if none): ", cmd.OutOrStdout()); err == nil && passphrase != "" {
				creds.Passphrase = passphrase
			}
		}
	} else {
		password, err := readPasswordSecurely("🔒 Enter SSH password: ", cmd.OutOrStdout())

		if err != nil {
			return nil, fmt.Errorf("failed to read password: %v", err)
		}

		creds.Password = password
	}

	if err := creds.Validate(); err != nil {
		return nil, err
	}

	return creds, nil
}
