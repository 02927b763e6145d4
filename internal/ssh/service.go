package ssh

import (
	"fmt"
	"net"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/melbahja/goph"
	"golang.org/x/crypto/ssh"
)

// Service wraps a single authenticated SSH connection and tracks the working
// directory that the command executor emulates across stateless exec
// channels. A Service is created disconnected; Connect must succeed before
// Execute can be used.
type Service struct {
	client *goph.Client
	creds  *Credentials

	dialTimeout time.Duration

	// run dispatches one rewritten command line over a fresh channel.
	// Populated by Connect; tests substitute a fake.
	run runFunc

	// mu serializes command execution for this session: Execute both reads
	// and mutates currentDirectory, so concurrent commands against the same
	// connection would corrupt directory tracking.
	mu               sync.Mutex
	currentDirectory string
}

type execOutput struct {
	stdout   string
	stderr   string
	exitCode int
}

// runFunc returns an error only when the command could not be dispatched at
// all; a remote non-zero exit is a normal execOutput.
type runFunc func(command string) (*execOutput, error)

func NewService(creds *Credentials, dialTimeout time.Duration) *Service {
	return &Service{
		creds:       creds,
		dialTimeout: dialTimeout,
	}
}

// Connect resolves the host to an IPv4 address, establishes the TCP
// connection, performs the SSH handshake and authentication, and runs the
// initial working-directory probe. The session is only usable if Connect
// returns nil.
func (s *Service) Connect() error {
	if err := s.creds.Validate(); err != nil {
		return err
	}

	authMethods, err := s.buildAuthMethods()

	if err != nil {
		return err
	}

	sshConfig := &ssh.ClientConfig{
		User:            s.creds.Username,
		Auth:            authMethods,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         s.dialTimeout,
	}

	addr, err := resolveIPv4Addr(s.creds.Host, s.creds.Port)

	if err != nil {
		return err
	}

	conn, err := net.DialTimeout("tcp", addr, sshConfig.Timeout)

	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToConnect, err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, sshConfig)

	if err != nil {
		conn.Close()

		if strings.Contains(err.Error(), "unable to authenticate") {
			return fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
		}

		return fmt.Errorf("%w: %v", ErrHandshakeFailed, err)
	}

	client := ssh.NewClient(sshConn, chans, reqs)

	s.client = &goph.Client{Client: client}
	s.run = s.runOverChannel

	if err := s.probeWorkingDirectory(); err != nil {
		s.client.Close()
		s.client = nil
		s.run = nil
		return err
	}

	return nil
}

func (s *Service) buildAuthMethods() ([]ssh.AuthMethod, error) {
	var authMethods []ssh.AuthMethod

	if s.creds.PrivateKeyPath != "" {
		keyBytes, err := os.ReadFile(s.creds.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToCreateAuth, err)
		}

		var signer ssh.Signer
		if s.creds.Passphrase != "" {
			signer, err = ssh.ParsePrivateKeyWithPassphrase(keyBytes, []byte(s.creds.Passphrase))
		} else {
			signer, err = ssh.ParsePrivateKey(keyBytes)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToCreateAuth, err)
		}
		authMethods = append(authMethods, ssh.PublicKeys(signer))
	} else {
		authMethods = append(authMethods, ssh.Password(s.creds.Password))
	}

	return authMethods, nil
}

func resolveIPv4Addr(host string, port uint16) (string, error) {
	ips, err := net.LookupIP(host)

	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToResolveHost, err)
	}

	for _, ip := range ips {
		if ipv4 := ip.To4(); ipv4 != nil {
			return net.JoinHostPort(ipv4.String(), fmt.Sprintf("%d", port)), nil
		}
	}

	return "", fmt.Errorf("%w: no IPv4 address for %s", ErrFailedToResolveHost, host)
}

// probeWorkingDirectory runs pwd on a fresh channel and seeds the tracked
// directory. Called once, immediately after authentication.
func (s *Service) probeWorkingDirectory() error {
	cmd, err := s.client.Command("pwd")

	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToProbePwd, err)
	}

	out, err := cmd.Output()

	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToProbePwd, err)
	}

	s.mu.Lock()
	s.currentDirectory = strings.TrimSpace(string(out))
	s.mu.Unlock()

	return nil
}

// CurrentDirectory returns the tracked working directory. Empty only before
// the initial probe has completed.
func (s *Service) CurrentDirectory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentDirectory
}

func (s *Service) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
