package control

import (
	"errors"
	"fmt"
	"time"

	"sshdeck/internal/connections"
	"sshdeck/internal/logger"
	"sshdeck/internal/ssh"
)

// ConnectResponse is the error-free boundary answer for connection attempts:
// network and authentication faults are folded into Success=false plus a
// descriptive message, never raised to the caller.
type ConnectResponse struct {
	Success      bool
	Message      string
	ConnectionID *connections.ID
}

// Service exposes the five boundary operations over an injected registry.
// One Service instance owns the lifecycle of everything it registers.
type Service struct {
	Registry    *connections.Registry
	DialTimeout time.Duration

	// dial produces a connected, authenticated session; swappable so tests
	// can register sessions without a network.
	dial func(*ssh.Credentials) (connections.Session, error)
}

func NewService(registry *connections.Registry, dialTimeout time.Duration) *Service {
	s := &Service{
		Registry:    registry,
		DialTimeout: dialTimeout,
	}

	s.dial = func(creds *ssh.Credentials) (connections.Session, error) {
		session := ssh.NewService(creds, s.DialTimeout)

		if err := session.Connect(); err != nil {
			return nil, err
		}

		return session, nil
	}

	return s
}

// Connect establishes, authenticates and registers a new session. A failed
// attempt never leaves a partial entry in the registry.
func (s *Service) Connect(creds *ssh.Credentials) *ConnectResponse {
	if err := creds.Validate(); err != nil {
		return &ConnectResponse{
			Success: false,
			Message: err.Error(),
		}
	}

	session, err := s.dial(creds)

	if err != nil {
		if errors.Is(err, ssh.ErrAuthenticationFailed) {
			return &ConnectResponse{
				Success: false,
				Message: fmt.Sprintf("Authentication failed: %v", err),
			}
		}

		return &ConnectResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to create SSH connection: %v", err),
		}
	}

	id := connections.DeriveID(creds.Username, creds.Host, creds.Port)

	s.Registry.Insert(id, session)

	logger.Info("Connected %s", id)

	return &ConnectResponse{
		Success:      true,
		Message:      "Successfully connected and authenticated",
		ConnectionID: &id,
	}
}

// Execute runs a command on the identified connection. An unknown ID is a
// boundary error; everything that happens remotely, including a command
// that could not be dispatched, comes back as a CommandResult.
func (s *Service) Execute(id connections.ID, command string) (*ssh.CommandResult, error) {
	var result *ssh.CommandResult

	err := s.Registry.WithSession(id, func(session connections.Session) error {
		var execErr error
		result, execErr = session.Execute(command)

		if execErr != nil {
			// Dispatch failure: -1 is reserved for this and never collides
			// with a real remote exit code. The session stays registered and
			// usable.
			result = &ssh.CommandResult{
				Stderr:           fmt.Sprintf("Command execution failed: %v", execErr),
				ExitStatus:       -1,
				Success:          false,
				CurrentDirectory: session.CurrentDirectory(),
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// CurrentDirectory reports the tracked working directory for the connection.
func (s *Service) CurrentDirectory(id connections.ID) (string, error) {
	return s.Registry.CurrentDirectory(id)
}

// Disconnect closes and removes the connection. True exactly once per ID.
func (s *Service) Disconnect(id connections.ID) bool {
	removed := s.Registry.Remove(id)

	if removed {
		logger.Info("Disconnected %s", id)
	}

	return removed
}

// List returns a snapshot of the registered connection IDs.
func (s *Service) List() []connections.ID {
	return s.Registry.IDs()
}
