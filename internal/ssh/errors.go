package ssh

import "errors"

// Connection establishment errors
var (
	ErrNoAuthMethodProvided = errors.New("no authentication method provided (password or private key path required)")
	ErrAmbiguousAuthMethod  = errors.New("both password and private key path provided; exactly one is required")
	ErrFailedToCreateAuth   = errors.New("failed to create auth")
	ErrFailedToResolveHost  = errors.New("failed to resolve IPv4 address")
	ErrFailedToConnect      = errors.New("failed to establish TCP connection")
	ErrHandshakeFailed      = errors.New("SSH handshake failed")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrFailedToProbePwd     = errors.New("failed to read initial working directory")
)

// Command execution errors
var (
	ErrSessionNotConnected  = errors.New("SSH session not established")
	ErrFailedToOpenChannel  = errors.New("failed to open command channel")
	ErrFailedToRequestPty   = errors.New("failed to request pseudo-terminal")
	ErrCommandChannelBroken = errors.New("command channel failed")
)
