package ssh

// Credentials describes one remote target and exactly one way to
// authenticate against it.
type Credentials struct {
	Host     string
	Port     uint16
	Username string
	// Password authentication
	Password string
	// Key-based authentication
	PrivateKeyPath string
	// Passphrase for private key (if encrypted)
	Passphrase string
}

// Validate enforces the password-XOR-key invariant before any network
// attempt is made.
func (c *Credentials) Validate() error {
	if c.Password == "" && c.PrivateKeyPath == "" {
		return ErrNoAuthMethodProvided
	}
	if c.Password != "" && c.PrivateKeyPath != "" {
		return ErrAmbiguousAuthMethod
	}
	return nil
}

// CommandResult carries the outcome of one remote command. ExitStatus -1 is
// reserved for commands that could not be dispatched at all and never
// collides with a real remote exit code.
type CommandResult struct {
	Stdout     string
	Stderr     string
	ExitStatus int
	Success    bool
	// CurrentDirectory is the tracked working directory after this command
	// ran, not before.
	CurrentDirectory string
}
