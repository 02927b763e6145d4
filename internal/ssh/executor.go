package ssh

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/ssh"
)

// Each exec channel starts in the remote login directory, so a plain shell
// "cd" would be forgotten by the next command. The executor emulates a
// persistent working directory by rewriting every command line:
//
//	cd <arg>        ->  cd <arg> && pwd
//	<anything else> ->  cd '<tracked dir>' && <anything else>
//
// The rewrite interpolates both the cd argument and the tracked directory
// literally, without shell escaping, matching the behavior external callers
// already depend on. Paths containing single quotes or && will break the
// rewritten command line.

// isDirectoryChange reports whether the trimmed command is "cd" or starts
// with "cd ".
func isDirectoryChange(command string) bool {
	trimmed := strings.TrimSpace(command)
	return trimmed == "cd" || strings.HasPrefix(trimmed, "cd ")
}

// rewriteCommand builds the command line actually sent over the channel.
func rewriteCommand(command string, currentDirectory string, isCD bool) string {
	if isCD {
		arg := strings.TrimSpace(strings.TrimSpace(command)[2:])
		return fmt.Sprintf("cd %s && pwd", arg)
	}

	if currentDirectory == "" {
		// Only possible before the initial probe has run; never prepend a
		// broken cd '' prefix.
		return command
	}

	return fmt.Sprintf("cd '%s' && %s", currentDirectory, command)
}

// Execute runs one command over a fresh channel, preserving working-directory
// continuity. A non-zero remote exit is a normal CommandResult; an error is
// returned only when the command could not be dispatched, in which case the
// tracked directory is untouched.
func (s *Service) Execute(command string) (*CommandResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run == nil {
		return nil, ErrSessionNotConnected
	}

	isCD := isDirectoryChange(command)
	fullCommand := rewriteCommand(command, s.currentDirectory, isCD)

	out, err := s.run(fullCommand)

	if err != nil {
		return nil, err
	}

	result := &CommandResult{
		Stdout:     out.stdout,
		Stderr:     out.stderr,
		ExitStatus: out.exitCode,
		Success:    out.exitCode == 0,
	}

	if isCD && out.exitCode == 0 {
		// The trailing pwd output is the new directory; it is an
		// implementation artifact, not command output for the caller.
		s.currentDirectory = strings.TrimSpace(out.stdout)
		result.Stdout = ""
	}

	result.CurrentDirectory = s.currentDirectory

	return result, nil
}

// runOverChannel opens a command channel, requests a pseudo-terminal and
// captures stdout, stderr and the exit status.
func (s *Service) runOverChannel(command string) (*execOutput, error) {
	cmd, err := s.client.Command(command)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenChannel, err)
	}

	if err := cmd.RequestPty("xterm", 24, 80, ssh.TerminalModes{}); err != nil {
		cmd.Close()
		return nil, fmt.Errorf("%w: %v", ErrFailedToRequestPty, err)
	}

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	out := &execOutput{
		stdout: stdout.String(),
		stderr: stderr.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*ssh.ExitError); ok {
			out.exitCode = exitErr.ExitStatus()
			return out, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrCommandChannelBroken, err)
	}

	return out, nil
}
