package commands

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

var ShellSSHKeyPassEmpty = false

var ShellCmd = &cobra.Command{
	Use:   "shell <profile-name | username@hostname[:port]>",
	Short: "Open an interactive directory-aware session",
	Long: `Open an interactive session against a remote host. Every line is executed
over a fresh SSH channel, but "cd" commands are tracked so the session keeps
a persistent working directory, like a regular shell.

The target is either a saved profile name (see 'sshdeck profile') or a
username@hostname[:port] URL. Type 'exit' to disconnect.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		creds, err := buildSSHCredentials(cmd, args[0], ShellSSHKeyPassEmpty)

		if err != nil {
			cmd.PrintErrf("❌ Error: %v\n", err)
			return
		}

		response := controlService.Connect(creds)

		if !response.Success {
			cmd.PrintErrf("❌ %s\n", response.Message)
			return
		}

		id := *response.ConnectionID

		cmd.Printf("✅ %s\n", response.Message)

		defer func() {
			controlService.Disconnect(id)
			cmd.Printf("Disconnected %s\n", id)
		}()

		directory, err := controlService.CurrentDirectory(id)

		if err != nil {
			cmd.PrintErrf("❌ Error: %v\n", err)
			return
		}

		scanner := bufio.NewScanner(cmd.InOrStdin())

		for {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:%s$ ", id, directory)

			if !scanner.Scan() {
				return
			}

			line := scanner.Text()

			if line == "" {
				continue
			}

			if line == "exit" || line == "quit" {
				return
			}

			result, err := controlService.Execute(id, line)

			if err != nil {
				cmd.PrintErrf("❌ Error: %v\n", err)
				return
			}

			if result.Stdout != "" {
				fmt.Fprint(cmd.OutOrStdout(), result.Stdout)
			}

			if result.Stderr != "" {
				fmt.Fprint(cmd.ErrOrStderr(), result.Stderr)
			}

			if !result.Success {
				cmd.PrintErrf("(exit status %d)\n", result.ExitStatus)
			}

			directory = result.CurrentDirectory
		}
	},
}

func init() {
	ShellCmd.Flags().String("ssh-key-path", "", "Path to SSH private key file (for passwordless authentication)")
	ShellCmd.Flags().BoolVar(&ShellSSHKeyPassEmpty, "ssh-key-pass-empty", false, "Skip SSH key passphrase prompt (for passwordless SSH keys)")
}
