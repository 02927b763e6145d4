package main

import (
	"fmt"
	"sshdeck/cmd/sshdeck/commands"
	"sshdeck/cmd/sshdeck/config"
	"sshdeck/internal/database"
	"sshdeck/internal/logger"
	"sshdeck/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sshdeck",
	Short: "Stateful remote-shell sessions over stateless SSH exec channels",
	Long: `sshdeck manages multiple concurrent SSH sessions and presents each one as a
stateful, directory-aware command interface, even though every SSH exec
channel starts fresh in the remote login directory.

Each registered connection tracks its working directory: "cd" commands move
it, and every other command is executed inside it, exactly as an interactive
shell would behave.

Typical usage:

1. Open an interactive session:

sshdeck shell sshuser@140.120.110.10:22

(or save the target first with 'sshdeck profile add' and use the profile name)

2. Run the control API for programmatic access:

sshdeck serve

The control API exposes connection open/exec/directory/close/list operations
as local JSON endpoints, with a process-scoped connection registry. Sessions
live only as long as the process; there is no persistence across restarts.
`,
	Version: fmt.Sprintf("%s (commit: %s, date: %s, arch: %s, os: %s); db path: %s; profile: %s", version.Version, version.Commit, version.Date, version.Arch, version.OS, config.DatabasePath, config.SshdeckProfile),
}

func main() {
	logger.SetLevel(config.Config.LogLevel)

	db, err := database.InitDB()

	if err != nil {
		rootCmd.PrintErrf("Failed to initialize database at %s: %v\n", config.Config.DatabasePath, err)
		return
	}

	defer func() {
		if err := database.CloseDB(db); err != nil {
			rootCmd.PrintErrf("Failed to close database: %v\n", err)
		}
	}()

	commands.RegisterCommands(rootCmd, db)

	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrf("%v\n", err)
	}
}
