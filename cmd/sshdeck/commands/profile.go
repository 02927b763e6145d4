package commands

import (
	"github.com/spf13/cobra"
)

var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved connection profiles",
	Long:  `Manage saved connection profiles. A profile stores a target (username, host, port and optionally a private key path) under a short name; secrets are never stored.`,
}

var AddProfileCmd = &cobra.Command{
	Use:   "add name username@hostname[:port]",
	Short: "Save a connection profile",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		username, hostname, port, err := parseSSHURL(args[1])

		if err != nil {
			cmd.PrintErrf("❌ Error: %v\n", err)
			return
		}

		keyPath := cmd.Flag("ssh-key-path").Value.String()

		profile, err := profilesRepository.Create(args[0], hostname, port, username, keyPath)

		if err != nil {
			cmd.PrintErrf("❌ Error: %v\n", err)
			return
		}

		cmd.Printf("✅ Saved profile '%s' (%s@%s:%d)\n", profile.Name, profile.Username, profile.Host, profile.Port)
	},
}

var ListProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved connection profiles",
	Run: func(cmd *cobra.Command, _ []string) {
		allProfiles := profilesRepository.GetAll()

		if len(allProfiles) == 0 {
			cmd.Println("No profiles saved")
			return
		}

		for _, profile := range allProfiles {
			if profile.PrivateKeyPath != "" {
				cmd.Printf("%s\t%s@%s:%d\tkey: %s\n", profile.Name, profile.Username, profile.Host, profile.Port, profile.PrivateKeyPath)
			} else {
				cmd.Printf("%s\t%s@%s:%d\n", profile.Name, profile.Username, profile.Host, profile.Port)
			}
		}
	},
}

var RemoveProfileCmd = &cobra.Command{
	Use:   "remove name",
	Short: "Remove a saved connection profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := profilesRepository.Delete(args[0]); err != nil {
			cmd.PrintErrf("❌ Error: %v\n", err)
			return
		}

		cmd.Printf("✅ Removed profile '%s'\n", args[0])
	},
}

var ExportProfileCmd = &cobra.Command{
	Use:   "export name",
	Short: "Render a profile as an OpenSSH ssh_config entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profile, err := profilesRepository.GetByName(args[0])

		if err != nil {
			cmd.PrintErrf("❌ Error: %v\n", err)
			return
		}

		entry, err := profile.AsSSHConfigEntry()

		if err != nil {
			cmd.PrintErrf("❌ Error: %v\n", err)
			return
		}

		cmd.Print(entry)
	},
}

func init() {
	ProfileCmd.AddCommand(AddProfileCmd)
	ProfileCmd.AddCommand(ListProfilesCmd)
	ProfileCmd.AddCommand(RemoveProfileCmd)
	ProfileCmd.AddCommand(ExportProfileCmd)

	AddProfileCmd.Flags().String("ssh-key-path", "", "Path to SSH private key file to store with the profile")
}
