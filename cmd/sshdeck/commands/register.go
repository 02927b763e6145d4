package commands

import (
	"sshdeck/cmd/sshdeck/config"
	"sshdeck/internal/connections"
	"sshdeck/internal/control"
	"sshdeck/internal/profiles"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	dbInstance         *gorm.DB
	profilesRepository *profiles.Repository
	registry           *connections.Registry
	controlService     *control.Service
)

func RegisterCommands(rootCmd *cobra.Command, db *gorm.DB) {
	dbInstance = db
	profilesRepository = profiles.NewRepository(db)
	registry = connections.NewRegistry()
	controlService = control.NewService(registry, config.Config.DialTimeout)

	rootCmd.AddCommand(ServeCmd)
	rootCmd.AddCommand(ShellCmd)
	rootCmd.AddCommand(ProfileCmd)
}
