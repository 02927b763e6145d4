package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"sshdeck/internal/logger"

	"github.com/joho/godotenv"
)

func init() {
	envFiles := []string{
		".env",
	}

	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err != nil {
			if !os.IsNotExist(err) {
				logger.Warn("Error loading %s: %v", envFile, err)
			}
		}
	}
}

func GetEnv(key string, defaultValue string) string {
	value := os.Getenv(key)

	if value == "" {
		return defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)

	if value == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(value)

	if err != nil {
		logger.Warn("Invalid duration in %s: %v", key, err)
		return defaultValue
	}

	return parsed
}

func getEnvUint16(key string, defaultValue uint16) uint16 {
	value := os.Getenv(key)

	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseUint(value, 10, 16)

	if err != nil {
		logger.Warn("Invalid port in %s: %v", key, err)
		return defaultValue
	}

	return uint16(parsed)
}

func getHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("Could not determine home directory: %v", err)
		return ""
	}
	return homeDir
}

func getDefaultDatabasePath(fallback string, profile string) string {
	homeDir := getHomeDir()
	if homeDir == "" {
		return fallback
	}
	return filepath.Join(homeDir, ".sshdeck", profile, "sshdeck.db")
}

type Configuration struct {
	DatabasePath string

	SshdeckProfile string

	// Address the control API binds to; loopback by default, the API carries
	// credentials in request bodies.
	ControlBindAddr string

	DefaultSSHPort uint16
	DialTimeout    time.Duration

	SSHConfigExportTemplatePath string

	LogLevel string
}

var SshdeckProfile = GetEnv("SSHDECK_PROFILE", "default")
var DatabasePath = GetEnv("DATABASE_PATH", getDefaultDatabasePath("/app/sshdeck/sshdeck.db", SshdeckProfile))

var Config = &Configuration{
	DatabasePath: DatabasePath,

	SshdeckProfile: SshdeckProfile,

	ControlBindAddr: GetEnv("SSHDECK_CONTROL_BIND_ADDR", "127.0.0.1:4870"),

	DefaultSSHPort: getEnvUint16("SSHDECK_DEFAULT_SSH_PORT", 22),
	DialTimeout:    getEnvDuration("SSHDECK_DIAL_TIMEOUT", 10*time.Second),

	SSHConfigExportTemplatePath: "configs/sshconfig/entry.hbs",

	LogLevel: GetEnv("SSHDECK_LOG_LEVEL", "INFO"),
}
