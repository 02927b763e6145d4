package profiles

import (
	"time"

	"sshdeck/cmd/sshdeck/config"
	"sshdeck/internal/templates"

	"github.com/aymerick/raymond"
)

// Profile is a saved connection target. Profiles carry everything needed to
// reach a host except the secret: passwords and passphrases are prompted at
// connect time, never persisted.
type Profile struct {
	ID   string `gorm:"type:text;primaryKey"`
	Name string `gorm:"type:text;not null;uniqueIndex"`

	Host     string `gorm:"type:text;not null"`
	Port     uint16 `gorm:"type:integer;not null"`
	Username string `gorm:"type:text;not null"`

	PrivateKeyPath string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"type:timestamp;not null"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null"`
}

// AsSSHConfigEntry renders the profile as an OpenSSH ssh_config host block.
func (p *Profile) AsSSHConfigEntry() (string, error) {
	template, err := templates.Configs.ReadFile(config.Config.SSHConfigExportTemplatePath)

	if err != nil {
		return "", err
	}

	tpl, err := raymond.Parse(string(template))

	if err != nil {
		return "", err
	}

	return tpl.Exec(map[string]interface{}{
		"name":           p.Name,
		"host":           p.Host,
		"port":           p.Port,
		"username":       p.Username,
		"privateKeyPath": p.PrivateKeyPath,
	})
}
