package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr   string
	DatabasePath string

	// the one account allowed into /posts/admin
	AdminEmail string

	// credentials the seed binary provisions the admin with
	SeedPassword string
}

// Load reads configuration from the environment (ONEWHEEL_* variables) and
// an optional onewheel.yaml next to the binary, falling back to defaults
// that match the seed fixtures.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("listen_addr", ":3000")
	v.SetDefault("database_path", "onewheel.db")
	v.SetDefault("admin_email", "justin@rabidrabbit.io")
	v.SetDefault("seed_password", "rabidrabbit")

	v.SetEnvPrefix("ONEWHEEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("onewheel")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		ListenAddr:   v.GetString("listen_addr"),
		DatabasePath: v.GetString("database_path"),
		AdminEmail:   v.GetString("admin_email"),
		SeedPassword: v.GetString("seed_password"),
	}, nil
}
