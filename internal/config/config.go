package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Port              string `mapstructure:"PORT"`
	StoreDriver       string `mapstructure:"STORE_DRIVER"`
	StorePath         string `mapstructure:"STORE_PATH"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	OwnerPasswordHash string `mapstructure:"OWNER_PASSWORD_HASH"`
	SeedTags          bool   `mapstructure:"SEED_TAGS"`
	RandomPickCount   int    `mapstructure:"RANDOM_PICK_COUNT"`
}

var AppConfig *Config

const defaultRandomPickCount = 3

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// AuthEnabled reports whether mutations require an owner token.
func (c *Config) AuthEnabled() bool {
	return c.OwnerPasswordHash != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("STORE_DRIVER", DriverSQLite)
	v.SetDefault("STORE_PATH", "boardshelf.db")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("OWNER_PASSWORD_HASH", "")
	v.SetDefault("SEED_TAGS", false)
	v.SetDefault("RANDOM_PICK_COUNT", defaultRandomPickCount)
}

// Load reads configuration from a .env file in dir and environment variables.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	setDefaults(v)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.RandomPickCount <= 0 {
		cfg.RandomPickCount = defaultRandomPickCount
	}
	return &cfg, nil
}

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	cfg, err := Load(".")
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
	AppConfig = cfg
}
