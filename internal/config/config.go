package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	CORSOrigin  string `mapstructure:"CORS_ORIGIN"`
	Port        string `mapstructure:"PORT"`
}

// Load reads the configuration from a .env file and environment variables.
// The returned struct is handed explicitly to each component at startup;
// nothing reads configuration afterwards.
func Load() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("CORS_ORIGIN", "*")
	viper.SetDefault("PORT", "8080")

	viper.AutomaticEnv()

	// Unmarshal only sees keys viper knows about, so bind the env-only ones.
	for _, key := range []string{"DATABASE_URL", "JWT_SECRET", "CORS_ORIGIN", "PORT"} {
		_ = viper.BindEnv(key)
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
