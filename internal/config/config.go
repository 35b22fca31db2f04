package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultJWTSecret is used when jwt.secret is not configured. Running with it
// is insecure; startup logs a warning but does not refuse to boot.
const DefaultJWTSecret = "fitforge-dev-secret-change-me"

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// JWTConfig defines JWT specific configuration.
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// OpenAIConfig configures the plan-generation client. An empty APIKey
// activates the deterministic fallback generator.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Nested keys map to env vars, e.g. jwt.secret -> JWT_SECRET,
	// openai.api_key -> OPENAI_API_KEY. AutomaticEnv only resolves keys viper
	// already knows about, so every key needs a default (empty where there is
	// no sensible value) or env-only deployments would never see it.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.dsn", "host=localhost user=fitforge password=fitforge dbname=fitforge port=5432 sslmode=disable TimeZone=UTC")
	viper.SetDefault("jwt.secret", DefaultJWTSecret)
	viper.SetDefault("jwt.expiration", "168h") // 7 days
	viper.SetDefault("openai.api_key", "")
	viper.SetDefault("openai.model", "gpt-4o-mini")
	viper.SetDefault("openai.base_url", "https://api.openai.com")
	viper.SetDefault("s3.endpoint", "")
	viper.SetDefault("s3.region", "")
	viper.SetDefault("s3.access_key_id", "")
	viper.SetDefault("s3.secret_access_key", "")
	viper.SetDefault("s3.bucket_name", "")
	viper.SetDefault("s3.use_ssl", true)

	err = viper.ReadInConfig()
	// Config file is optional; env vars and defaults can carry the whole setup.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
