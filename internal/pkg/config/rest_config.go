package config

import (
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestConfig is the complete configuration of the REST API process
type RestConfig struct {
	Port          string                `mapstructure:"port" validate:"required,numeric"`
	AppURL        string                `mapstructure:"app_url" validate:"omitempty,url"`
	Database      DatabaseSettings      `mapstructure:"database"`
	BlobConnector BlobConnectorSettings `mapstructure:"blob_connector"`
	Cache         CacheSettings         `mapstructure:"cache"`
	Auth          AuthSettings          `mapstructure:"auth"`
	Logger        LoggerSettings        `mapstructure:"logger"`
}

// restEnv holds the environment variables that take precedence over the config file
type restEnv struct {
	Admins               []string `env:"ADMINS" envSeparator:","`
	AppKey               string   `env:"APP_KEY"`
	Port                 string   `env:"PORT"`
	AppURL               string   `env:"APP_URL"`
	LogLevel             string   `env:"LOG_LEVEL"`
	LogType              string   `env:"LOG_TYPE"`
	LogFilePath          string   `env:"LOG_FILE_PATH"`
	DBType               string   `env:"DB_TYPE"`
	DBDSN                string   `env:"DB_DSN"`
	StaticStoragePath    string   `env:"STATIC_STORAGE_PATH"`
	BlobConnectionString string   `env:"BLOB_CONNECTION_STRING"`
	SupabaseURL          string   `env:"SUPABASE_URL"`
	SupabaseKey          string   `env:"SUPABASE_KEY"`
}

// InitializeRestConfig reads the YAML file at path, applies environment overrides and validates the result
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *RestConfig) applyEnv() error {
	var raw restEnv
	if err := ParseEnv(&raw); err != nil {
		return err
	}

	if len(raw.Admins) > 0 {
		admins, err := ParseAdmins(raw.Admins)
		if err != nil {
			return fmt.Errorf("ADMINS: %w", err)
		}
		c.Auth.Admins = admins
	}

	override(&c.Auth.AppKey, raw.AppKey)
	override(&c.Port, raw.Port)
	override(&c.AppURL, raw.AppURL)
	override(&c.Logger.LogLevel, raw.LogLevel)
	override(&c.Logger.LogType, raw.LogType)
	override(&c.Logger.FilePath, raw.LogFilePath)
	override(&c.Database.Type, raw.DBType)
	override(&c.Database.DSN, raw.DBDSN)
	override(&c.Cache.StaticStoragePath, raw.StaticStoragePath)
	override(&c.BlobConnector.ConnectionString, raw.BlobConnectionString)
	override(&c.BlobConnector.SupabaseURL, raw.SupabaseURL)
	override(&c.BlobConnector.SupabaseKey, raw.SupabaseKey)

	return nil
}

// LocalUploadsPath is where local connector objects are served when public_base_url is derived from app_url
const LocalUploadsPath = "uploads"

// applyDefaults fills file logger defaults and derives the local connector's public base url from app_url
func (c *RestConfig) applyDefaults() error {
	c.Logger.ApplyFileDefaults()

	if c.BlobConnector.CloudProvider != LocalCloudProvider || c.BlobConnector.PublicBaseURL != "" || c.AppURL == "" {
		return nil
	}

	publicBaseURL, err := url.JoinPath(c.AppURL, LocalUploadsPath)
	if err != nil {
		return fmt.Errorf("invalid app_url %q: %w", c.AppURL, err)
	}
	c.BlobConnector.PublicBaseURL = publicBaseURL
	return nil
}

func override(target *string, value string) {
	if value != "" {
		*target = value
	}
}

// Validate checks the top level fields and every nested settings struct
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.StructPartial(c, "Port", "AppURL"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.BlobConnector.Validate(); err != nil {
		return err
	}
	overlaps, err := c.Cache.OverlapsLocalStorage(&c.BlobConnector)
	if err != nil {
		return err
	}
	if overlaps {
		return fmt.Errorf("cache static_storage_path %q must not overlap the local connector directory %q",
			c.Cache.StaticStoragePath, c.BlobConnector.LocalStorageDir())
	}

	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}

	return nil
}
