package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Store backends.
const (
	StoreBackendLocal = "local"
	StoreBackendS3    = "s3"
)

// Asset modes.
const (
	AssetModeFS = "fs"
	AssetModeS3 = "s3"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Store  StoreConfig       `yaml:"store"`
	Assets AssetsConfig      `yaml:"assets"`
	Auth   AuthConfig        `yaml:"auth"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if err := c.Assets.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns the HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// S3Config holds the settings for an S3-compatible endpoint, shared by the
// remote document backend and the object asset store.
type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// Validate validates the S3 settings.
func (c *S3Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Endpoint, validation.Required),
		validation.Field(&c.AccessKey, validation.Required),
		validation.Field(&c.SecretKey, validation.Required),
		validation.Field(&c.Bucket, validation.Required),
	)
}

// StoreConfig selects and configures the document persistence backend.
//
// Backend controls where the entity graph document lives:
//   - "local" (default): a single aggregate JSON file at Path.
//   - "s3": one JSON object per collection in the configured bucket.
type StoreConfig struct {
	Backend string   `yaml:"backend"`
	Path    string   `yaml:"path"`
	S3      S3Config `yaml:"s3"`
}

// Validate validates the store configuration.
func (c *StoreConfig) Validate() error {
	if c.Backend == "" {
		c.Backend = StoreBackendLocal
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Backend, validation.Required, validation.In(StoreBackendLocal, StoreBackendS3)),
	); err != nil {
		return err
	}
	if c.Backend == StoreBackendLocal && c.Path == "" {
		return fmt.Errorf("store: backend is %q but path is empty", StoreBackendLocal)
	}
	if c.Backend == StoreBackendS3 {
		return c.S3.Validate()
	}
	return nil
}

// AssetsConfig configures where screenshot binaries are stored.
type AssetsConfig struct {
	Mode     string        `yaml:"mode"`
	Dir      string        `yaml:"dir"`
	GrantTTL time.Duration `yaml:"grant_ttl"`
	S3       S3Config      `yaml:"s3"`
}

// Validate validates the assets configuration.
func (c *AssetsConfig) Validate() error {
	if c.Mode == "" {
		c.Mode = AssetModeFS
	}
	if c.GrantTTL <= 0 {
		c.GrantTTL = 15 * time.Minute
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AssetModeFS, AssetModeS3)),
	); err != nil {
		return err
	}
	if c.Mode == AssetModeFS && c.Dir == "" {
		return fmt.Errorf("assets: mode is %q but dir is empty", AssetModeFS)
	}
	if c.Mode == AssetModeS3 {
		return c.S3.Validate()
	}
	return nil
}

// UserConfig is one row of the static identity table.
type UserConfig struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
	Role         string `yaml:"role"`
}

// Validate validates a user entry.
func (c *UserConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.PasswordHash, validation.Required),
		validation.Field(&c.Role, validation.In("user", "admin")),
	)
}

// AuthConfig holds authentication configuration.
//
// Mode controls how API requests are protected:
//   - "disabled" (default): no token required, suitable for local dev.
//   - "token": Bearer token authentication; Token must be non-empty.
//
// Users is the static table behind POST /api/auth/login, independent of Mode.
type AuthConfig struct {
	Mode  string       `yaml:"mode"`
	Token string       `yaml:"token"`
	Users []UserConfig `yaml:"users"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	for i := range c.Users {
		if err := c.Users[i].Validate(); err != nil {
			return fmt.Errorf("auth: user %d: %w", i, err)
		}
	}
	return nil
}

// AuthEnabled returns true when token authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Store: StoreConfig{
			Backend: StoreBackendLocal,
			Path:    "./data/shotmark.json",
		},
		Assets: AssetsConfig{
			Mode:     AssetModeFS,
			Dir:      "./data/assets",
			GrantTTL: 15 * time.Minute,
		},
		Auth: AuthConfig{
			Mode: AuthModeDisabled,
		},
	}
}
