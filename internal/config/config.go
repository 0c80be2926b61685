// Package config provides configuration loading for the egeria command line client.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/egeria-client-go/internal/telemetry"
	"github.com/stacklok/egeria-client-go/pkg/egeria"
	"github.com/stacklok/egeria-client-go/pkg/output"
)

// EnvPrefix is the prefix of every environment variable the client reads
const EnvPrefix = "EGERIA"

// TokenEnvVar holds a bearer token when neither token nor tokenFile is configured
const TokenEnvVar = EnvPrefix + "_TOKEN"

// Keys used for environment and flag overrides. Environment variables are the key
// upper-cased, with dots replaced by underscores and EnvPrefix prepended, so
// platform.url is EGERIA_PLATFORM_URL.
const (
	KeyPlatformURL    = "platform.url"
	KeyServerName     = "platform.serverName"
	KeyUserID         = "platform.userID"
	KeyTimeout        = "platform.timeout"
	KeyLocalQualifier = "platform.localQualifier"
	KeyPageSize       = "platform.pageSize"
	KeyTokenFile      = "platform.tokenFile"
	KeyFormat         = "output.format"
	KeyFormatSet      = "output.formatSet"
	KeyCatalogFile    = "output.catalogFile"
)

var overrideKeys = []string{
	KeyPlatformURL, KeyServerName, KeyUserID, KeyTimeout, KeyLocalQualifier,
	KeyPageSize, KeyTokenFile, KeyFormat, KeyFormatSet, KeyCatalogFile,
}

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path  string
	viper *viper.Viper
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		// Validate the path to prevent path traversal attacks
		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// WithViper applies environment variables and bound flags from v over the file.
// Without this option LoadConfig uses a fresh viper reading only the environment.
func WithViper(v *viper.Viper) Option {
	return func(cfg *loaderConfig) error {
		if v == nil {
			return fmt.Errorf("viper instance is required")
		}
		cfg.viper = v
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	Platform PlatformConfig `yaml:"platform"`
	Output   OutputConfig   `yaml:"output,omitempty"`

	// Telemetry configures OpenTelemetry export. Nil disables it.
	Telemetry *telemetry.Config `yaml:"telemetry,omitempty"`
}

// PlatformConfig identifies the Egeria platform and the view server to call
type PlatformConfig struct {
	// URL is the OMAG server platform root, for example https://localhost:9443
	URL string `yaml:"url"`

	// ServerName is the view server hosting the view services
	ServerName string `yaml:"serverName"`

	// UserID is the user the platform sees for every call
	UserID string `yaml:"userID"`

	// Token is an already-issued bearer token. Prefer TokenFile or EGERIA_TOKEN.
	Token string `yaml:"token,omitempty"`

	// TokenFile is the path to a file containing the bearer token
	// The file content is trimmed of surrounding whitespace
	TokenFile string `yaml:"tokenFile,omitempty"`

	// Timeout bounds each call (e.g., "30s", "2m")
	Timeout string `yaml:"timeout,omitempty"`

	LocalQualifier string `yaml:"localQualifier,omitempty"`
	PageSize       int    `yaml:"pageSize,omitempty"`
}

// OutputConfig sets defaults for rendering query results
type OutputConfig struct {
	// Format is the default output format (JSON, DICT, LIST, MD, FORM, REPORT, MERMAID)
	Format string `yaml:"format,omitempty"`

	// FormatSet names the format set used instead of the one named after the type
	FormatSet string `yaml:"formatSet,omitempty"`

	// CatalogFile is a YAML or HuJSON file of format sets merged over the defaults
	CatalogFile string `yaml:"catalogFile,omitempty"`
}

// GetToken returns the bearer token using the following priority:
// 1. Read from TokenFile if specified
// 2. Read from the EGERIA_TOKEN environment variable
// 3. The Token field
//
// An empty token is not an error; the platform decides whether it needs one.
func (p *PlatformConfig) GetToken() (string, error) {
	// Priority 1: Read from file if specified
	if p.TokenFile != "" {
		cleanPath := filepath.Clean(p.TokenFile)

		data, err := os.ReadFile(cleanPath)
		if err != nil {
			return "", fmt.Errorf("failed to read token from file %s: %w", p.TokenFile, err)
		}

		token := strings.TrimSpace(string(data))
		if token == "" {
			return "", fmt.Errorf("token file %s is empty", p.TokenFile)
		}
		return token, nil
	}

	// Priority 2: Check environment variable
	if envToken := os.Getenv(TokenEnvVar); envToken != "" {
		return envToken, nil
	}

	return p.Token, nil
}

// GetTimeout returns the parsed call timeout. Zero means the client default.
func (p *PlatformConfig) GetTimeout() (time.Duration, error) {
	if p.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(p.Timeout)
}

// ClientConfig builds the SDK configuration, resolving the token
func (c *Config) ClientConfig() (egeria.Config, error) {
	timeout, err := c.Platform.GetTimeout()
	if err != nil {
		return egeria.Config{}, fmt.Errorf("platform.timeout: %w", err)
	}
	token, err := c.Platform.GetToken()
	if err != nil {
		return egeria.Config{}, err
	}
	return egeria.Config{
		PlatformURL:    c.Platform.URL,
		ServerName:     c.Platform.ServerName,
		UserID:         c.Platform.UserID,
		Token:          token,
		Timeout:        timeout,
		LocalQualifier: c.Platform.LocalQualifier,
		PageSize:       c.Platform.PageSize,
	}, nil
}

// GetFormat returns the configured output format, LIST when none is set
func (o *OutputConfig) GetFormat() output.Format {
	if o.Format == "" {
		return output.LIST
	}
	f, err := output.ParseFormat(o.Format)
	if err != nil {
		return output.LIST
	}
	return f
}

// NewViper returns a viper reading EGERIA_ environment variables for every override key
func NewViper() *viper.Viper {
	return BindEnv(viper.New())
}

// BindEnv makes v read EGERIA_ environment variables for every override key
func BindEnv(v *viper.Viper) *viper.Viper {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range overrideKeys {
		// AutomaticEnv only answers Get; IsSet needs the explicit binding
		_ = v.BindEnv(key)
	}
	return v
}

// LoadConfig loads the configuration file, if any, then applies overrides
func LoadConfig(opts ...Option) (*Config, error) {
	loaderCfg := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loaderCfg); err != nil {
			return nil, err
		}
	}

	var config Config
	if loaderCfg.path != "" {
		data, err := os.ReadFile(loaderCfg.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	v := loaderCfg.viper
	if v == nil {
		v = NewViper()
	}
	config.applyOverrides(v)

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyOverrides copies every override key that v has a value for
func (c *Config) applyOverrides(v *viper.Viper) {
	setString := func(key string, dst *string) {
		if v.IsSet(key) {
			if s := v.GetString(key); s != "" {
				*dst = s
			}
		}
	}

	setString(KeyPlatformURL, &c.Platform.URL)
	setString(KeyServerName, &c.Platform.ServerName)
	setString(KeyUserID, &c.Platform.UserID)
	setString(KeyTimeout, &c.Platform.Timeout)
	setString(KeyLocalQualifier, &c.Platform.LocalQualifier)
	setString(KeyTokenFile, &c.Platform.TokenFile)
	setString(KeyFormat, &c.Output.Format)
	setString(KeyFormatSet, &c.Output.FormatSet)
	setString(KeyCatalogFile, &c.Output.CatalogFile)

	if v.IsSet(KeyPageSize) {
		if n := v.GetInt(KeyPageSize); n != 0 {
			c.Platform.PageSize = n
		}
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := c.Platform.validate(); err != nil {
		return err
	}

	if c.Output.Format != "" {
		if _, err := output.ParseFormat(c.Output.Format); err != nil {
			return fmt.Errorf("output.format: %w", err)
		}
	}

	if err := c.Telemetry.Validate(); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	return nil
}

func (p *PlatformConfig) validate() error {
	if p.URL == "" {
		return fmt.Errorf("platform.url is required")
	}
	if p.ServerName == "" {
		return fmt.Errorf("platform.serverName is required")
	}
	if p.UserID == "" {
		return fmt.Errorf("platform.userID is required")
	}
	if p.Token != "" && p.TokenFile != "" {
		return fmt.Errorf("platform: only one of token or tokenFile may be specified")
	}
	if _, err := p.GetTimeout(); err != nil {
		return fmt.Errorf("platform.timeout must be a valid duration (e.g., '30s', '2m'): %w", err)
	}
	if p.PageSize < 0 {
		return fmt.Errorf("platform.pageSize cannot be negative")
	}
	return nil
}
