package egeria

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config identifies the platform, the view server and the user a Client talks to
type Config struct {
	// PlatformURL is the base URL of the OMAG server platform, for example https://localhost:9443
	PlatformURL string `yaml:"platformURL"`
	// ServerName is the view server hosting the view services
	ServerName string `yaml:"serverName"`
	// UserID is used in platform-services URLs
	UserID string `yaml:"userID"`
	// Token is an already-issued bearer token
	Token string `yaml:"-"`
	// Timeout bounds each call. Zero means httpclient.DefaultTimeout.
	Timeout time.Duration `yaml:"timeout,omitempty"`
	// LocalQualifier prefixes generated qualified names
	LocalQualifier string `yaml:"localQualifier,omitempty"`
	// PageSize is applied to query bodies that leave pageSize unset
	PageSize int `yaml:"pageSize,omitempty"`
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if c.PlatformURL == "" {
		return fmt.Errorf("platformURL is required")
	}
	u, err := url.Parse(c.PlatformURL)
	if err != nil {
		return fmt.Errorf("platformURL is invalid: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("platformURL must use http or https, got %q", u.Scheme)
	}
	if c.ServerName == "" {
		return fmt.Errorf("serverName is required")
	}
	if strings.Contains(c.ServerName, "/") {
		return fmt.Errorf("serverName cannot contain '/'")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	if c.PageSize < 0 {
		return fmt.Errorf("pageSize cannot be negative")
	}
	return nil
}

func (c *Config) platformURL() string {
	return strings.TrimRight(c.PlatformURL, "/")
}
