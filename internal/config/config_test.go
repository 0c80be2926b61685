package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/egeria-client-go/internal/telemetry"
	"github.com/stacklok/egeria-client-go/pkg/egeria"
	"github.com/stacklok/egeria-client-go/pkg/output"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name             string
		yamlContent      string
		skipFileCreation bool
		wantConfig       *Config
		wantErr          string
	}{
		{
			name: "full_config",
			yamlContent: `platform:
  url: https://localhost:9443
  serverName: qs-view-server
  userID: erinoverview
  timeout: 45s
  localQualifier: Coco
  pageSize: 50
output:
  format: dict
  formatSet: Basic
  catalogFile: /etc/egeria/formats.yaml
telemetry:
  enabled: true
  endpoint: otel-collector:4318
  tracing:
    enabled: true`,
			wantConfig: &Config{
				Platform: PlatformConfig{
					URL:            "https://localhost:9443",
					ServerName:     "qs-view-server",
					UserID:         "erinoverview",
					Timeout:        "45s",
					LocalQualifier: "Coco",
					PageSize:       50,
				},
				Output: OutputConfig{
					Format:      "dict",
					FormatSet:   "Basic",
					CatalogFile: "/etc/egeria/formats.yaml",
				},
				Telemetry: &telemetry.Config{
					Enabled:  true,
					Endpoint: "otel-collector:4318",
					Tracing:  &telemetry.TracingConfig{Enabled: true},
				},
			},
		},
		{
			name: "minimal_config",
			yamlContent: `platform:
  url: https://localhost:9443
  serverName: qs-view-server
  userID: erinoverview`,
			wantConfig: &Config{
				Platform: PlatformConfig{
					URL:        "https://localhost:9443",
					ServerName: "qs-view-server",
					UserID:     "erinoverview",
				},
			},
		},
		{
			name: "missing_server_name",
			yamlContent: `platform:
  url: https://localhost:9443
  userID: erinoverview`,
			wantErr: "platform.serverName is required",
		},
		{
			name: "bad_timeout",
			yamlContent: `platform:
  url: https://localhost:9443
  serverName: qs-view-server
  userID: erinoverview
  timeout: soon`,
			wantErr: "platform.timeout must be a valid duration",
		},
		{
			name: "unknown_format",
			yamlContent: `platform:
  url: https://localhost:9443
  serverName: qs-view-server
  userID: erinoverview
output:
  format: HTML`,
			wantErr: "output.format",
		},
		{
			name: "bad_sampling",
			yamlContent: `platform:
  url: https://localhost:9443
  serverName: qs-view-server
  userID: erinoverview
telemetry:
  enabled: true
  tracing:
    enabled: true
    sampling: 2`,
			wantErr: "telemetry: tracing: sampling must be between 0.0 and 1.0",
		},
		{
			name:        "invalid_yaml",
			yamlContent: `platform: [invalid yaml`,
			wantErr:     "failed to parse YAML config",
		},
		{
			name:             "file_not_found",
			skipFileCreation: true,
			wantErr:          "failed to evaluate symlinks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "config.yaml")

			if tt.skipFileCreation {
				configPath = filepath.Join(tmpDir, "non-existent.yaml")
			} else {
				err := os.WriteFile(configPath, []byte(tt.yamlContent), 0600)
				require.NoError(t, err)
			}

			config, err := LoadConfig(WithConfigPath(configPath), WithViper(viper.New()))

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantConfig, config)
		})
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`platform:
  url: https://localhost:9443
  serverName: qs-view-server
  userID: erinoverview
  pageSize: 10
output:
  format: LIST`), 0600))

	v := viper.New()
	v.Set(KeyServerName, "view-server")
	v.Set(KeyPageSize, 100)
	v.Set(KeyFormat, "REPORT")
	// empty values do not clear the file
	v.Set(KeyUserID, "")

	config, err := LoadConfig(WithConfigPath(configPath), WithViper(v))
	require.NoError(t, err)

	assert.Equal(t, "https://localhost:9443", config.Platform.URL)
	assert.Equal(t, "view-server", config.Platform.ServerName)
	assert.Equal(t, "erinoverview", config.Platform.UserID)
	assert.Equal(t, 100, config.Platform.PageSize)
	assert.Equal(t, output.REPORT, config.Output.GetFormat())
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set(KeyPlatformURL, "http://egeria:9443")
	v.Set(KeyServerName, "view-server")
	v.Set(KeyUserID, "peterprofile")

	config, err := LoadConfig(WithViper(v))
	require.NoError(t, err)
	assert.Equal(t, "http://egeria:9443", config.Platform.URL)

	_, err = LoadConfig(WithViper(viper.New()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "platform.url is required")
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("EGERIA_PLATFORM_URL", "https://env-platform:9443")
	t.Setenv("EGERIA_PLATFORM_SERVERNAME", "env-view-server")
	t.Setenv("EGERIA_PLATFORM_USERID", "garygeeke")
	t.Setenv("EGERIA_OUTPUT_FORMAT", "md")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://env-platform:9443", config.Platform.URL)
	assert.Equal(t, "env-view-server", config.Platform.ServerName)
	assert.Equal(t, "garygeeke", config.Platform.UserID)
	assert.Equal(t, output.MD, config.Output.GetFormat())
}

func TestWithConfigPath(t *testing.T) {
	tmpDir := t.TempDir()

	err := os.MkdirAll(filepath.Join(tmpDir, "configs"), 0755)
	require.NoError(t, err, "failed to create subdir")

	err = os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("platform: {}"), 0600)
	require.NoError(t, err, "failed to write config file")

	err = os.WriteFile(filepath.Join(tmpDir, "configs", "app.yaml"), []byte("platform: {}"), 0600)
	require.NoError(t, err, "failed to write config file")

	t.Chdir(tmpDir)

	tests := []struct {
		name     string
		path     string
		wantPath string
		wantErr  bool
	}{
		{
			name:    "empty path",
			path:    "",
			wantErr: true,
		},
		{
			name:    "path traversal at start",
			path:    "../etc/passwd",
			wantErr: true,
		},
		{
			name:    "path traversal in middle",
			path:    "config/../../etc/passwd",
			wantErr: true,
		},
		{
			name:    "path traversal with dot",
			path:    "./../etc/passwd",
			wantErr: true,
		},
		{
			name:     "valid relative path",
			path:     "config.yaml",
			wantPath: "config.yaml",
		},
		{
			name:     "valid relative path with subdir",
			path:     "configs/app.yaml",
			wantPath: "configs/app.yaml",
		},
		{
			name:    "missing file",
			path:    "configs/missing.yaml",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt := WithConfigPath(tt.path)
			cfg := &loaderConfig{}
			err := opt(cfg)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantPath, cfg.path)
			}
		})
	}
}

func TestWithViperRequiresInstance(t *testing.T) {
	t.Parallel()

	err := WithViper(nil)(&loaderConfig{})
	require.Error(t, err)
}

func TestPlatformConfigGetToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		platform  *PlatformConfig
		setupFile func(t *testing.T) string
		wantToken string
		errMsg    string
	}{
		{
			name:     "token_from_file",
			platform: &PlatformConfig{Token: "ignored"},
			setupFile: func(t *testing.T) string {
				t.Helper()
				tokenFile := filepath.Join(t.TempDir(), "token")
				require.NoError(t, os.WriteFile(tokenFile, []byte("  abc.def.ghi\n"), 0600))
				return tokenFile
			},
			wantToken: "abc.def.ghi",
		},
		{
			name:     "empty_token_file",
			platform: &PlatformConfig{},
			setupFile: func(t *testing.T) string {
				t.Helper()
				tokenFile := filepath.Join(t.TempDir(), "token")
				require.NoError(t, os.WriteFile(tokenFile, []byte("\n"), 0600))
				return tokenFile
			},
			errMsg: "is empty",
		},
		{
			name:     "token_file_not_found",
			platform: &PlatformConfig{TokenFile: "/nonexistent/token"},
			errMsg:   "failed to read token from file",
		},
		{
			name:      "inline_token",
			platform:  &PlatformConfig{Token: "inline"},
			wantToken: "inline",
		},
		{
			name:     "no_token",
			platform: &PlatformConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.setupFile != nil {
				tt.platform.TokenFile = tt.setupFile(t)
			}

			token, err := tt.platform.GetToken()

			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestPlatformConfigGetTokenFromEnvironment(t *testing.T) {
	t.Setenv(TokenEnvVar, "from-env")

	token, err := (&PlatformConfig{Token: "inline"}).GetToken()
	require.NoError(t, err)
	assert.Equal(t, "from-env", token)
}

func TestClientConfig(t *testing.T) {
	t.Parallel()

	config := &Config{Platform: PlatformConfig{
		URL:            "https://localhost:9443",
		ServerName:     "qs-view-server",
		UserID:         "erinoverview",
		Token:          "t0ken",
		Timeout:        "2m",
		LocalQualifier: "Coco",
		PageSize:       25,
	}}

	got, err := config.ClientConfig()
	require.NoError(t, err)
	assert.Equal(t, egeria.Config{
		PlatformURL:    "https://localhost:9443",
		ServerName:     "qs-view-server",
		UserID:         "erinoverview",
		Token:          "t0ken",
		Timeout:        2 * time.Minute,
		LocalQualifier: "Coco",
		PageSize:       25,
	}, got)

	config.Platform.Timeout = "later"
	_, err = config.ClientConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "platform.timeout")
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		return &Config{Platform: PlatformConfig{
			URL:        "https://localhost:9443",
			ServerName: "qs-view-server",
			UserID:     "erinoverview",
		}}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing_url",
			mutate:  func(c *Config) { c.Platform.URL = "" },
			wantErr: "platform.url is required",
		},
		{
			name:    "missing_user",
			mutate:  func(c *Config) { c.Platform.UserID = "" },
			wantErr: "platform.userID is required",
		},
		{
			name: "token_and_token_file",
			mutate: func(c *Config) {
				c.Platform.Token = "a"
				c.Platform.TokenFile = "/run/secrets/token"
			},
			wantErr: "only one of token or tokenFile",
		},
		{
			name:    "negative_page_size",
			mutate:  func(c *Config) { c.Platform.PageSize = -1 },
			wantErr: "platform.pageSize cannot be negative",
		},
		{
			name:   "disabled_telemetry_is_not_checked",
			mutate: func(c *Config) { c.Telemetry = &telemetry.Config{Headers: map[string]string{"": "x"}} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := valid()
			tt.mutate(c)
			err := c.validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	var nilConfig *Config
	require.Error(t, nilConfig.validate())
}

func TestOutputConfigGetFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, output.LIST, (&OutputConfig{}).GetFormat())
	assert.Equal(t, output.JSON, (&OutputConfig{Format: "json"}).GetFormat())
	assert.Equal(t, output.LIST, (&OutputConfig{Format: "table"}).GetFormat())
	assert.Equal(t, output.LIST, (&OutputConfig{Format: "bogus"}).GetFormat())
}
