package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsOnly verifies that the defaults alone form a valid config.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, DefaultAdpointBaseURL, cfg.Adpoint.BaseURL)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultContactsConcurrency, cfg.Adpoint.ContactsConcurrency)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Empty(t, cfg.Auth.APIKey)
	assert.Empty(t, cfg.Adpoint.AuthHeader)
}

// TestBuild_EmptyBuilderFailsValidation verifies that a config without any
// source does not pass validation.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier config
// is not overwritten by a later one, while empty fields are filled.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:9000"}},
		&StructuredConfig{
			Server:  Server{HTTPAddress: "127.0.0.1:1111", RequestTimeout: time.Minute},
			Adpoint: Adpoint{AuthHeader: "cred"},
		},
	)
	b.withDefaults()

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "cred", cfg.Adpoint.AuthHeader)
	assert.Equal(t, DefaultAdpointBaseURL, cfg.Adpoint.BaseURL)
}

// ── withFlags / withEnv / withJSON ───────────────────────────────────────────

func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-does-not-exist"})

	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithEnv_AppendsConfig(t *testing.T) {
	setEnvVars(t, map[string]string{"X_API_KEY": "k"})

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "k", b.configs[0].Auth.APIKey)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_PathFromEarlierConfig(t *testing.T) {
	p := writeTempJSONConfig(t, `{"adpoint": {"auth_header": "from-json"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: p})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "from-json", b.configs[1].Adpoint.AuthHeader)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── GetStructuredConfig ──────────────────────────────────────────────────────

// TestGetStructuredConfig_Precedence verifies flags > env > JSON > defaults.
func TestGetStructuredConfig_Precedence(t *testing.T) {
	p := writeTempJSONConfig(t, `{
		"adpoint": {"base_url": "https://json.example.com/v1", "request_timeout": "7s"},
		"server": {"http_address": "127.0.0.1:7000"},
		"log": {"level": "error"}
	}`)
	setEnvVars(t, map[string]string{
		"CONFIG":              p,
		"X_API_KEY":           "env-key",
		"ADPOINT_AUTH_HEADER": "env-cred",
		"ADPOINT_BASE_URL":    "https://env.example.com/v1",
		"SERVER_ADDRESS":      "127.0.0.1:8000",
	})
	t.Chdir(t.TempDir())

	cfg, err := GetStructuredConfig([]string{"-a", "127.0.0.1:9000"})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "https://env.example.com/v1", cfg.Adpoint.BaseURL)
	assert.Equal(t, "env-key", cfg.Auth.APIKey)
	assert.Equal(t, "env-cred", cfg.Adpoint.AuthHeader)
	assert.Equal(t, 7*time.Second, cfg.Adpoint.RequestTimeout)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, DefaultContactsConcurrency, cfg.Adpoint.ContactsConcurrency)
}

// TestGetStructuredConfig_MissingSecretsStillStarts verifies that the gateway
// configuration is valid without X_API_KEY and ADPOINT_AUTH_HEADER.
func TestGetStructuredConfig_MissingSecretsStillStarts(t *testing.T) {
	clearEnvVars(t)
	t.Chdir(t.TempDir())

	cfg, err := GetStructuredConfig(nil)

	require.NoError(t, err)
	assert.Empty(t, cfg.Auth.APIKey)
	assert.Empty(t, cfg.Adpoint.AuthHeader)
}

// ── validate ─────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig { return defaultConfig() }

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "empty address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative shutdown timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.ShutdownTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "base url without scheme",
			mutate:  func(cfg *StructuredConfig) { cfg.Adpoint.BaseURL = "adpoint.example.com/v1" },
			wantErr: ErrInvalidAdpointConfigs,
		},
		{
			name:    "zero concurrency",
			mutate:  func(cfg *StructuredConfig) { cfg.Adpoint.ContactsConcurrency = 0 },
			wantErr: ErrInvalidAdpointConfigs,
		},
		{
			name:    "negative upstream timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Adpoint.RequestTimeout = -time.Second },
			wantErr: ErrInvalidAdpointConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
