package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"IPSS_CONFIG", "IPSS_ENDPOINT", "IPSS_BASE_PATH", "IPSS_SITE_URL", "IPSS_PAGE_URL",
		"IPSS_LOCALE", "IPSS_JOURNAL", "IPSS_LOG_LEVEL", "IPSS_LOG_FILE", "LC_ALL", "LC_MESSAGES", "LANG",
	} {
		t.Setenv(k, "")
	}
	// keep a developer's .env out of the test
	chdirForTest(t, t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultBasePath, cfg.BasePath)
	assert.Equal(t, DefaultSiteURL, cfg.SiteURL)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:5173/ipss-self-check/", cfg.ResolvedPageURL())
	assert.ErrorIs(t, cfg.Validate(), ErrEndpointRequired)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "ipss.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
endpoint: https://collector.example.org/ipss
base_path: /survey/
site_url: https://example.org
locale: zh
journal_path: /tmp/ipss.db
`), 0o600))

	t.Run("yaml values", func(t *testing.T) {
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://collector.example.org/ipss", cfg.Endpoint)
		assert.Equal(t, "https://example.org/survey/", cfg.ResolvedPageURL())
		assert.Equal(t, "zh", cfg.Locale)
		assert.Equal(t, "/tmp/ipss.db", cfg.JournalPath)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("env overrides yaml", func(t *testing.T) {
		t.Setenv("IPSS_ENDPOINT", "https://other.example.org/submit")
		t.Setenv("IPSS_LOCALE", "en-GB")
		t.Setenv("IPSS_PAGE_URL", "https://example.org/survey/?utm_source=mail")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://other.example.org/submit", cfg.Endpoint)
		assert.Equal(t, "en", cfg.Locale)
		assert.Equal(t, "https://example.org/survey/?utm_source=mail", cfg.ResolvedPageURL())
	})

	t.Run("config path from env", func(t *testing.T) {
		t.Setenv("IPSS_CONFIG", path)
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/ipss.db", cfg.JournalPath)
	})
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("IPSS_ENDPOINT=https://dotenv.example.org/ipss\n"), 0o600))
	// godotenv never overrides a variable that exists, even when empty
	require.NoError(t, os.Unsetenv("IPSS_ENDPOINT"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://dotenv.example.org/ipss", cfg.Endpoint)
}

func TestLocaleFromLANG(t *testing.T) {
	clearEnv(t)
	t.Setenv("LANG", "zh_CN.UTF-8")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "zh", cfg.Locale)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateEndpoint(t *testing.T) {
	cases := map[string]bool{
		"https://example.org/ipss": true,
		"http://localhost:8080/":   true,
		"ftp://example.org/":       false,
		"/relative/path":           false,
		"https://":                 false,
	}
	for endpoint, ok := range cases {
		err := (&Config{Endpoint: endpoint}).Validate()
		if ok {
			assert.NoError(t, err, endpoint)
		} else {
			assert.ErrorIs(t, err, ErrEndpointInvalid, endpoint)
		}
	}
}
