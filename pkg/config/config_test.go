package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigurations_Defaults(t *testing.T) {
	fs := afero.NewMemMapFs()

	configs, err := LoadConfigurations(fs, "/etc/portfolio")
	require.NoError(t, err)

	assert.Equal(t, "INFO", configs.LogLevel)
	assert.Equal(t, "127.0.0.1", configs.Host)
	assert.Equal(t, "8000", configs.Port)
	assert.Equal(t, "projects.db", configs.DbFilePath)
	assert.Equal(t, ".", configs.SiteDir)
	assert.Equal(t, "", configs.TemplateDir)
	assert.Equal(t, uint64(15), configs.ReadTimeoutSeconds)
	assert.Equal(t, uint64(15), configs.WriteTimeoutSeconds)
	assert.Equal(t, "", configs.SessionSecret)
}

func TestLoadConfigurations_FromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "/etc/portfolio/config.yml", []byte(`
LogLevel: DEBUG
Port: "9090"
DbFilePath: /var/lib/portfolio/projects.db
SiteDir: /srv/site
SessionSecret: file-secret
ReadTimeoutSeconds: 30
`), 0644)
	require.NoError(t, err)

	configs, err := LoadConfigurations(fs, "/etc/portfolio")
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", configs.LogLevel)
	assert.Equal(t, "9090", configs.Port)
	assert.Equal(t, "/var/lib/portfolio/projects.db", configs.DbFilePath)
	assert.Equal(t, "/srv/site", configs.SiteDir)
	assert.Equal(t, "file-secret", configs.SessionSecret)
	assert.Equal(t, uint64(30), configs.ReadTimeoutSeconds)
	assert.Equal(t, uint64(15), configs.WriteTimeoutSeconds)
	assert.Equal(t, "127.0.0.1", configs.Host)
}

func TestLoadConfigurations_EnvOverridesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "/etc/portfolio/config.yml", []byte("Port: \"9090\"\nLogLevel: DEBUG\n"), 0644)
	require.NoError(t, err)

	t.Setenv("PORTFOLIO_PORT", "8181")
	t.Setenv("PORTFOLIO_DB_FILE_PATH", "/tmp/other.db")
	t.Setenv("PORTFOLIO_WRITE_TIMEOUT_SECONDS", "5")

	configs, err := LoadConfigurations(fs, "/etc/portfolio")
	require.NoError(t, err)

	assert.Equal(t, "8181", configs.Port)
	assert.Equal(t, "/tmp/other.db", configs.DbFilePath)
	assert.Equal(t, uint64(5), configs.WriteTimeoutSeconds)
	assert.Equal(t, "DEBUG", configs.LogLevel)
}

func TestLoadConfigurations_MalformedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "/etc/portfolio/config.yml", []byte("Port: [unterminated\n"), 0644)
	require.NoError(t, err)

	_, err = LoadConfigurations(fs, "/etc/portfolio")
	assert.Error(t, err)
}
