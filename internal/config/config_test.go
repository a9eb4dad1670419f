package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorful-demo/commerce-gateway/internal/models"
)

func TestLoad(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("COMMERCETOOLS_AUTH_URL", "https://auth.example.com")
	t.Setenv("COMMERCETOOLS_API_URL", "https://api.example.com")
	t.Setenv("COMMERCETOOLS_PROJECT_KEY", "demo-project")
	t.Setenv("COMMERCETOOLS_CLIENT_ID", "client-id")
	t.Setenv("COMMERCETOOLS_CLIENT_SECRET", "client-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "demo-project", cfg.Commercetools.ProjectKey)
	assert.NoError(t, cfg.Commercetools.Validate())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestValidateListsAllMissingSettings(t *testing.T) {
	err := CommercetoolsConfig{ProjectKey: "demo-project"}.Validate()
	require.Error(t, err)

	var confErr *models.ConfigError
	require.ErrorAs(t, err, &confErr)
	assert.ElementsMatch(t, []string{
		"COMMERCETOOLS_AUTH_URL",
		"COMMERCETOOLS_API_URL",
		"COMMERCETOOLS_CLIENT_ID",
		"COMMERCETOOLS_CLIENT_SECRET",
	}, confErr.Missing)
}
