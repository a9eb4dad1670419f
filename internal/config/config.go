package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/colorful-demo/commerce-gateway/internal/models"
)

type Config struct {
	Server        ServerConfig        `envPrefix:"SERVER_"`
	Commercetools CommercetoolsConfig `envPrefix:"COMMERCETOOLS_"`
}

type ServerConfig struct {
	Addr string `env:"ADDR" envDefault:":8080"`
}

// CommercetoolsConfig holds the commerce platform settings. The fields are
// deliberately not tagged `required`: absence must surface as a ConfigError
// naming every missing setting when the credential is first requested, not
// as an env-parse failure.
type CommercetoolsConfig struct {
	AuthURL      string `env:"AUTH_URL"`
	APIURL       string `env:"API_URL"`
	ProjectKey   string `env:"PROJECT_KEY"`
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
}

// Validate reports every missing required setting at once.
func (c CommercetoolsConfig) Validate() error {
	var missing []string
	if c.AuthURL == "" {
		missing = append(missing, "COMMERCETOOLS_AUTH_URL")
	}
	if c.APIURL == "" {
		missing = append(missing, "COMMERCETOOLS_API_URL")
	}
	if c.ProjectKey == "" {
		missing = append(missing, "COMMERCETOOLS_PROJECT_KEY")
	}
	if c.ClientID == "" {
		missing = append(missing, "COMMERCETOOLS_CLIENT_ID")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "COMMERCETOOLS_CLIENT_SECRET")
	}
	if len(missing) > 0 {
		return &models.ConfigError{Missing: missing}
	}
	return nil
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
