package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	LLM struct {
		Provider string
		APIKey   string
		Model    string
		BaseURL  string
	}
	OIDC struct {
		Issuer       string
		ClientID     string
		ClientSecret string
		RedirectURL  string
	}
	CORS struct {
		AllowedOrigins []string
	}
	SessionLifetime time.Duration
	InsecureCookies bool
}

// OIDCEnabled reports whether login through the identity provider is configured.
func (c *Config) OIDCEnabled() bool {
	return c.OIDC.Issuer != ""
}

// Load reads config from the environment (SPEECH_ prefix), an optional .env
// file and an optional speechwriter.yaml. The environment wins over both files.
func Load() (*Config, error) {
	_ = godotenv.Load() // optional .env, never overrides the real environment

	v := viper.New()
	v.SetEnvPrefix("SPEECH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("speechwriter")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "file:speechwriter.db?_pragma=busy_timeout(5000)")
	v.SetDefault("llm.provider", "anthropic")
	v.SetDefault("session.lifetime", "720h")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.LLM.Provider = v.GetString("llm.provider")
	cfg.LLM.Model = v.GetString("llm.model")
	cfg.LLM.BaseURL = v.GetString("llm.base_url")
	cfg.LLM.APIKey = v.GetString("llm.api_key")
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = providerKeyFromEnv(v, cfg.LLM.Provider)
	}
	cfg.OIDC.Issuer = v.GetString("oidc.issuer")
	cfg.OIDC.ClientID = v.GetString("oidc.client_id")
	cfg.OIDC.ClientSecret = v.GetString("oidc.client_secret")
	cfg.OIDC.RedirectURL = v.GetString("oidc.redirect_url")
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))
	cfg.InsecureCookies = v.GetBool("insecure_cookies")

	lifetime, err := time.ParseDuration(v.GetString("session.lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid SPEECH_SESSION_LIFETIME: %w", err)
	}
	cfg.SessionLifetime = lifetime

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// The generation API key is deliberately not required here: a missing key is
// reported per request as a configuration error.
func (c *Config) validate() error {
	switch c.DB.Driver {
	case "sqlite3", "mysql", "postgres":
	default:
		return fmt.Errorf("SPEECH_DB_DRIVER must be sqlite3, mysql, or postgres (got %q)", c.DB.Driver)
	}
	if c.DB.DSN == "" {
		return fmt.Errorf("SPEECH_DB_DSN is required")
	}
	switch c.LLM.Provider {
	case "anthropic", "openai", "openai-compatible":
	default:
		return fmt.Errorf("unsupported SPEECH_LLM_PROVIDER %q", c.LLM.Provider)
	}
	if c.OIDCEnabled() {
		if c.OIDC.ClientID == "" {
			return fmt.Errorf("SPEECH_OIDC_CLIENT_ID is required when SPEECH_OIDC_ISSUER is set")
		}
		if c.OIDC.ClientSecret == "" {
			return fmt.Errorf("SPEECH_OIDC_CLIENT_SECRET is required when SPEECH_OIDC_ISSUER is set")
		}
		if c.OIDC.RedirectURL == "" {
			return fmt.Errorf("SPEECH_OIDC_REDIRECT_URL is required when SPEECH_OIDC_ISSUER is set")
		}
	}
	return nil
}

// providerKeyFromEnv falls back to the vendor's conventional variable name.
func providerKeyFromEnv(v *viper.Viper, provider string) string {
	key := "ANTHROPIC_API_KEY"
	if provider != "anthropic" {
		key = "OPENAI_API_KEY"
	}
	_ = v.BindEnv("vendor_api_key", key)
	return v.GetString("vendor_api_key")
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimRight(strings.TrimSpace(p), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}
