package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application. It is loaded once at
// startup and treated as immutable afterwards.
type Config struct {
	Environment string
	Port        string
	PublicDir   string
	Email       EmailConfig
	Airtable    AirtableConfig
	Auth        AuthConfig
	RateLimit   RateLimitConfig
}

// EmailConfig holds Resend delivery configuration.
type EmailConfig struct {
	APIKey     string   `validate:"required"`
	Endpoint   string   `validate:"required,url"`
	From       string   `validate:"required"`
	Recipients []string `validate:"required,min=1,dive,email"`
}

// AirtableConfig holds the record-store configuration.
type AirtableConfig struct {
	Token    string `validate:"required"`
	Endpoint string `validate:"required,url"`
	BaseID   string `validate:"required"`
	TableID  string `validate:"required"`
}

// AuthConfig holds admin authentication configuration.
type AuthConfig struct {
	JWTSecret string
}

// RateLimitConfig holds rate limiting for the public form endpoint.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// defaultRecipients is the internal distribution list every lead
// notification goes to when RECIPIENTS is not overridden.
var defaultRecipients = []string{
	"rafael@jrcopier.com",
	"jeffp@landscapesunlimitedmn.com",
	"pmurphy@landscapesunlimitedmn.com",
	"monica@landscapesunlimitedmn.com",
	"casey@landscapesunlimitedmn.com",
	"info@landscapesunlimitedmn.com",
	"design@mmcreate.com",
}

// Load loads configuration from environment variables and an optional .env
// file. Credentials have no built-in defaults; call Validate before use.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PUBLIC_DIR", "./public")
	viper.SetDefault("RESEND_ENDPOINT", "https://api.resend.com")
	viper.SetDefault("FROM_EMAIL", "Landscapes Unlimited <noreply@webleadsnow.com>")
	viper.SetDefault("AIRTABLE_ENDPOINT", "https://api.airtable.com")
	viper.SetDefault("RATE_LIMIT_RPS", 5.0)
	viper.SetDefault("RATE_LIMIT_BURST", 10)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		PublicDir:   viper.GetString("PUBLIC_DIR"),
		Email: EmailConfig{
			APIKey:     viper.GetString("RESEND_API_KEY"),
			Endpoint:   viper.GetString("RESEND_ENDPOINT"),
			From:       viper.GetString("FROM_EMAIL"),
			Recipients: recipientList(viper.GetString("RECIPIENTS")),
		},
		Airtable: AirtableConfig{
			Token:    viper.GetString("AIRTABLE_TOKEN"),
			Endpoint: viper.GetString("AIRTABLE_ENDPOINT"),
			BaseID:   viper.GetString("AIRTABLE_BASE_ID"),
			TableID:  viper.GetString("AIRTABLE_TABLE_ID"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("JWT_SECRET"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}

// Validate checks that all externally supplied credentials are present.
func (c *Config) Validate() error {
	v := validator.New()

	if err := v.Struct(c.Email); err != nil {
		return fmt.Errorf("email configuration invalid: %w", err)
	}
	if err := v.Struct(c.Airtable); err != nil {
		return fmt.Errorf("airtable configuration invalid: %w", err)
	}

	return nil
}

// recipientList parses a comma-separated recipient override, falling back to
// the fixed internal distribution list.
func recipientList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return defaultRecipients
	}

	var recipients []string
	for _, addr := range strings.Split(raw, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			recipients = append(recipients, addr)
		}
	}

	if len(recipients) == 0 {
		return defaultRecipients
	}
	return recipients
}
