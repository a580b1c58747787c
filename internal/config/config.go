package config

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// SessionKeyLen is the length, in bytes, required of the key used to encrypt session cookies.
const SessionKeyLen = 32

var ErrInvalidConfig = errors.New("invalid configuration")

// Secret is a configuration value that must never appear in logs.
type Secret string

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return "[redacted]"
}

func (s Secret) MarshalZerologObject(e *zerolog.Event) {
	e.Bool("set", s != "")
}

// Reveal returns the secret's actual value. Only call it where the value is handed to the
// component that needs it.
func (s Secret) Reveal() string {
	return string(s)
}

type Stripe struct {
	// PublishableKey identifies the account to the payment provider's client-side library; it is safe to
	// expose.
	PublishableKey string `mapstructure:"publishable_key"`
	// SecretKey authenticates the server with the payment provider.
	SecretKey Secret `mapstructure:"secret_key"`
	// WebhookSecret is the signing secret of the webhook endpoint, used to verify incoming events.
	WebhookSecret Secret `mapstructure:"webhook_secret"`
}

type Configuration struct {
	// Name of the wiki.
	Name string `mapstructure:"name"`
	// Debug, if true, will make the application log all HTTP requests and other events.
	Debug bool `mapstructure:"debug"`
	// DbUrl is the path to the database file.
	DbUrl string `mapstructure:"db_url"`
	// MigrationsFolder is the directory holding the SQL migrations applied on setup.
	MigrationsFolder string `mapstructure:"migrations_folder"`
	Port             uint16 `mapstructure:"port"`
	Https            bool   `mapstructure:"https"`
	// SessionKey encrypts the session cookie. It must be exactly SessionKeyLen bytes long; if empty, a random
	// key is generated and sessions do not survive a restart.
	SessionKey Secret `mapstructure:"session_key"`
	// AllowedOrigins lists the browser origins allowed to read the billing configuration; empty allows
	// any origin. Comma separated when set from the environment.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Stripe         Stripe   `mapstructure:"stripe"`
}

func (c Configuration) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("name", "Blocipedia")
	v.SetDefault("debug", false)
	v.SetDefault("db_url", "blocipedia.db")
	v.SetDefault("migrations_folder", "migrations")
	v.SetDefault("port", 8080)
	v.SetDefault("https", false)
	v.SetDefault("session_key", "")
	v.SetDefault("allowed_origins", []string{})
	v.SetDefault("stripe.publishable_key", "")
	v.SetDefault("stripe.secret_key", "")
	v.SetDefault("stripe.webhook_secret", "")
}

// ReadConfig loads the configuration from an optional config file in the working directory or
// /etc/blocipedia, then from the environment. Environment variables are prefixed with WIKI_
// (WIKI_DB_URL, WIKI_PORT...), except the payment provider's keys, which keep their usual names.
func ReadConfig() (Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/blocipedia")

	v.SetEnvPrefix("wiki")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range map[string]string{
		"stripe.publishable_key": "STRIPE_PUBLISHABLE_KEY",
		"stripe.secret_key":      "STRIPE_SECRET_KEY",
		"stripe.webhook_secret":  "STRIPE_WEBHOOK_SECRET",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return Configuration{}, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("loaded configuration file")
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return Configuration{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	return cfg, cfg.normalize()
}

func (c *Configuration) normalize() error {
	switch len(c.SessionKey) {
	case 0:
		key, err := randomKey(SessionKeyLen)
		if err != nil {
			return err
		}
		c.SessionKey = Secret(key)
		log.Warn().Msg("no session key configured; sessions will not survive a restart")
	case SessionKeyLen:
	default:
		return fmt.Errorf("%w: session key must be %d bytes long", ErrInvalidConfig, SessionKeyLen)
	}

	if c.DbUrl == "" {
		return fmt.Errorf("%w: empty database url", ErrInvalidConfig)
	}
	return nil
}

const keyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomKey(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = keyAlphabet[int(b[i])%len(keyAlphabet)]
	}
	return string(b), nil
}
