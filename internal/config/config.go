package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const DeadlineLayout = "2006-01-02"

// RequiredKeys must be present before the application can start.
var RequiredKeys = []string{"ADMIN_PASSWORD", "CONTACT_EMAIL", "RSVP_DEADLINE"}

type Config struct {
	Port                          string `mapstructure:"PORT"`
	DatabasePath                  string `mapstructure:"DATABASE_PATH"`
	PublicURL                     string `mapstructure:"PUBLIC_URL"`
	AdminUsername                 string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword                 string `mapstructure:"ADMIN_PASSWORD"`
	ContactEmail                  string `mapstructure:"CONTACT_EMAIL"`
	RSVPDeadline                  string `mapstructure:"RSVP_DEADLINE"`
	MailServer                    string `mapstructure:"MAIL_SERVER"`
	MailPort                      int    `mapstructure:"MAIL_PORT"`
	MailUsername                  string `mapstructure:"MAIL_USERNAME"`
	MailPassword                  string `mapstructure:"MAIL_PASSWORD"`
	MailUseTLS                    bool   `mapstructure:"MAIL_USE_TLS"`
	MailSubject                   string `mapstructure:"MAIL_SUBJECT"`
	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
	LogFile                       string `mapstructure:"LOG_FILE"`
	LogLevel                      string `mapstructure:"LOG_LEVEL"`
	EnableDocs                    bool   `mapstructure:"ENABLE_DOCS"`

	deadline time.Time
}

// MissingConfigurationKeyError reports a required key that has not been set.
type MissingConfigurationKeyError struct {
	Key string
}

func (e *MissingConfigurationKeyError) Error() string {
	return fmt.Sprintf("missing required configuration key %s", e.Key)
}

// Load reads the configuration from the environment and, when configFile is
// not empty, from that file. Environment variables take precedence.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DATABASE_PATH", "rsvp.db")
	v.SetDefault("PUBLIC_URL", "http://127.0.0.1:8080")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("MAIL_SERVER", "localhost")
	v.SetDefault("MAIL_PORT", 25)
	v.SetDefault("MAIL_USE_TLS", false)
	v.SetDefault("MAIL_SUBJECT", "Bedankt voor je aanmelding voor de bruiloft van Zhen & Ties Jan!")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ENABLE_DOCS", true)

	v.BindEnv("ADMIN_PASSWORD")
	v.BindEnv("CONTACT_EMAIL")
	v.BindEnv("RSVP_DEADLINE")
	v.BindEnv("MAIL_USERNAME")
	v.BindEnv("MAIL_PASSWORD")
	v.BindEnv("DISCORD_BOT_TOKEN")
	v.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")
	v.BindEnv("LOG_FILE")

	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	for _, key := range RequiredKeys {
		if strings.TrimSpace(v.GetString(key)) == "" {
			return nil, &MissingConfigurationKeyError{Key: key}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.SetDeadline(cfg.RSVPDeadline); err != nil {
		return nil, err
	}

	cfg.PublicURL = strings.TrimRight(cfg.PublicURL, "/")

	return &cfg, nil
}

// SetDeadline parses a YYYY-MM-DD date in the local time zone.
func (c *Config) SetDeadline(value string) error {
	deadline, err := time.ParseInLocation(DeadlineLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return fmt.Errorf("invalid RSVP_DEADLINE %q: %w", value, err)
	}
	c.RSVPDeadline = deadline.Format(DeadlineLayout)
	c.deadline = deadline
	return nil
}

func (c *Config) Deadline() time.Time {
	return c.deadline
}

// DeadlinePassed reports whether the local date of now is on or after the
// deadline date. A config without a deadline never closes.
func (c *Config) DeadlinePassed(now time.Time) bool {
	if c.deadline.IsZero() {
		return false
	}
	local := now.In(c.deadline.Location())
	y, m, d := local.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, c.deadline.Location())
	return !today.Before(c.deadline)
}

// ManageURL is the durable link a guest uses to edit a registration.
func (c *Config) ManageURL(code string) string {
	return c.PublicURL + "/" + code
}
