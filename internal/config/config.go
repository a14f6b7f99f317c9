// Package config loads the notifier configuration from a YAML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	SinkMattermost = "mattermost"
	SinkTelegram   = "telegram"
	SinkStdout     = "stdout"

	// EnvPrefix prefixes every environment override, e.g. NOTIFY_MATTERMOST_TOKEN.
	EnvPrefix = "NOTIFY"
)

// DefaultSearchPaths are the directories searched for config.yaml when no
// explicit path is given.
var DefaultSearchPaths = []string{"./config", "/etc/icinga2/scripts"}

type Config struct {
	Sink       string           `mapstructure:"sink"`
	LogLevel   string           `mapstructure:"log_level"`
	LogFormat  string           `mapstructure:"log_format"`
	DryRun     bool             `mapstructure:"dry_run"`
	Mattermost MattermostConfig `mapstructure:"mattermost"`
	Telegram   TelegramConfig   `mapstructure:"telegram"`
}

type MattermostConfig struct {
	URL     string        `mapstructure:"url"`
	Scheme  string        `mapstructure:"scheme"`
	Port    int           `mapstructure:"port"`
	Token   string        `mapstructure:"token"`
	Team    string        `mapstructure:"team"`
	Channel string        `mapstructure:"channel"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type TelegramConfig struct {
	BotToken       string `mapstructure:"bot_token"`
	ChatID         string `mapstructure:"chat_id"`
	CriticalChatID string `mapstructure:"critical_chat_id"`
}

// NewDefault returns a Config with default values.
func NewDefault() *Config {
	return &Config{
		Sink:     SinkMattermost,
		LogLevel: "info",
		Mattermost: MattermostConfig{
			Scheme:  "https",
			Port:    443,
			Timeout: 30 * time.Second,
		},
	}
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	def := NewDefault()

	v.SetDefault("sink", def.Sink)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
	v.SetDefault("dry_run", def.DryRun)
	v.SetDefault("mattermost.url", "")
	v.SetDefault("mattermost.scheme", def.Mattermost.Scheme)
	v.SetDefault("mattermost.port", def.Mattermost.Port)
	v.SetDefault("mattermost.token", "")
	v.SetDefault("mattermost.team", "")
	v.SetDefault("mattermost.channel", "")
	v.SetDefault("mattermost.timeout", def.Mattermost.Timeout)
	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.chat_id", "")
	v.SetDefault("telegram.critical_chat_id", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file into v and decodes the result. An explicit path
// must exist; otherwise a missing config.yaml in the search paths is ignored.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, p := range DefaultSearchPaths {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// ServerURL is the Mattermost base URL. A url that already carries a scheme
// is used as is; otherwise scheme, host and port are combined.
func (m MattermostConfig) ServerURL() (string, error) {
	if m.URL == "" {
		return "", errors.New("mattermost url is empty")
	}
	if strings.Contains(m.URL, "://") {
		u, err := url.Parse(m.URL)
		if err != nil {
			return "", fmt.Errorf("parsing mattermost url: %w", err)
		}
		return strings.TrimRight(u.String(), "/"), nil
	}

	host := strings.TrimRight(m.URL, "/")
	if m.Port != 0 {
		host = host + ":" + strconv.Itoa(m.Port)
	}
	u := url.URL{Scheme: m.Scheme, Host: host}
	return u.String(), nil
}

// EffectiveSink is the sink that will be used, taking dry-run into account.
func (c *Config) EffectiveSink() string {
	if c.DryRun {
		return SinkStdout
	}
	return c.Sink
}
