package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Skill
	Skill   SkillConfig
	Timer   TimerConfig
	Session SessionConfig

	// Network guards
	Security SecurityConfig

	// Observability
	Tracing TracingConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// TunnelAPI is the local ngrok API used to print the public skill
	// endpoint during development. Empty disables the lookup.
	TunnelAPI string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SkillConfig struct {
	// ApplicationID restricts the endpoint to one skill. Empty accepts any.
	ApplicationID      string
	TimestampTolerance time.Duration
	Locale             string
	RequestTimeout     time.Duration
}

type TimerConfig struct {
	// APIEndpoint overrides the endpoint sent in each request.
	APIEndpoint    string
	RequestTimeout time.Duration
	FanoutLimit    int
	Label          string
	AnnounceText   string
}

type SessionConfig struct {
	MaxEntries int
	TTL        time.Duration
}

type SecurityConfig struct {
	AllowedIPs []string
	// TrustedProxies may set the client address through X-Forwarded-For.
	TrustedProxies  []string
	RateLimitPerMin int
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.TunnelAPI = viper.GetString("http_server.tunnel_api")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Skill
	cfg.Skill.ApplicationID = viper.GetString("skill.application_id")
	cfg.Skill.TimestampTolerance = viper.GetDuration("skill.timestamp_tolerance")
	cfg.Skill.Locale = viper.GetString("skill.locale")
	cfg.Skill.RequestTimeout = viper.GetDuration("skill.request_timeout")

	// Timer API
	cfg.Timer.APIEndpoint = viper.GetString("timer.api_endpoint")
	cfg.Timer.RequestTimeout = viper.GetDuration("timer.request_timeout")
	cfg.Timer.FanoutLimit = viper.GetInt("timer.fanout_limit")
	cfg.Timer.Label = viper.GetString("timer.label")
	cfg.Timer.AnnounceText = viper.GetString("timer.announce_text")

	// Session store
	cfg.Session.MaxEntries = viper.GetInt("session.max_entries")
	cfg.Session.TTL = viper.GetDuration("session.ttl")

	// Security
	cfg.Security.RateLimitPerMin = viper.GetInt("security.rate_limit_per_min")
	cfg.Security.AllowedIPs = splitList(viper.Get("security.allowed_ips"))
	cfg.Security.TrustedProxies = splitList(viper.Get("security.trusted_proxies"))

	// Tracing
	cfg.Tracing.Enabled = viper.GetBool("tracing.enabled")
	cfg.Tracing.Endpoint = viper.GetString("tracing.endpoint")
	cfg.Tracing.ServiceName = viper.GetString("tracing.service_name")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("skill.timestamp_tolerance", "150s")
	viper.SetDefault("skill.locale", "ja-JP")
	viper.SetDefault("skill.request_timeout", "8s")

	viper.SetDefault("timer.request_timeout", "5s")
	viper.SetDefault("timer.fanout_limit", 4)
	viper.SetDefault("timer.label", "タイマーのお知らせ")
	viper.SetDefault("timer.announce_text", "お知らせです。")

	viper.SetDefault("session.max_entries", 10000)
	viper.SetDefault("session.ttl", "30m")

	viper.SetDefault("security.rate_limit_per_min", 600)

	viper.SetDefault("tracing.enabled", false)
	viper.SetDefault("tracing.endpoint", "localhost:4317")
	viper.SetDefault("tracing.service_name", "voice-timer-skill")
}

func (c *Config) validate() error {
	switch {
	case c.HTTPServer.Port <= 0:
		return errors.New("http_server.port must be positive")
	case c.Timer.RequestTimeout <= 0:
		return errors.New("timer.request_timeout must be positive")
	case c.Skill.RequestTimeout <= 0:
		return errors.New("skill.request_timeout must be positive")
	case c.Session.TTL <= 0:
		return errors.New("session.ttl must be positive")
	case c.Session.MaxEntries <= 0:
		return errors.New("session.max_entries must be positive")
	case c.Timer.FanoutLimit <= 0:
		return errors.New("timer.fanout_limit must be positive")
	}
	return nil
}

// splitList accepts a YAML list or a comma separated string, since env
// overrides always arrive as a single string.
func splitList(raw any) []string {
	var items []string
	switch v := raw.(type) {
	case string:
		items = strings.Split(v, ",")
	case []any:
		for _, item := range v {
			items = append(items, fmt.Sprint(item))
		}
	case []string:
		items = v
	}

	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
