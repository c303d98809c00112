package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar booking specifics
	GoogleCalendar GoogleCalendarConfig
	Gemini         GeminiConfig
	Scheduling     SchedulingConfig
	Session        SessionConfig
	RateLimit      RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GoogleCalendarConfig struct {
	CredentialsPath     string
	CalendarID          string
	ServiceAccountEmail string
}

type GeminiConfig struct {
	APIKey string
	Model  string
	APIURL string
}

// SchedulingConfig carries the booking window knobs. Hours are local to the
// configured timezone.
type SchedulingConfig struct {
	Timezone           string
	WorkHoursStart     int
	WorkHoursEnd       int
	GranularityMinutes int
	SearchLimitDays    int
}

type SessionConfig struct {
	TTLMinutes int
	MaxEntries int
}

type RateLimitConfig struct {
	Enabled bool
	PerMin  int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.ServiceAccountEmail = viper.GetString("google_calendar.service_account_email")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Gemini
	cfg.Gemini.APIKey = expandEnvVar(viper.GetString("gemini.api_key"))
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	if geminiKey := viper.GetString("google_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is not configured - set gemini.api_key in config.yaml or GOOGLE_API_KEY")
	}

	// Scheduling window
	cfg.Scheduling.Timezone = viper.GetString("scheduling.timezone")
	cfg.Scheduling.WorkHoursStart = viper.GetInt("scheduling.work_hours_start")
	cfg.Scheduling.WorkHoursEnd = viper.GetInt("scheduling.work_hours_end")
	cfg.Scheduling.GranularityMinutes = viper.GetInt("scheduling.granularity_minutes")
	cfg.Scheduling.SearchLimitDays = viper.GetInt("scheduling.search_limit_days")
	if cfg.Scheduling.WorkHoursStart >= cfg.Scheduling.WorkHoursEnd {
		return nil, fmt.Errorf("scheduling.work_hours_start (%d) must be before scheduling.work_hours_end (%d)",
			cfg.Scheduling.WorkHoursStart, cfg.Scheduling.WorkHoursEnd)
	}

	// Sessions
	cfg.Session.TTLMinutes = viper.GetInt("session.ttl_minutes")
	cfg.Session.MaxEntries = viper.GetInt("session.max_entries")

	// Rate limiting
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("scheduling.timezone", "Asia/Kolkata")
	viper.SetDefault("scheduling.work_hours_start", 9)
	viper.SetDefault("scheduling.work_hours_end", 17)
	viper.SetDefault("scheduling.granularity_minutes", 30)
	viper.SetDefault("scheduling.search_limit_days", 30)
	viper.SetDefault("session.ttl_minutes", 30)
	viper.SetDefault("session.max_entries", 1000)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_min", 60)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
