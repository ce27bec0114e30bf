package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// All slot times ("HH:mm") are interpreted in this location.
	TimeZone string `mapstructure:"TIME_ZONE"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB    int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB     int    `mapstructure:"REDIS_AUTH_DB"`
	RedisReminderDB int    `mapstructure:"REDIS_REMINDER_DB"`

	// Meeting provider (Zoom). Empty credentials fall back to local rooms.
	ZoomAPIKey    string `mapstructure:"ZOOM_API_KEY"`
	ZoomAPISecret string `mapstructure:"ZOOM_API_SECRET"`

	// Payments.
	StripeKey string `mapstructure:"STRIPE_KEY"`

	// AI text completion.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Speech-to-text. Empty disables dictation endpoints.
	GoogleServiceAccountFile string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_FILE"`

	// Transactional email.
	BrevoAPIKey     string `mapstructure:"BREVO_API_KEY"`
	EmailSender     string `mapstructure:"EMAIL_SENDER"`
	EmailSenderName string `mapstructure:"EMAIL_SENDER_NAME"`
	ClientURL       string `mapstructure:"CLIENT_URL"`

	DefaultCurrency  string `mapstructure:"DEFAULT_CURRENCY"`
	ReminderLeadMins int    `mapstructure:"REMINDER_LEAD_MINS"`
}

var AppConfig Config

// Location is the resolved time.Location used for all slot comparisons.
var Location *time.Location

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("TIME_ZONE", "Asia/Kolkata")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_REMINDER_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "lexhub")
	viper.SetDefault("DEFAULT_CURRENCY", "INR")
	viper.SetDefault("REMINDER_LEAD_MINS", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	loc, err := time.LoadLocation(AppConfig.TimeZone)
	if err != nil {
		log.Fatalf("Failed to load time zone %q: %v", AppConfig.TimeZone, err)
	}
	Location = loc
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
