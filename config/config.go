package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Mail   MailConfig
	Twilio TwilioConfig
	Doctor DoctorConfig
	Redis  RedisConfig
}

type AppConfig struct {
	Port          string
	Env           string
	SessionSecret string
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type MailConfig struct {
	Host     string
	Port     int
	UseTLS   bool
	Username string
	Password string
	Sender   string
}

// TwilioConfig is optional: SMS is disabled entirely when the account SID
// or auth token is absent.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

type DoctorConfig struct {
	Username string
	Password string
}

// RedisConfig is optional: the reminder dedup guard is skipped when Addr
// is empty.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine; environment variables and defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port:          viper.GetString("APP_PORT"),
			Env:           viper.GetString("APP_ENV"),
			SessionSecret: viper.GetString("SECRET_KEY"),
		},
		DB: DBConfig{
			Driver:   viper.GetString("DB_DRIVER"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Mail: MailConfig{
			Host:     viper.GetString("MAIL_SERVER"),
			Port:     viper.GetInt("MAIL_PORT"),
			UseTLS:   viper.GetBool("MAIL_USE_TLS"),
			Username: viper.GetString("MAIL_USERNAME"),
			Password: viper.GetString("MAIL_PASSWORD"),
			Sender:   viper.GetString("MAIL_DEFAULT_SENDER"),
		},
		Twilio: TwilioConfig{
			AccountSID: viper.GetString("TWILIO_ACCOUNT_SID"),
			AuthToken:  viper.GetString("TWILIO_AUTH_TOKEN"),
			FromNumber: viper.GetString("TWILIO_FROM_NUMBER"),
		},
		Doctor: DoctorConfig{
			Username: viper.GetString("DOCTOR_USERNAME"),
			Password: viper.GetString("DOCTOR_PASSWORD"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SECRET_KEY", "supersecretkey")

	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_NAME", "clinic.db")

	viper.SetDefault("MAIL_SERVER", "smtp.example.com")
	viper.SetDefault("MAIL_PORT", 587)
	viper.SetDefault("MAIL_USE_TLS", true)
	viper.SetDefault("MAIL_DEFAULT_SENDER", "clinic@example.com")

	// Local development credentials; override in production.
	viper.SetDefault("DOCTOR_USERNAME", "doctor")
	viper.SetDefault("DOCTOR_PASSWORD", "password123")
}
