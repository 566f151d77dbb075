package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	HotelAPI HotelAPIConfig
	Mailer   MailerConfig
	Booking  BookingConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port int
}

type HotelAPIConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type MailerConfig struct {
	URL             string
	APIKey          string
	SenderEmail     string
	SenderName      string
	Template        string
	PaymentLinkBase string
	Timeout         time.Duration
}

type BookingConfig struct {
	SessionTTL time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("HOTEL_API_BASE_URL", "http://localhost:3000/api")
	viper.SetDefault("HOTEL_API_TOKEN", "")
	viper.SetDefault("HOTEL_API_TIMEOUT", "10s")
	viper.SetDefault("MAILER_URL", "https://api.brevo.com/v3/smtp/email")
	viper.SetDefault("MAILER_API_KEY", "")
	viper.SetDefault("MAILER_SENDER_EMAIL", "reception@hotel.example")
	viper.SetDefault("MAILER_SENDER_NAME", "Réception")
	viper.SetDefault("MAILER_TEMPLATE", "payment-link")
	viper.SetDefault("MAILER_PAYMENT_LINK_BASE", "https://pay.hotel.example/r")
	viper.SetDefault("MAILER_TIMEOUT", "10s")
	viper.SetDefault("BOOKING_SESSION_TTL", "30m")
	viper.SetDefault("LOG_LEVEL", "info")

	apiTimeout, err := time.ParseDuration(viper.GetString("HOTEL_API_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	mailerTimeout, err := time.ParseDuration(viper.GetString("MAILER_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	sessionTTL, err := time.ParseDuration(viper.GetString("BOOKING_SESSION_TTL"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		HotelAPI: HotelAPIConfig{
			BaseURL: viper.GetString("HOTEL_API_BASE_URL"),
			Token:   viper.GetString("HOTEL_API_TOKEN"),
			Timeout: apiTimeout,
		},
		Mailer: MailerConfig{
			URL:             viper.GetString("MAILER_URL"),
			APIKey:          viper.GetString("MAILER_API_KEY"),
			SenderEmail:     viper.GetString("MAILER_SENDER_EMAIL"),
			SenderName:      viper.GetString("MAILER_SENDER_NAME"),
			Template:        viper.GetString("MAILER_TEMPLATE"),
			PaymentLinkBase: viper.GetString("MAILER_PAYMENT_LINK_BASE"),
			Timeout:         mailerTimeout,
		},
		Booking: BookingConfig{
			SessionTTL: sessionTTL,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
