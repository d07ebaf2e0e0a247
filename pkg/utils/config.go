package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Booking  BookingConfig
	Redis    RedisConfig
	Notify   NotifyConfig
}

type AppConfig struct {
	Name           string
	Port           string
	Debug          bool
	LogPath        string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	MaxConns    int32
	AutoMigrate bool
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// AdminConfig seeds the first admin account on startup when both fields are set.
type AdminConfig struct {
	Email    string
	Password string
}

type BookingConfig struct {
	TaxRate            decimal.Decimal
	CommissionRate     decimal.Decimal
	CancellationWindow time.Duration
	Location           *time.Location
	// PayAtHotelPending leaves pay_at_hotel bookings unpaid until check-in.
	PayAtHotelPending bool
}

// RedisConfig is optional. An empty Addr disables the pub/sub fan-out.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

type NotifyConfig struct {
	QueueSize int
	Workers   int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "heavenstay")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_AUTO_MIGRATE", true)
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("BOOKING_TAX_RATE", "0.13")
	viper.SetDefault("BOOKING_COMMISSION_RATE", "0.10")
	viper.SetDefault("BOOKING_CANCELLATION_WINDOW", "24h")
	viper.SetDefault("BOOKING_TIMEZONE", "UTC")
	viper.SetDefault("BOOKING_PAY_AT_HOTEL_PENDING", false)
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_CHANNEL", "heavenstay:notifications")
	viper.SetDefault("NOTIFY_QUEUE_SIZE", 256)
	viper.SetDefault("NOTIFY_WORKERS", 2)

	// .env is optional, plain environment variables are enough
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	viper.AutomaticEnv()

	booking, err := loadBookingConfig()
	if err != nil {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Name:           viper.GetString("APP_NAME"),
			Port:           viper.GetString("PORT"),
			Debug:          viper.GetBool("DEBUG"),
			LogPath:        viper.GetString("LOG_PATH"),
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetString("DB_PORT"),
			Name:        viper.GetString("DB_NAME"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASS"),
			MaxConns:    viper.GetInt32("DB_MAX_CONNS"),
			AutoMigrate: viper.GetBool("DB_AUTO_MIGRATE"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		Booking: booking,
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			Channel:  viper.GetString("REDIS_CHANNEL"),
		},
		Notify: NotifyConfig{
			QueueSize: viper.GetInt("NOTIFY_QUEUE_SIZE"),
			Workers:   viper.GetInt("NOTIFY_WORKERS"),
		},
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return config, nil
}

func loadBookingConfig() (BookingConfig, error) {
	taxRate, err := decimal.NewFromString(viper.GetString("BOOKING_TAX_RATE"))
	if err != nil {
		return BookingConfig{}, fmt.Errorf("invalid BOOKING_TAX_RATE: %w", err)
	}
	if taxRate.IsNegative() {
		return BookingConfig{}, fmt.Errorf("BOOKING_TAX_RATE must not be negative, got %s", taxRate)
	}

	commissionRate, err := decimal.NewFromString(viper.GetString("BOOKING_COMMISSION_RATE"))
	if err != nil {
		return BookingConfig{}, fmt.Errorf("invalid BOOKING_COMMISSION_RATE: %w", err)
	}
	if commissionRate.IsNegative() || commissionRate.GreaterThan(decimal.NewFromInt(1)) {
		return BookingConfig{}, fmt.Errorf("BOOKING_COMMISSION_RATE must be between 0 and 1, got %s", commissionRate)
	}

	window, err := time.ParseDuration(viper.GetString("BOOKING_CANCELLATION_WINDOW"))
	if err != nil {
		return BookingConfig{}, fmt.Errorf("invalid BOOKING_CANCELLATION_WINDOW: %w", err)
	}

	loc, err := time.LoadLocation(viper.GetString("BOOKING_TIMEZONE"))
	if err != nil {
		return BookingConfig{}, fmt.Errorf("invalid BOOKING_TIMEZONE: %w", err)
	}

	return BookingConfig{
		TaxRate:            taxRate,
		CommissionRate:     commissionRate,
		CancellationWindow: window,
		Location:           loc,
		PayAtHotelPending:  viper.GetBool("BOOKING_PAY_AT_HOTEL_PENDING"),
	}, nil
}

// DefaultBookingConfig mirrors the defaults registered in LoadConfig.
func DefaultBookingConfig() BookingConfig {
	return BookingConfig{
		TaxRate:            decimal.RequireFromString("0.13"),
		CommissionRate:     decimal.RequireFromString("0.10"),
		CancellationWindow: 24 * time.Hour,
		Location:           time.UTC,
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
