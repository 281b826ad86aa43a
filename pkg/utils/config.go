package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Gateway  GatewayConfig
	CMS      CMSConfig
	Redis    RedisConfig
	Email    EmailConfig
	OTP      OTPConfig
	Upload   UploadConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// GatewayConfig holds the merchant credentials for the hosted checkout
// gateway. Injected explicitly, never read from ambient process state.
type GatewayConfig struct {
	BaseURL    string
	MerchantID string
	OperatorID string
	Password   string
	APIVersion string
	Currency   string
	Timeout    time.Duration
}

type CMSConfig struct {
	EventsURL string
	Timeout   time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type OTPConfig struct {
	ExpiryMinutes int
	Length        int
}

type UploadConfig struct {
	Folder       string
	MaxFileSize  int64
	AllowedTypes []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("GATEWAY_BASE_URL", "https://ap-gateway.mastercard.com/api/rest")
	viper.SetDefault("GATEWAY_API_VERSION", "65")
	viper.SetDefault("GATEWAY_CURRENCY", "AED")
	viper.SetDefault("GATEWAY_TIMEOUT_SECONDS", 30)
	viper.SetDefault("CMS_TIMEOUT_SECONDS", 10)
	viper.SetDefault("REDIS_TTL_SECONDS", 60)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 5)
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("UPLOAD_FOLDER", "uploads")
	viper.SetDefault("UPLOAD_MAX_FILE_SIZE", 5*1024*1024)
	viper.SetDefault("UPLOAD_ALLOWED_TYPES", "pdf,jpg,jpeg,png")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Gateway: GatewayConfig{
			BaseURL:    viper.GetString("GATEWAY_BASE_URL"),
			MerchantID: viper.GetString("GATEWAY_MERCHANT_ID"),
			OperatorID: viper.GetString("GATEWAY_OPERATOR_ID"),
			Password:   viper.GetString("GATEWAY_PASSWORD"),
			APIVersion: viper.GetString("GATEWAY_API_VERSION"),
			Currency:   viper.GetString("GATEWAY_CURRENCY"),
			Timeout:    time.Duration(viper.GetInt("GATEWAY_TIMEOUT_SECONDS")) * time.Second,
		},
		CMS: CMSConfig{
			EventsURL: viper.GetString("CMS_EVENTS_URL"),
			Timeout:   time.Duration(viper.GetInt("CMS_TIMEOUT_SECONDS")) * time.Second,
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASS"),
			DB:       viper.GetInt("REDIS_DB"),
			TTL:      time.Duration(viper.GetInt("REDIS_TTL_SECONDS")) * time.Second,
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		OTP: OTPConfig{
			ExpiryMinutes: viper.GetInt("OTP_EXPIRY_MINUTES"),
			Length:        viper.GetInt("OTP_LENGTH"),
		},
		Upload: UploadConfig{
			Folder:       viper.GetString("UPLOAD_FOLDER"),
			MaxFileSize:  viper.GetInt64("UPLOAD_MAX_FILE_SIZE"),
			AllowedTypes: SplitCommaList(viper.GetString("UPLOAD_ALLOWED_TYPES")),
		},
	}

	return config, nil
}
