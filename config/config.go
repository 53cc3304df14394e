package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       DBConfig
	HTTP     HTTPConfig
	Telegram TelegramConfig
	Cart     CartConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type HTTPConfig struct {
	Addr       string
	AdminToken string // shared secret for admin write endpoints; empty disables them
}

type TelegramConfig struct {
	Token       string // notifier bot token; empty disables notifications
	AdminChatID int64  // chat that receives new-order cards
}

type CartConfig struct {
	Dir string // directory for locally persisted carts
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	adminChat, _ := strconv.ParseInt(getEnv("ADMIN_CHAT_ID", "0"), 10, 64)

	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "storefront"),
		},
		HTTP: HTTPConfig{
			Addr:       getEnv("HTTP_ADDR", ":8080"),
			AdminToken: getEnv("ADMIN_TOKEN", ""),
		},
		Telegram: TelegramConfig{
			Token:       getEnv("NOTIFY_TOKEN", ""),
			AdminChatID: adminChat,
		},
		Cart: CartConfig{
			Dir: getEnv("CART_DIR", "data/carts"),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
