package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config содержит параметры конфигурации приложения: настройки HTTP-сервера,
// Telegram-бота, базы данных (опциональна — без неё отключается ранжирование),
// дефолты квиза, keep-alive и хранилища состояния диалогов.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
	} `yaml:"server"`
	TelegramBot struct {
		Token string `yaml:"token"`
		// Mode — "polling" или "webhook".
		Mode         string        `yaml:"mode"`
		WebhookURL   string        `yaml:"webhook_url"`
		ListenAddr   string        `yaml:"listen_addr"`
		PollInterval time.Duration `yaml:"poll_interval"`
	} `yaml:"telegram_bot"`
	Database struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"dbname"`
	} `yaml:"database"`
	Quiz struct {
		// Дефолты, предлагаемые кнопками в диалоге.
		DefaultTimeMinutes int    `yaml:"default_time_minutes"`
		DefaultMarks       string `yaml:"default_marks"`
		DefaultNegative    string `yaml:"default_negative"`
		// MaxFileSize — лимит размера входного файла в байтах.
		MaxFileSize int64 `yaml:"max_file_size"`
		// FontDir — каталог UTF-8 шрифтов для PDF-ключа.
		FontDir string `yaml:"font_dir"`
	} `yaml:"quiz"`
	KeepAlive struct {
		// URL приложения, который пингуется для защиты от усыпления.
		URL      string        `yaml:"url"`
		Interval time.Duration `yaml:"interval"`
	} `yaml:"keepalive"`
	Storage struct {
		// Type — "memory" или "json".
		Type string `yaml:"type"`
		Path string `yaml:"path"`
	} `yaml:"storage"`
	Debug bool `yaml:"debug"`
}

// DatabaseConfigured сообщает, заданы ли параметры подключения к БД.
func (c *Config) DatabaseConfigured() bool {
	return c.Database.Host != "" && c.Database.Name != ""
}

// LoadConfig читает YAML-файл конфигурации, затем накладывает переменные
// окружения (и .env, если он существует): секреты держатся вне файла.
func LoadConfig(filename string) (*Config, error) {
	config := &Config{}
	config.applyDefaults()

	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer func(f *os.File) {
			if err := f.Close(); err != nil {
				fmt.Println("f.Close() failed ", err)
			}
		}(f)
		if err := yaml.NewDecoder(f).Decode(config); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	_ = godotenv.Load()
	config.applyEnv()

	if config.TelegramBot.Token == "" {
		return nil, fmt.Errorf("переменная TELEGRAM_BOT_TOKEN не задана")
	}
	return config, nil
}

func (c *Config) applyDefaults() {
	c.Server.Port = "8080"
	c.TelegramBot.Mode = "polling"
	c.TelegramBot.ListenAddr = ":8443"
	c.TelegramBot.PollInterval = 2 * time.Second
	c.Quiz.DefaultTimeMinutes = 20
	c.Quiz.DefaultMarks = "1"
	c.Quiz.DefaultNegative = "0"
	c.Quiz.MaxFileSize = 1 << 20
	c.Quiz.FontDir = "fonts"
	c.KeepAlive.Interval = 5 * time.Minute
	c.Storage.Type = "memory"
	c.Storage.Path = "states.json"
}

// applyEnv накладывает переменные окружения поверх значений файла.
func (c *Config) applyEnv() {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.TelegramBot.Token = v
	}
	if v := os.Getenv("BOT_MODE"); v != "" {
		c.TelegramBot.Mode = v
	}
	if v := os.Getenv("WEBHOOK_URL"); v != "" {
		c.TelegramBot.WebhookURL = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.TelegramBot.ListenAddr = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("DATABASE_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DATABASE_PORT"); v != "" {
		c.Database.Port = v
	}
	if v := os.Getenv("DATABASE_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DATABASE_NAME"); v != "" {
		c.Database.Name = v
	}
	if v := os.Getenv("APP_URL"); v != "" {
		c.KeepAlive.URL = v
	}
	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		c.Storage.Type = v
	}
	if v := os.Getenv("DEBUG"); v == "true" || v == "1" {
		c.Debug = true
	}
	if v := os.Getenv("MAX_FILE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Quiz.MaxFileSize = n
		}
	}
}
