package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Config - конфигурация всего приложения. Загружается один раз при
// старте процесса и передается по ссылке в конструкторы (кодек токенов,
// хешер, хранилище, почта). Никаких глобальных обращений из бизнес-логики.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
		// PublicURL - базовый URL сайта, используется в ссылках писем
		PublicURL string `yaml:"public_url"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		// Независимые секреты для access и refresh токенов
		AccessSecret  string `yaml:"access_secret"`
		RefreshSecret string `yaml:"refresh_secret"`
		// TTL access токена в минутах, refresh - в днях
		AccessTTLMin   int `yaml:"access_ttl_minutes"`
		RefreshTTLDays int `yaml:"refresh_ttl_days"`
	} `yaml:"jwt"`

	Auth struct {
		// Стоимость bcrypt, фиксируется при старте
		BcryptCost int `yaml:"bcrypt_cost"`
	} `yaml:"auth"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		Enabled      bool   `yaml:"enabled"`
	} `yaml:"email"`
}

// Load загружает конфигурацию. Если задан DATABASE_URL - конфиг
// собирается из окружения (режим тестов/CI), иначе из config.yaml.
func Load() (*Config, error) {
	cfg := &Config{}

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.DSN = dbURL
		cfg.Server.Env = getEnv("SERVER_ENV", "development")
		cfg.Server.Port, _ = strconv.Atoi(getEnv("SERVER_PORT", "4000"))
		cfg.Server.PublicURL = getEnv("PUBLIC_URL", "http://localhost:4000")
		cfg.JWT.AccessSecret = os.Getenv("JWT_ACCESS_SECRET")
		cfg.JWT.RefreshSecret = os.Getenv("JWT_REFRESH_SECRET")
		applyDefaults(cfg)
		return cfg, cfg.validate()
	}

	configPath := getEnv("CONFIG_PATH", "config/config.yaml")

	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file at %s: %w", configPath, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w", configPath, err)
	}

	applyDefaults(cfg)
	return cfg, cfg.validate()
}

func applyDefaults(cfg *Config) {
	if cfg.JWT.AccessTTLMin == 0 {
		cfg.JWT.AccessTTLMin = 15
	}
	if cfg.JWT.RefreshTTLDays == 0 {
		cfg.JWT.RefreshTTLDays = 30
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = 12
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
}

func (c *Config) validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database url is required")
	}
	if c.JWT.AccessSecret == "" || c.JWT.RefreshSecret == "" {
		return fmt.Errorf("jwt access and refresh secrets are required")
	}
	return nil
}

// IsProduction сообщает, работаем ли мы в продакшене
// (влияет на secure-флаг cookie и вывод stack trace).
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
