package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	defaultBaseURL     = "localhost:5000"
	defaultDatabaseDSN = "portfolio.db"
	defaultUploadMaxMB = 16
)

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

type Config struct {
	// Server-side settings
	DatabaseDSN    string `env:"DATABASE_URI"`
	Port           string `env:"PORT"`
	UploadMaxMB    int    `env:"UPLOAD_MAX_MB"`
	PasswordScheme string `env:"PASSWORD_SCHEME"`
	CORSOrigin     string `env:"CORS_ORIGIN"`

	// Сидирование администратора при старте (все три поля обязательны)
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	AdminUUID     int64  `env:"ADMIN_UUID"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL    string `env:"-"`
	IdentityFile string `env:"IDENTITY_FILE"`
	Version      bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres:// или путь к файлу SQLite)")
	flag.IntVar(&cfg.UploadMaxMB, "upload-max-mb", cfg.UploadMaxMB, "максимальный размер тела multipart-запроса, МБ")
	flag.StringVar(&cfg.PasswordScheme, "password-scheme", cfg.PasswordScheme, "схема хранения паролей: plain | bcrypt")
	flag.StringVar(&cfg.CORSOrigin, "cors-origin", cfg.CORSOrigin, "значение Access-Control-Allow-Origin")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the portfolio server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.IdentityFile, "identity-file", cfg.IdentityFile, "path to stored uuid/token (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = defaultDatabaseDSN
	}
	if cfg.UploadMaxMB <= 0 {
		cfg.UploadMaxMB = defaultUploadMaxMB
	}
	if cfg.PasswordScheme == "" {
		cfg.PasswordScheme = "plain"
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "*"
	}

	// BaseURL: только "address:port". PORT — старый способ задать порт сервера.
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
		if cfg.Port != "" && hostPortRe.MatchString("0.0.0.0:"+cfg.Port) {
			cfg.BaseURL = "0.0.0.0:" + cfg.Port
		}
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	if cfg.IdentityFile == "" {
		home, _ := os.UserHomeDir()
		cfg.IdentityFile = filepath.Join(home, ".pfctl_identity")
	}
}
