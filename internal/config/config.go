package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"PassKeeper/internal/generator"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Storage
	DBPath string `env:"PASSKEEPER_DB"`

	// HTTP API (pkserver)
	BaseURL    string `env:"BASE_URL"`
	AuthSecret string `env:"AUTH_SECRET"`
	TokenFile  string `env:"TOKEN_FILE"`

	// CLI
	GenLength int  `env:"GEN_LENGTH"`
	Verbose   bool `env:"VERBOSE"`
	Version   bool `env:"-"` // show version and exit (flag only)
}

const (
	defaultBaseURL    = "localhost:8081"
	defaultAuthSecret = "dev-secret-key"
	defaultDBName     = "passwords.db"
	defaultTokenName  = ".pk_token"
)

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги перекрывают значения из env
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the SQLite database file")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "listen address of the HTTP API (host:port)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "secret used to sign API tokens")
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "where api-token stores the issued token")
	flag.IntVar(&cfg.GenLength, "gen-length", cfg.GenLength, "default generated password length")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "verbose logging")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "show version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

// DefaultAuthSecret сообщает, что токены подписываются общеизвестным секретом по умолчанию.
func (cfg *Config) DefaultAuthSecret() bool {
	return cfg.AuthSecret == defaultAuthSecret
}

// applyDefaults заполняет пустые и исправляет некорректные значения.
func (cfg *Config) applyDefaults() {
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = defaultAuthSecret
	}
	// BaseURL: только "address:port" (без схемы и пути), иначе значение по умолчанию
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.GenLength == 0 {
		cfg.GenLength = generator.DefaultLength
	}
	if cfg.GenLength < generator.MinLength {
		cfg.GenLength = generator.MinLength
	}
	if cfg.GenLength > generator.MaxLength {
		cfg.GenLength = generator.MaxLength
	}

	home, _ := os.UserHomeDir()
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(home, defaultDBName)
	}
	if cfg.TokenFile == "" {
		cfg.TokenFile = filepath.Join(home, defaultTokenName)
	}
}
