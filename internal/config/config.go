package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	AuthSecret string     `yaml:"auth_secret" env:"AUTH_SECRET"`
	HTTPServer HTTPServer `yaml:"http_server"`
	DB         DB         `yaml:"db"`
	Cache      Cache      `yaml:"cache"`
	Thumbnails Thumbnails `yaml:"thumbnails"`
	CORS       CORS       `yaml:"cors"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type DB struct {
	Addr     string `yaml:"addr" env:"DB_ADDR" env-default:"localhost"`
	Port     string `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DB       string `yaml:"db" env:"DB_NAME" env-default:"canvases"`
}

type Cache struct {
	Addr      string        `yaml:"addr" env:"CACHE_ADDR" env-default:"localhost:6379"`
	Password  string        `yaml:"password" env:"CACHE_PASSWORD"`
	DB        int           `yaml:"db" env:"CACHE_DB" env-default:"0"`
	CanvasTTL time.Duration `yaml:"canvas_ttl" env:"CACHE_CANVAS_TTL" env-default:"5m"`
}

type Thumbnails struct {
	Path string `yaml:"path" env:"THUMBNAILS_PATH" env-default:"./thumbnails"`
}

type CORS struct {
	// Empty list means fully open.
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:","`
}

// MustLoad reads the config file named by CONFIG_PATH, falling back to
// environment variables only when no path is set.
func MustLoad() *Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err)
		}
		return &cfg
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", path)
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
