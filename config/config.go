package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTPServer
	Database Database `envPrefix:"DB_"`
	Session  Session  `envPrefix:"SESSION_"`
	Mail     Mail     `envPrefix:"MAIL_"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"PORT" envDefault:"8080"`
}

type Database struct {
	// URL, when set, overrides the individual fields below.
	URL      string `env:"URL"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"3306"`
	User     string `env:"USER" envDefault:"root"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME" envDefault:"bakery_db"`
}

// DSN returns the MySQL connection string.
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

type Session struct {
	Secret string `env:"SECRET" envDefault:"dev-secret-key-change-in-production"`
	TTLSec int    `env:"TTL_SECONDS" envDefault:"3600"`
}

type Mail struct {
	Host     string `env:"SERVER" envDefault:"smtp.gmail.com"`
	Port     int    `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	Sender   string `env:"DEFAULT_SENDER"`
	// Operator is the fixed address that receives form notifications.
	Operator string `env:"OPERATOR"`
}

// Load reads .env (if present) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
