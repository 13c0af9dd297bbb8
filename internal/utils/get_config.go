package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppEnv       string `yaml:"APP_ENV"`
	AppPort      string `yaml:"APP_PORT"`
	LogLevel     string `yaml:"LOG_LEVEL"`
	RateLimitMax string `yaml:"RATE_LIMIT_MAX"`

	// Database configuration
	DBDriver         string `yaml:"DB_DRIVER"`
	DBHost           string `yaml:"DB_HOST"`
	DBPort           string `yaml:"DB_PORT"`
	DBUser           string `yaml:"DB_USER"`
	DBPassword       string `yaml:"DB_PASSWORD"`
	DBName           string `yaml:"DB_NAME"`
	DBPath           string `yaml:"DB_PATH"`
	DBSSLMode        string `yaml:"DB_SSLMODE"`
	DBPoolSize       string `yaml:"DB_POOL_SIZE"`
	DBAcquireTimeout string `yaml:"DB_ACQUIRE_TIMEOUT"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
}

var (
	configMu sync.RWMutex
	config   = defaults()
)

func defaults() Config {
	return Config{
		AppEnv:           "development",
		AppPort:          "8080",
		LogLevel:         "info",
		RateLimitMax:     "100",
		DBDriver:         "postgres",
		DBPoolSize:       "10",
		DBAcquireTimeout: "10s",
		SMTPPort:         "587",
	}
}

// keys maps every config key to its field so that yaml, .env and the process
// environment all address the same names.
func (c *Config) keys() map[string]*string {
	return map[string]*string{
		"APP_ENV":            &c.AppEnv,
		"APP_PORT":           &c.AppPort,
		"LOG_LEVEL":          &c.LogLevel,
		"RATE_LIMIT_MAX":     &c.RateLimitMax,
		"DB_DRIVER":          &c.DBDriver,
		"DB_HOST":            &c.DBHost,
		"DB_PORT":            &c.DBPort,
		"DB_USER":            &c.DBUser,
		"DB_PASSWORD":        &c.DBPassword,
		"DB_NAME":            &c.DBName,
		"DB_PATH":            &c.DBPath,
		"DB_SSLMODE":         &c.DBSSLMode,
		"DB_POOL_SIZE":       &c.DBPoolSize,
		"DB_ACQUIRE_TIMEOUT": &c.DBAcquireTimeout,
		"JWT_SECRET":         &c.JWTSecret,
		"AWS_S3_BUCKET":      &c.AWSS3Bucket,
		"AWS_S3_REGION":      &c.AWSS3Region,
		"AWS_ACCESS_KEY":     &c.AWSAccessKey,
		"AWS_SECRET_KEY":     &c.AWSSecretKey,
		"SMTP_HOST":          &c.SMTPHost,
		"SMTP_PORT":          &c.SMTPPort,
		"SMTP_SENDER_NAME":   &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":    &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD": &c.SMTPAuthPassword,
	}
}

// LoadConfig reads .env and config.yaml from the working directory.
func LoadConfig() (Config, error) {
	return LoadConfigFrom(".env", "config.yaml")
}

// LoadConfigFrom layers defaults, the yaml file and the environment, in that
// order. The dotenv file only seeds variables that are not already set. Either
// file may be absent.
func LoadConfigFrom(envPath, yamlPath string) (Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	cfg := defaults()
	if yamlPath != "" {
		file, err := os.ReadFile(yamlPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(file, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", yamlPath, err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return Config{}, fmt.Errorf("read %s: %w", yamlPath, err)
		}
	}

	for key, field := range cfg.keys() {
		if v, ok := os.LookupEnv(key); ok {
			*field = v
		}
	}

	configMu.Lock()
	config = cfg
	configMu.Unlock()
	return cfg, nil
}

func GetConfig(key string) string {
	configMu.RLock()
	defer configMu.RUnlock()
	c := config
	if field, ok := c.keys()[key]; ok {
		return *field
	}
	return ""
}

func (c Config) PoolSize() int {
	return atoiOr(c.DBPoolSize, 10)
}

func (c Config) AcquireTimeout() time.Duration {
	d, err := time.ParseDuration(c.DBAcquireTimeout)
	if err != nil || d < 0 {
		return 10 * time.Second
	}
	return d
}

func (c Config) RateLimit() int {
	return atoiOr(c.RateLimitMax, 100)
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
