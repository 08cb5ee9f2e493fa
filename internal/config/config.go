package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Audio backends.
const (
	AudioBackendFS    = "fs"
	AudioBackendMinio = "minio"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int     `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP    `envPrefix:"HTTP_"`
	JWT      JWT     `envPrefix:"JWT_"`
	Bcrypt   Bcrypt  `envPrefix:"BCRYPT_"`
	Audio    Audio   `envPrefix:"AUDIO_"`
	Storage  Storage `envPrefix:"MINIO_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string        `env:"PORT" envDefault:"8000"`
	EnableHTTPS        bool          `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string        `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string        `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// JWT contains token signing parameters.
type JWT struct {
	Secret string        `env:"SECRET" envDefault:"devsecret"`
	TTL    time.Duration `env:"TTL" envDefault:"24h"`
}

// Bcrypt contains password hashing parameters.
type Bcrypt struct {
	Cost int `env:"COST" envDefault:"10"`
}

// Audio selects where audio files are read from.
type Audio struct {
	Backend string `env:"BACKEND" envDefault:"fs"`
	Dir     string `env:"DIR" envDefault:"audio"`
}

// Storage contains object storage parameters for the minio audio backend.
type Storage struct {
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"trackbox-access-key"`
	SecretKey string `env:"SECRET_KEY" envDefault:"trackbox-secret-key"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"trackbox-audio"`
	Prefix    string `env:"PREFIX" envDefault:""`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.Audio.Backend {
	case AudioBackendFS, AudioBackendMinio:
	default:
		return nil, fmt.Errorf("unknown audio backend %q", cfg.Audio.Backend)
	}

	return &cfg, nil
}
