package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/pkg/infrastructure"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            string `env:"PORT"             envDefault:"8080"`
	LogLevel        string `env:"LOG_LEVEL"        envDefault:"info"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	// ExportsDatabaseURL is optional; empty disables export history.
	ExportsDatabaseURL string `env:"EXPORTS_DATABASE_URL"`

	Chrome  ChromeConfig  `envPrefix:"CHROME_"`
	PDF     PDFConfig     `envPrefix:"PDF_"`
	Storage StorageConfig `envPrefix:"STORAGE_"`
}

type ChromeConfig struct {
	Path    string        `env:"PATH"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`
}

type PDFConfig struct {
	Format    string  `env:"FORMAT"    envDefault:"a4"`
	MarginMM  float64 `env:"MARGIN_MM" envDefault:"0"`
	Scale     float64 `env:"SCALE"     envDefault:"1"`
	Landscape bool    `env:"LANDSCAPE" envDefault:"false"`
}

type StorageConfig struct {
	Dir string   `env:"DIR" envDefault:"exports"`
	S3  S3Config `envPrefix:"S3_"`
}

type S3Config struct {
	Bucket    string `env:"BUCKET"`
	Prefix    string `env:"PREFIX"`
	Endpoint  string `env:"ENDPOINT"`
	Region    string `env:"REGION" envDefault:"auto"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) PDFOptions() domain.PDFOptions {
	return domain.PDFOptions{
		Format:          c.PDF.Format,
		Landscape:       c.PDF.Landscape,
		MarginMM:        c.PDF.MarginMM,
		Scale:           c.PDF.Scale,
		PrintBackground: true,
	}
}

func (c S3Config) Enabled() bool { return c.Bucket != "" }

func (c S3Config) StoreConfig() infrastructure.S3Config {
	return infrastructure.S3Config{
		Bucket:    c.Bucket,
		Prefix:    c.Prefix,
		Endpoint:  c.Endpoint,
		Region:    c.Region,
		AccessKey: c.AccessKey,
		SecretKey: c.SecretKey,
	}
}
