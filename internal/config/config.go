// Package config loads studio configuration: hardcoded defaults first, then
// STUDIO_* environment variables on top.
//
// Variables map section_key style, first underscore splitting the section:
//
//	STUDIO_SERVER_PORT            -> server.port
//	STUDIO_DATABASE_URL           -> database.url
//	STUDIO_PROVIDERS_OPENROUTER_KEY -> providers.openrouter_key
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Database   DatabaseConfig   `koanf:"database"`
	Auth       AuthConfig       `koanf:"auth"`
	Storage    StorageConfig    `koanf:"storage"`
	Providers  ProvidersConfig  `koanf:"providers"`
	Generation GenerationConfig `koanf:"generation"`
}

type ServerConfig struct {
	Port            int           `koanf:"port"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL string `koanf:"url"`
}

type AuthConfig struct {
	SessionTTL   time.Duration `koanf:"session_ttl"`
	CookieSecure bool          `koanf:"cookie_secure"`
}

type StorageConfig struct {
	DataDir string `koanf:"data_dir"`
}

type ProvidersConfig struct {
	OpenRouterKey   string `koanf:"openrouter_key"`
	OpenRouterModel string `koanf:"openrouter_model"`
	TTSURL          string `koanf:"tts_url"`
	TTSKey          string `koanf:"tts_key"`
	TTSModel        string `koanf:"tts_model"`
	ImageURL        string `koanf:"image_url"`
	ImageKey        string `koanf:"image_key"`
	ImageModel      string `koanf:"image_model"`
}

type GenerationConfig struct {
	SynthesisWorkers int           `koanf:"synthesis_workers"`
	LineGap          time.Duration `koanf:"line_gap"`
	JobDeadline      time.Duration `koanf:"job_deadline"`
}

var defaults = []byte(`
server:
  port: 8080
  cors_origins: ["*"]
  shutdown_timeout: 15s
auth:
  session_ttl: 720h
  cookie_secure: false
storage:
  data_dir: ./data
providers:
  openrouter_model: openai/gpt-4o-mini
  tts_url: https://api.openai.com/v1/audio/speech
  tts_model: tts-1
  image_url: https://api.openai.com/v1/images/generations
  image_model: gpt-image-1
generation:
  synthesis_workers: 4
  line_gap: 400ms
  job_deadline: 20m
`)

// Load builds the config from defaults overlaid with STUDIO_* env vars.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaults), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	err := k.Load(env.Provider("STUDIO_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "STUDIO_"))
		parts := strings.SplitN(s, "_", 2)
		return strings.Join(parts, ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("config: database.url is required (STUDIO_DATABASE_URL)")
	}
	if c.Providers.OpenRouterKey == "" {
		return fmt.Errorf("config: providers.openrouter_key is required (STUDIO_PROVIDERS_OPENROUTER_KEY)")
	}
	if c.Providers.TTSKey == "" {
		return fmt.Errorf("config: providers.tts_key is required (STUDIO_PROVIDERS_TTS_KEY)")
	}
	if c.Providers.ImageKey == "" {
		return fmt.Errorf("config: providers.image_key is required (STUDIO_PROVIDERS_IMAGE_KEY)")
	}
	if c.Generation.SynthesisWorkers < 1 {
		return fmt.Errorf("config: generation.synthesis_workers must be >= 1")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
