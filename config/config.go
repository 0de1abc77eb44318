package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderHTTP   = "http"
	ProviderGemini = "gemini"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	Image ImageConfig
	Video VideoConfig
}

// ImageConfig selects and configures the image collaborator.
type ImageConfig struct {
	Provider string
	APIURL   string
	Timeout  time.Duration

	GeminiAPIKey  string
	GeminiModel   string
	GCSProjectID  string
	GCSBucketName string
}

type VideoConfig struct {
	SimulatedDelay time.Duration
	BaseURL        string
}

// Load reads envFile (if present) into the process environment and then
// builds the Config from environment variables.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	imageTimeout, err := Duration("IMAGE_API_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	videoDelay, err := Duration("VIDEO_SIMULATED_DELAY", 2*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AppEnv:      Env("APP_ENV", "production"),
		Port:        Env("PORT", "3000"),
		DatabaseURL: Env("DATABASE_URL", ""),
		Image: ImageConfig{
			Provider:      strings.ToLower(Env("IMAGE_PROVIDER", ProviderHTTP)),
			APIURL:        Env("IMAGE_API_URL", ""),
			Timeout:       imageTimeout,
			GeminiAPIKey:  Env("GEMINI_API_KEY", ""),
			GeminiModel:   Env("GEMINI_MODEL", "gemini-2.5-flash-image-preview"),
			GCSProjectID:  Env("GSC_PROJECT_ID", ""),
			GCSBucketName: Env("GSC_BUCKET_NAME", ""),
		},
		Video: VideoConfig{
			SimulatedDelay: videoDelay,
			BaseURL:        strings.TrimRight(Env("VIDEO_BASE_URL", "https://example.com"), "/"),
		},
	}

	return cfg, nil
}

// Validate reports every missing required setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL not set"))
	}

	switch c.Image.Provider {
	case ProviderHTTP:
		if c.Image.APIURL == "" {
			errs = append(errs, errors.New("IMAGE_API_URL not set"))
		}
	case ProviderGemini:
		if c.Image.GeminiAPIKey == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY not set"))
		}
		if c.Image.GCSBucketName == "" {
			errs = append(errs, errors.New("GSC_BUCKET_NAME not set"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown IMAGE_PROVIDER %q", c.Image.Provider))
	}

	if c.Image.Timeout <= 0 {
		errs = append(errs, errors.New("IMAGE_API_TIMEOUT must be positive"))
	}
	if c.Video.SimulatedDelay < 0 {
		errs = append(errs, errors.New("VIDEO_SIMULATED_DELAY must not be negative"))
	}

	return errors.Join(errs...)
}

func (c *Config) Development() bool {
	return c.AppEnv == "development"
}

// Env returns the value of envVar, or fallback when it is unset or empty.
func Env(envVar, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(envVar)); v != "" {
		return v
	}
	return fallback
}

func Duration(envVar string, fallback time.Duration) (time.Duration, error) {
	raw := Env(envVar, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", envVar, err)
	}
	return d, nil
}
