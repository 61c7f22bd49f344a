package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Recipe sources.
const (
	SourceGenerate = "generate"
	SourceStore    = "store"
)

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Text providers.
const (
	ProviderHuggingFace = "huggingface"
	ProviderGroq        = "groq"
	ProviderGemini      = "gemini"
)

// Image strategies and sinks.
const (
	StrategyDataURI  = "datauri"
	StrategyFile     = "file"
	StrategyFallback = "fallback"

	SinkLocal    = "local"
	SinkS3       = "s3"
	SinkSupabase = "supabase"
)

type Config struct {
	Env            string
	ServiceName    string
	ServiceVersion string
	Port           string

	RecipeSource        string
	StoreDriver         string
	DatabaseURL         string
	DBTracing           bool
	SeedOnStart         bool
	TolerateStoreErrors bool

	HuggingFaceKey string
	GroqKey        string
	GeminiKey      string
	StabilityKey   string

	StaticDir string

	S3BucketName string
	AWSRegion    string

	SupabaseURL            string
	SupabaseServiceRoleKey string

	RedisURL string

	OtelExporterOTLPEndpoint string
	OtelExporterOTLPHeaders  string
	SentryDSN                string

	Generation GenerationConfig
	Image      ImageConfig
}

// GenerationConfig selects the text-generation backend.
type GenerationConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
}

// ImageConfig selects how recipe images are produced and where files go.
type ImageConfig struct {
	Strategy string `yaml:"strategy"`
	Sink     string `yaml:"sink"`
	Bucket   string `yaml:"bucket"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:                      os.Getenv("ENV"),
		ServiceName:              os.Getenv("SERVICE_NAME"),
		ServiceVersion:           os.Getenv("SERVICE_VERSION"),
		Port:                     os.Getenv("PORT"),
		RecipeSource:             strings.ToLower(os.Getenv("RECIPE_SOURCE")),
		StoreDriver:              strings.ToLower(os.Getenv("STORE_DRIVER")),
		DatabaseURL:              os.Getenv("DATABASE_URL"),
		HuggingFaceKey:           os.Getenv("HUGGINGFACE_API_KEY"),
		GroqKey:                  os.Getenv("GROQ_API_KEY"),
		GeminiKey:                os.Getenv("GEMINI_API_KEY"),
		StabilityKey:             os.Getenv("STABILITY_API_KEY"),
		StaticDir:                os.Getenv("STATIC_DIR"),
		S3BucketName:             os.Getenv("S3_BUCKET_NAME"),
		AWSRegion:                os.Getenv("AWS_REGION"),
		SupabaseURL:              os.Getenv("SUPABASE_URL"),
		SupabaseServiceRoleKey:   os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		RedisURL:                 os.Getenv("REDIS_URL"),
		OtelExporterOTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OtelExporterOTLPHeaders:  os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"),
		SentryDSN:                os.Getenv("SENTRY_DSN"),
		Generation: GenerationConfig{
			Provider: strings.ToLower(os.Getenv("TEXT_PROVIDER")),
			Model:    os.Getenv("TEXT_MODEL"),
		},
		Image: ImageConfig{
			Strategy: strings.ToLower(os.Getenv("IMAGE_STRATEGY")),
			Sink:     strings.ToLower(os.Getenv("IMAGE_SINK")),
			Bucket:   os.Getenv("SUPABASE_BUCKET"),
		},
	}

	var err error
	if cfg.DBTracing, err = envBool("DB_TRACING", false); err != nil {
		return nil, err
	}
	if cfg.SeedOnStart, err = envBool("SEED_ON_START", true); err != nil {
		return nil, err
	}
	if cfg.TolerateStoreErrors, err = envBool("TOLERATE_STORE_ERRORS", false); err != nil {
		return nil, err
	}

	// Load from YAML file if available
	if err := cfg.LoadFromYAML("config.yaml"); err != nil {
		return nil, fmt.Errorf("failed to load YAML config: %w", err)
	}

	cfg.SetDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// LoadFromYAML overlays the generation and image sections of a YAML file.
// Environment values that are already set win over the file.
func (c *Config) LoadFromYAML(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File not found is not an error
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var yamlConfig struct {
		Generation GenerationConfig `yaml:"generation"`
		Image      ImageConfig      `yaml:"image"`
	}

	if err := yaml.Unmarshal(data, &yamlConfig); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	setIfEmpty(&c.Generation.Provider, strings.ToLower(yamlConfig.Generation.Provider))
	setIfEmpty(&c.Generation.Model, yamlConfig.Generation.Model)
	setIfEmpty(&c.Image.Strategy, strings.ToLower(yamlConfig.Image.Strategy))
	setIfEmpty(&c.Image.Sink, strings.ToLower(yamlConfig.Image.Sink))
	setIfEmpty(&c.Image.Bucket, yamlConfig.Image.Bucket)

	return nil
}

func (c *Config) SetDefaults() {
	setIfEmpty(&c.Env, "development")
	setIfEmpty(&c.ServiceName, "moodchef")
	setIfEmpty(&c.ServiceVersion, "1.0.0")
	setIfEmpty(&c.Port, "8080")
	setIfEmpty(&c.RecipeSource, SourceGenerate)
	setIfEmpty(&c.StoreDriver, DriverPostgres)
	setIfEmpty(&c.StaticDir, "static")
	setIfEmpty(&c.Generation.Provider, ProviderHuggingFace)
	setIfEmpty(&c.Image.Strategy, StrategyDataURI)
	setIfEmpty(&c.Image.Sink, SinkLocal)
	setIfEmpty(&c.Image.Bucket, "recipe-images")
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() error {
	switch c.RecipeSource {
	case SourceGenerate, SourceStore:
	default:
		return fmt.Errorf("RECIPE_SOURCE must be %q or %q, got %q", SourceGenerate, SourceStore, c.RecipeSource)
	}

	switch c.StoreDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMemory, c.StoreDriver)
	}

	switch c.Image.Sink {
	case SinkLocal:
	case SinkS3:
		if c.S3BucketName == "" {
			return fmt.Errorf("S3_BUCKET_NAME is required for the s3 image sink")
		}
	case SinkSupabase:
		if c.SupabaseURL == "" || c.SupabaseServiceRoleKey == "" {
			return fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY are required for the supabase image sink")
		}
	default:
		return fmt.Errorf("unknown IMAGE_SINK %q", c.Image.Sink)
	}

	var providerKey, providerEnv string
	switch c.Generation.Provider {
	case ProviderHuggingFace:
		providerKey, providerEnv = c.HuggingFaceKey, "HUGGINGFACE_API_KEY"
	case ProviderGroq:
		providerKey, providerEnv = c.GroqKey, "GROQ_API_KEY"
	case ProviderGemini:
		providerKey, providerEnv = c.GeminiKey, "GEMINI_API_KEY"
	default:
		return fmt.Errorf("unknown TEXT_PROVIDER %q", c.Generation.Provider)
	}

	var imageKey, imageEnv string
	switch c.Image.Strategy {
	case StrategyDataURI:
		imageKey, imageEnv = c.StabilityKey, "STABILITY_API_KEY"
	case StrategyFile:
		imageKey, imageEnv = c.HuggingFaceKey, "HUGGINGFACE_API_KEY"
	case StrategyFallback:
	default:
		return fmt.Errorf("unknown IMAGE_STRATEGY %q", c.Image.Strategy)
	}

	// Stored recipes are served without any remote call.
	if c.RecipeSource == SourceStore {
		return nil
	}
	if providerKey == "" {
		return fmt.Errorf("%s is required for text provider %s", providerEnv, c.Generation.Provider)
	}
	if imageEnv != "" && imageKey == "" {
		return fmt.Errorf("%s is required for image strategy %s", imageEnv, c.Image.Strategy)
	}
	return nil
}

func setIfEmpty(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, v)
	}
	return b, nil
}
