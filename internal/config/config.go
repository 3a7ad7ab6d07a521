// Package config loads the faqd YAML configuration by environment name.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the faqd API configuration.
type Config struct {
	HTTP          HTTPConfig          `yaml:"http"`
	KnowledgeBase KnowledgeBaseConfig `yaml:"knowledge_base"`
	Matching      MatchingConfig      `yaml:"matching"`
	CORS          CORSConfig          `yaml:"cors"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// KnowledgeBaseConfig selects and configures the knowledge-base source.
type KnowledgeBaseConfig struct {
	Source           string   `yaml:"source"` // file, redis (default: file)
	Path             string   `yaml:"path"`
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	Key              string   `yaml:"key"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// MatchingConfig holds fuzzy-matching settings.
type MatchingConfig struct {
	Threshold float64 `yaml:"threshold"` // minimum combined score, (0, 1]
}

// CORSConfig holds CORS settings for the browser frontend.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.KnowledgeBase.Source == "" {
		c.KnowledgeBase.Source = "file"
	}
	if c.KnowledgeBase.Path == "" {
		c.KnowledgeBase.Path = filepath.Join("data", "faqs.json")
	}
	if c.KnowledgeBase.Key == "" {
		c.KnowledgeBase.Key = "faqd:kb"
	}
	if c.KnowledgeBase.ReadinessTimeout <= 0 {
		c.KnowledgeBase.ReadinessTimeout = 10
	}
	if c.Matching.Threshold == 0 {
		c.Matching.Threshold = 0.5
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.KnowledgeBase.Source {
	case "file", "redis":
		// ok
	default:
		return fmt.Errorf(
			"knowledge_base.source must be \"file\" or \"redis\", got %q",
			c.KnowledgeBase.Source,
		)
	}
	if c.KnowledgeBase.Source == "redis" && len(c.KnowledgeBase.Addrs) == 0 {
		return fmt.Errorf("knowledge_base.addrs is required for the redis source")
	}
	if c.Matching.Threshold < 0 || c.Matching.Threshold > 1 {
		return fmt.Errorf("matching.threshold must be within (0, 1], got %g", c.Matching.Threshold)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
