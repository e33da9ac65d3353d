package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type ClassifierConfig struct {
	UseLLMFirst    bool `yaml:"use_llm_first"`
	FallbackToRule bool `yaml:"fallback_to_rule"`
}

type ExtractorConfig struct {
	LLMMode          bool `yaml:"llm_mode"`
	TopKeywords      int  `yaml:"top_keywords"`
	SummarySentences int  `yaml:"summary_sentences"`
}

type OllamaConfig struct {
	URL               string  `yaml:"url"`
	Model             string  `yaml:"model"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

type PathsConfig struct {
	OrganizedDir string `yaml:"organized_dir"`
	ReportPath   string `yaml:"report_path"`
	StorePath    string `yaml:"store_path"`
}

type NATSConfig struct {
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

type Config struct {
	LogLevel string `yaml:"log_level"`
	APIPort  string `yaml:"api_port"`

	Classifier ClassifierConfig `yaml:"classifier"`
	Extractor  ExtractorConfig  `yaml:"extractor"`
	Ollama     OllamaConfig     `yaml:"ollama"`
	Paths      PathsConfig      `yaml:"paths"`
	NATS       NATSConfig       `yaml:"nats"`

	WorkerMetricsPort string `yaml:"worker_metrics_port"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		APIPort:  "8080",
		Classifier: ClassifierConfig{
			UseLLMFirst:    true,
			FallbackToRule: true,
		},
		Extractor: ExtractorConfig{
			LLMMode:          false,
			TopKeywords:      5,
			SummarySentences: 3,
		},
		Ollama: OllamaConfig{
			URL:               "http://localhost:11434",
			Model:             "mistral:7b-instruct",
			RequestsPerSecond: 2,
		},
		Paths: PathsConfig{
			OrganizedDir: filepath.Join("output", "organized"),
			ReportPath:   filepath.Join("output", "report.csv"),
			StorePath:    filepath.Join("output", "insight_memory.db"),
		},
		NATS: NATSConfig{
			URL:     "nats://localhost:4222",
			Subject: "documents.classify",
		},
		WorkerMetricsPort: "9090",
	}
}

// Load merges, in order: defaults, the YAML file at path (skipped when the
// file does not exist), then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = envString("INSIGHTSORT_CONFIG", "config.yaml")
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	if cfg.Extractor.TopKeywords <= 0 {
		cfg.Extractor.TopKeywords = 5
	}
	if cfg.Extractor.SummarySentences <= 0 {
		cfg.Extractor.SummarySentences = 3
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.LogLevel = envString("LOG_LEVEL", c.LogLevel)
	c.APIPort = envString("API_PORT", c.APIPort)

	c.Classifier.UseLLMFirst = envBool("USE_LLM_FIRST", c.Classifier.UseLLMFirst)
	c.Classifier.FallbackToRule = envBool("FALLBACK_TO_RULE", c.Classifier.FallbackToRule)
	c.Extractor.LLMMode = envBool("EXTRACTOR_LLM_MODE", c.Extractor.LLMMode)
	c.Extractor.TopKeywords = envInt("TOP_KEYWORDS", c.Extractor.TopKeywords)

	c.Ollama.URL = envString("OLLAMA_URL", c.Ollama.URL)
	c.Ollama.Model = envString("OLLAMA_MODEL", c.Ollama.Model)

	c.Paths.OrganizedDir = envString("ORGANIZED_DIR", c.Paths.OrganizedDir)
	c.Paths.ReportPath = envString("REPORT_PATH", c.Paths.ReportPath)
	c.Paths.StorePath = envString("STORE_PATH", c.Paths.StorePath)

	c.NATS.URL = envString("NATS_URL", c.NATS.URL)
	c.NATS.Subject = envString("NATS_SUBJECT", c.NATS.Subject)
	c.WorkerMetricsPort = envString("WORKER_METRICS_PORT", c.WorkerMetricsPort)
}

func envString(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
