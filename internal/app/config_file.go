package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested
// sections map naturally to flags.
type FileConfig struct {
	Query     string `yaml:"query" json:"query"`
	Input     string `yaml:"input" json:"input"`
	Output    string `yaml:"output" json:"output"`
	OutputPDF string `yaml:"outputPDF" json:"outputPDF"`

	N         int `yaml:"n" json:"n"`
	Sentences int `yaml:"sentences" json:"sentences"`

	Wiki struct {
		Base    string        `yaml:"base" json:"base"`
		File    string        `yaml:"file" json:"file"`
		UA      string        `yaml:"ua" json:"ua"`
		Timeout time.Duration `yaml:"timeout" json:"timeout"`
	} `yaml:"wiki" json:"wiki"`

	LLM struct {
		BaseURL string `yaml:"base" json:"base"`
		Model   string `yaml:"model" json:"model"`
		APIKey  string `yaml:"key" json:"key"`
	} `yaml:"llm" json:"llm"`

	PDF struct {
		Border *bool `yaml:"border" json:"border"`
	} `yaml:"pdf" json:"pdf"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset/zero in cfg. Flags should already have been
// parsed; this lets file config supply defaults while preserving explicit
// flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	const (
		topNDefault      = 3
		sentencesDefault = 10
	)

	if cfg.Query == "" && fc.Query != "" {
		cfg.Query = fc.Query
	}
	if cfg.InputPath == "" && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if cfg.OutputPath == "" && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.OutputPDFPath == "" && fc.OutputPDF != "" {
		cfg.OutputPDFPath = fc.OutputPDF
	}

	if (cfg.TopN == 0 || cfg.TopN == topNDefault) && fc.N > 0 {
		cfg.TopN = fc.N
	}
	if (cfg.SentenceLimit == 0 || cfg.SentenceLimit == sentencesDefault) && fc.Sentences > 0 {
		cfg.SentenceLimit = fc.Sentences
	}

	if cfg.WikiBaseURL == "" && fc.Wiki.Base != "" {
		cfg.WikiBaseURL = fc.Wiki.Base
	}
	if cfg.WikiFixturePath == "" && fc.Wiki.File != "" {
		cfg.WikiFixturePath = fc.Wiki.File
	}
	if cfg.UserAgent == "" && fc.Wiki.UA != "" {
		cfg.UserAgent = fc.Wiki.UA
	}
	if cfg.Timeout == 0 && fc.Wiki.Timeout > 0 {
		cfg.Timeout = fc.Wiki.Timeout
	}

	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}

	if fc.PDF.Border != nil {
		cfg.PDFBorder = *fc.PDF.Border
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if cfg.Query == "" && cfg.InputPath == "" {
		return errors.New("config: a query or an input path is required")
	}
	if cfg.TopN < 0 || cfg.SentenceLimit < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	if cfg.LLMBaseURL != "" && cfg.LLMModel == "" {
		return errors.New("config: llm.model is required when llm.base is set")
	}
	return nil
}
