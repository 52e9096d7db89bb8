package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Embedding  EmbeddingConfig  `yaml:"embedding,omitempty"`
	Summarizer SummarizerConfig `yaml:"summarizer,omitempty"`
	Dataset    DatasetConfig    `yaml:"dataset,omitempty"`
	Server     ServerConfig     `yaml:"server,omitempty"`
	Database   DatabaseConfig   `yaml:"database,omitempty"`
	Index      IndexConfig      `yaml:"index,omitempty"`
}

// EmbeddingConfig locates the word-vector file. The paths are tried in
// order; when none exists the engine falls back to TF-IDF vectors.
type EmbeddingConfig struct {
	Paths []string `yaml:"paths,omitempty"`
}

// SummarizerConfig holds the default summary length and the ranker
// parameters (heuristic defaults, deliberately overridable).
type SummarizerConfig struct {
	Sentences     int     `yaml:"sentences,omitempty"`      // default summary length
	Damping       float64 `yaml:"damping,omitempty"`        // PageRank damping factor
	Tolerance     float64 `yaml:"tolerance,omitempty"`      // L1 convergence tolerance
	MaxIterations int     `yaml:"max_iterations,omitempty"` // ranking iteration cap
}

// DatasetConfig controls batch summarization of tabular files.
type DatasetConfig struct {
	TextColumn string `yaml:"text_column,omitempty"` // preferred column; auto-detected if empty
	Output     string `yaml:"output,omitempty"`      // result CSV name, written next to the input
	TaskFile   string `yaml:"task_file,omitempty"`   // default dataset for the server
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr      string `yaml:"addr,omitempty"`
	UploadDir string `yaml:"upload_dir,omitempty"`
	StaticDir string `yaml:"static_dir,omitempty"`
	BodyLimit int    `yaml:"body_limit,omitempty"`
}

// DatabaseConfig holds the SQLite result store location.
type DatabaseConfig struct {
	// If empty, uses ~/.sumrank/data/sumrank.db
	Path string `yaml:"path,omitempty"`
}

// IndexConfig holds the full-text summary index location.
type IndexConfig struct {
	// If empty, uses ~/.sumrank/index
	Path string `yaml:"path,omitempty"`
}

// Load loads configuration from the default config file
// Default location: ~/.sumrank/config/sumrank.yaml
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFromFile(path)
}

// LoadFromFile loads configuration from a specific file. A missing file
// is not an error: the tool is fully usable with defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".sumrank", "config", "sumrank.yaml"), nil
}

// DataDir returns the per-user data directory.
func DataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".sumrank"), nil
}

// expandPath expands ~ and $HOME to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "$HOME/") || path == "$HOME" {
		homeDir := os.Getenv("HOME")
		if homeDir == "" {
			var err error
			homeDir, err = os.UserHomeDir()
			if err != nil {
				return path
			}
		}
		if path == "$HOME" {
			return homeDir
		}
		return filepath.Join(homeDir, path[6:])
	}

	if strings.HasPrefix(path, "~/") || path == "~" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return homeDir
		}
		return filepath.Join(homeDir, path[2:])
	}

	return path
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if len(c.Embedding.Paths) == 0 {
		c.Embedding.Paths = []string{
			"glove.6B.100d.txt",
			filepath.Join("..", "glove.6B.100d.txt"),
		}
		if dataDir, err := DataDir(); err == nil {
			c.Embedding.Paths = append(c.Embedding.Paths,
				filepath.Join(dataDir, "data", "glove.6B.100d.txt"))
		}
	}
	for i, p := range c.Embedding.Paths {
		c.Embedding.Paths[i] = expandPath(p)
	}

	if c.Summarizer.Sentences == 0 {
		c.Summarizer.Sentences = 3
	}
	if c.Summarizer.Damping == 0 {
		c.Summarizer.Damping = 0.85
	}
	if c.Summarizer.Tolerance == 0 {
		c.Summarizer.Tolerance = 1e-6
	}
	if c.Summarizer.MaxIterations == 0 {
		c.Summarizer.MaxIterations = 100
	}

	if c.Dataset.Output == "" {
		c.Dataset.Output = "SummaryFile.csv"
	}
	if c.Dataset.TaskFile == "" {
		c.Dataset.TaskFile = "TASK.xlsx"
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":5000"
	}
	if c.Server.UploadDir == "" {
		c.Server.UploadDir = "uploads"
	}
	if c.Server.StaticDir == "" {
		c.Server.StaticDir = filepath.Join("frontend", "build")
	}
	if c.Server.BodyLimit == 0 {
		c.Server.BodyLimit = 20 * 1024 * 1024
	}

	if c.Database.Path == "" {
		if dataDir, err := DataDir(); err == nil {
			c.Database.Path = filepath.Join(dataDir, "data", "sumrank.db")
		} else {
			c.Database.Path = "sumrank.db"
		}
	} else {
		c.Database.Path = expandPath(c.Database.Path)
	}

	if c.Index.Path == "" {
		if dataDir, err := DataDir(); err == nil {
			c.Index.Path = filepath.Join(dataDir, "index")
		} else {
			c.Index.Path = "sumrank-index"
		}
	} else {
		c.Index.Path = expandPath(c.Index.Path)
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Summarizer.Sentences < 1 {
		return fmt.Errorf("summarizer.sentences must be >= 1, got: %d", c.Summarizer.Sentences)
	}
	if c.Summarizer.Damping <= 0 || c.Summarizer.Damping >= 1 {
		return fmt.Errorf("summarizer.damping must be in (0, 1), got: %v", c.Summarizer.Damping)
	}
	if c.Summarizer.Tolerance <= 0 {
		return fmt.Errorf("summarizer.tolerance must be > 0, got: %v", c.Summarizer.Tolerance)
	}
	if c.Summarizer.MaxIterations < 1 {
		return fmt.Errorf("summarizer.max_iterations must be >= 1, got: %d", c.Summarizer.MaxIterations)
	}
	return nil
}

// SaveToFile saves the configuration to a specific file
func (c *Config) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

const defaultConfigTemplate = `# sumrank configuration
#
# Copy and edit this file for your environment.
# Default location: $HOME/.sumrank/config/sumrank.yaml

# Candidate word-vector files, tried in order. When none exists the
# summarizer uses TF-IDF sentence vectors instead.
# embedding:
#   paths:
#     - glove.6B.100d.txt
#     - ~/.sumrank/data/glove.6B.100d.txt

summarizer:
  sentences: 3
  damping: 0.85
  tolerance: 1e-6
  max_iterations: 100

dataset:
  # text_column: Introduction
  output: SummaryFile.csv
  task_file: TASK.xlsx

server:
  addr: ":5000"
  upload_dir: uploads
  static_dir: frontend/build
`

// WriteDefaultTemplate creates a default configuration file if it does not exist.
// It returns true if a file was created, false if it already existed.
func WriteDefaultTemplate(path string) (bool, error) {
	if path == "" {
		return false, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0644); err != nil {
		return false, fmt.Errorf("failed to write config template: %w", err)
	}
	return true, nil
}
