package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFileMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg.Summarizer.Sentences != 3 {
		t.Errorf("sentences = %d, want 3", cfg.Summarizer.Sentences)
	}
	if cfg.Summarizer.Damping != 0.85 {
		t.Errorf("damping = %v, want 0.85", cfg.Summarizer.Damping)
	}
	if cfg.Dataset.Output != "SummaryFile.csv" {
		t.Errorf("output = %q", cfg.Dataset.Output)
	}
	if cfg.Server.Addr != ":5000" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if len(cfg.Embedding.Paths) == 0 {
		t.Error("embedding path candidates should have defaults")
	}
}

func TestLoadFromFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sumrank.yaml")
	content := `
summarizer:
  sentences: 5
  damping: 0.9
dataset:
  text_column: Body
server:
  addr: ":8080"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Summarizer.Sentences != 5 {
		t.Errorf("sentences = %d, want 5", cfg.Summarizer.Sentences)
	}
	if cfg.Summarizer.Damping != 0.9 {
		t.Errorf("damping = %v, want 0.9", cfg.Summarizer.Damping)
	}
	if cfg.Dataset.TextColumn != "Body" {
		t.Errorf("text_column = %q", cfg.Dataset.TextColumn)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	// untouched fields still get defaults
	if cfg.Summarizer.MaxIterations != 100 {
		t.Errorf("max_iterations = %d, want 100", cfg.Summarizer.MaxIterations)
	}
}

func TestLoadFromFileRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sumrank.yaml")
	if err := os.WriteFile(path, []byte("summarizer:\n  damping: 1.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("damping outside (0, 1) should be rejected")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~/data/vectors.txt", filepath.Join(home, "data", "vectors.txt")},
		{"$HOME/vectors.txt", filepath.Join(home, "vectors.txt")},
		{"relative/path.txt", "relative/path.txt"},
		{"~", home},
	}
	for _, tt := range tests {
		if got := expandPath(tt.in); got != tt.want {
			t.Errorf("expandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteDefaultTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "sumrank.yaml")

	created, err := WriteDefaultTemplate(path)
	if err != nil {
		t.Fatalf("failed to write template: %v", err)
	}
	if !created {
		t.Error("first write should report created")
	}

	// the template must load back as a valid config
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("template does not load: %v", err)
	}
	if cfg.Summarizer.Sentences != 3 {
		t.Errorf("template sentences = %d", cfg.Summarizer.Sentences)
	}

	created, err = WriteDefaultTemplate(path)
	if err != nil {
		t.Fatalf("second write errored: %v", err)
	}
	if created {
		t.Error("existing file must not be overwritten")
	}
}
