package embedding

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "vectors.txt",
		"cat 0.1 0.2 0.3\n"+
			"dog 0.4 0.5 0.6\n"+
			"short\n"+ // fewer than two fields: skipped
			"odd 1.0 2.0\n"+ // wrong dimension: skipped
			"bird 0.7 0.8 0.9\n")

	table, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if table.Dim() != 3 {
		t.Errorf("Dim() = %d, want 3 (fixed by first record)", table.Dim())
	}
	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}

	v, ok := table.Lookup("dog")
	if !ok {
		t.Fatal("dog should be in vocabulary")
	}
	if v[0] != 0.4 || v[1] != 0.5 || v[2] != 0.6 {
		t.Errorf("dog vector = %v", v)
	}
	if _, ok := table.Lookup("odd"); ok {
		t.Error("mismatched-dimension record should have been skipped")
	}
	if _, ok := table.Lookup("missing"); ok {
		t.Error("out-of-vocabulary lookup should report not found")
	}
}

func TestLoadNoValidRecords(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "garbage.txt", "word notanumber alsonot\n\n")
	if _, err := Load(path); err == nil {
		t.Error("expected an error for a file with no valid records")
	}
}

func TestLoadFirst(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "cat 1.0 2.0\n")
	empty := writeFile(t, dir, "empty.txt", "")

	tests := []struct {
		name  string
		paths []string
		found bool
	}{
		{"first existing file wins", []string{filepath.Join(dir, "nope.txt"), good}, true},
		{"empty file skipped", []string{empty, good}, true},
		{"nothing found", []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := LoadFirst(tt.paths)
			if tt.found && table == nil {
				t.Fatal("expected a table")
			}
			if !tt.found && table != nil {
				t.Fatal("expected absent table")
			}
		})
	}
}

func TestSharedIsLoadedOnce(t *testing.T) {
	// the shared table resolves once per process; both calls must return
	// the same instance regardless of the paths passed later
	a := Shared(nil)
	b := Shared([]string{"does-not-exist.txt"})
	if a != b {
		t.Error("Shared() returned different instances")
	}
}
