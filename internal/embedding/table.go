// Package embedding loads a precomputed word-vector table from a
// GloVe-style text file: one whitespace-separated record per line,
// token first, then the vector components.
package embedding

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Table maps tokens to fixed-dimension vectors. It is immutable once
// constructed and safe for concurrent lookups without locking.
type Table struct {
	dim     int
	vectors map[string][]float64
}

// Dim returns the vector dimension, fixed by the first parsed record.
func (t *Table) Dim() int { return t.dim }

// Len returns the vocabulary size.
func (t *Table) Len() int { return len(t.vectors) }

// Lookup returns the vector for token. The second result is false for
// out-of-vocabulary tokens; callers treat those as zero vectors.
func (t *Table) Lookup(token string) ([]float64, bool) {
	v, ok := t.vectors[token]
	return v, ok
}

// Load parses a vector file. Records with fewer than two fields are
// skipped; once the dimension is fixed, records of any other length are
// skipped rather than truncated or padded. A file with no valid records
// is an error.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t := &Table{vectors: make(map[string][]float64)}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		width := len(fields) - 1
		if t.dim != 0 && width != t.dim {
			continue
		}
		vec := make([]float64, width)
		ok := true
		for i := 0; i < width; i++ {
			vec[i], err = strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if t.dim == 0 {
			t.dim = width
		}
		t.vectors[fields[0]] = vec
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vector file %s: %w", path, err)
	}
	if len(t.vectors) == 0 {
		return nil, fmt.Errorf("no valid vector records in %s", path)
	}
	return t, nil
}

// LoadFirst tries the candidate paths in order and returns the table
// from the first existing, non-empty, parseable file. It returns nil
// when no candidate works; a found-but-corrupt file counts as absent.
func LoadFirst(paths []string) *Table {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || info.IsDir() || info.Size() == 0 {
			continue
		}
		t, err := Load(p)
		if err != nil {
			log.Printf("embedding table %s unreadable, skipping: %v", p, err)
			continue
		}
		log.Printf("embedding table loaded from %s: vocab=%d dim=%d", p, t.Len(), t.Dim())
		return t
	}
	return nil
}

var (
	sharedOnce sync.Once
	shared     *Table
)

// Shared resolves the process-wide table exactly once. The first caller
// triggers the load; everyone else gets the same result, including a
// permanent nil when no vector file was found. Concurrent first callers
// are serialized by the once guard, so the file is never parsed twice
// and no caller observes a half-built table.
func Shared(paths []string) *Table {
	sharedOnce.Do(func() {
		shared = LoadFirst(paths)
		if shared == nil {
			log.Printf("no embedding table found, using TF-IDF sentence vectors")
		}
	})
	return shared
}
