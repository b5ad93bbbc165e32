package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseIntersectBatch(t *testing.T) {
	data := []byte(`
pairs:
  - name: cross
    a: {from: {x: 0, y: 0}, to: {x: 4, y: 4}}
    b: {from: {x: 0, y: 4}, to: {x: 4, y: 0}}
  - a: {from: {x: 0, y: 0}, to: {x: 2, y: 0}}
    b: {from: {x: 1, y: 0}, to: {x: 3, y: 0}}
`)

	batch, err := ParseIntersectBatch(data)
	if err != nil {
		t.Fatalf("ParseIntersectBatch() failed: %v", err)
	}
	if len(batch.Pairs) != 2 {
		t.Fatalf("Expected 2 pairs, got %d", len(batch.Pairs))
	}
	if batch.Pairs[0].Name != "cross" || batch.Pairs[1].Name != "#2" {
		t.Errorf("names = %q, %q", batch.Pairs[0].Name, batch.Pairs[1].Name)
	}
	if batch.Pairs[0].B.From != (Point{X: 0, Y: 4}) {
		t.Errorf("pair 0 b.from = %+v", batch.Pairs[0].B.From)
	}
	if batch.Pairs[1].B.To != (Point{X: 3, Y: 0}) {
		t.Errorf("pair 1 b.to = %+v", batch.Pairs[1].B.To)
	}
}

func TestParseIntersectBatchErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"empty", "pairs: []", true},
		{"no pairs key", "other: 1", true},
		{"bad yaml", "pairs: [", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIntersectBatch([]byte(tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if errors.Is(err, ErrInvalid) != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, expected %v (err: %v)", !tt.invalid, tt.invalid, err)
			}
		})
	}
}

func TestLoadIntersectBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.yaml")
	doc := "pairs:\n  - a: {from: {x: 0, y: 0}, to: {x: 1, y: 0}}\n    b: {from: {x: 1, y: 0}, to: {x: 1, y: 1}}\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	batch, err := LoadIntersectBatch(path)
	if err != nil {
		t.Fatalf("LoadIntersectBatch() failed: %v", err)
	}
	if len(batch.Pairs) != 1 {
		t.Errorf("Expected 1 pair, got %d", len(batch.Pairs))
	}

	if _, err := LoadIntersectBatch(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
