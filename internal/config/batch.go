package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SegmentPair is one entry of an intersection batch file.
type SegmentPair struct {
	Name string     `yaml:"name"`
	A    LineConfig `yaml:"a"`
	B    LineConfig `yaml:"b"`
}

// IntersectBatch is a list of segment pairs to classify in one run.
//
//	pairs:
//	  - name: cross
//	    a: {from: {x: 0, y: 0}, to: {x: 4, y: 4}}
//	    b: {from: {x: 0, y: 4}, to: {x: 4, y: 0}}
type IntersectBatch struct {
	Pairs []SegmentPair `yaml:"pairs"`
}

// LoadIntersectBatch reads and parses a batch file.
func LoadIntersectBatch(path string) (IntersectBatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return IntersectBatch{}, fmt.Errorf("failed to read batch %s: %w", path, err)
	}
	batch, err := ParseIntersectBatch(data)
	if err != nil {
		return batch, fmt.Errorf("failed to parse batch %s: %w", path, err)
	}
	return batch, nil
}

// ParseIntersectBatch decodes a batch document. Unnamed pairs are named by
// their one-based position.
func ParseIntersectBatch(data []byte) (IntersectBatch, error) {
	var batch IntersectBatch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return IntersectBatch{}, err
	}
	if len(batch.Pairs) == 0 {
		return batch, fmt.Errorf("%w: batch has no pairs", ErrInvalid)
	}
	for i := range batch.Pairs {
		if batch.Pairs[i].Name == "" {
			batch.Pairs[i].Name = fmt.Sprintf("#%d", i+1)
		}
	}
	return batch, nil
}
