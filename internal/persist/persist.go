// Package persist saves and loads a layout's engine.LayoutRecord to and
// from disk as JSON: a machine-written interchange format, distinct from
// the hand-edited TOML config the demo's settings live in (SPEC_FULL.md §6).
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/treykane/multisplitter/internal/engine"
	"github.com/treykane/multisplitter/internal/logging"
)

var log = logging.New(logging.ComponentPersist)

// ErrNoSnapshot is returned by Load when no file exists at the given path.
var ErrNoSnapshot = errors.New("multisplitter: no layout snapshot at this path")

// Save writes rec to path as indented JSON, creating parent directories as
// needed.
func Save(path string, rec engine.LayoutRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("persist: create directory: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("persist: marshal layout: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("persist: write layout: %w", err)
	}
	log.Info("saved layout snapshot", "path", path, "anchors", len(rec.Anchors), "items", len(rec.Items))
	return nil
}

// Load reads and unmarshals a LayoutRecord from path.
func Load(path string) (engine.LayoutRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return engine.LayoutRecord{}, ErrNoSnapshot
		}
		return engine.LayoutRecord{}, fmt.Errorf("persist: read layout: %w", err)
	}

	var rec engine.LayoutRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return engine.LayoutRecord{}, fmt.Errorf("persist: parse layout: %w", err)
	}
	log.Info("loaded layout snapshot", "path", path, "anchors", len(rec.Anchors), "items", len(rec.Items))
	return rec, nil
}
