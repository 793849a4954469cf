// Package artifacts persists pipeline outputs as timestamped JSON files and
// resolves the most recent artifact of each type for downstream stages.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Artifact type names. They prefix saved filenames and select which files
// Latest considers.
const (
	TypeResume             = "resume"
	TypeJobDescription     = "job_description"
	TypeJobAnalysis        = "job_analysis"
	TypeProjectSuggestions = "project_suggestions"
)

// DefaultDir is the directory artifacts are written to when none is given.
const DefaultDir = "saved_details"

const timestampLayout = "20060102_150405"

// NotFoundError means no artifact of the requested type exists in the store.
type NotFoundError struct {
	Type string
	Dir  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s artifact found in %s", e.Type, e.Dir)
}

// Store reads and writes JSON artifacts under a single directory.
// Saves are append-only; existing artifacts are never modified.
type Store struct {
	Dir string
}

// NewStore returns a store rooted at dir, falling back to DefaultDir.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	return &Store{Dir: dir}
}

// Save marshals data and writes it as {type}_{timestamp}.json, creating the
// directory if needed. Two saves of the same type within one second get
// distinct names via a numeric suffix. Returns the path written.
func (s *Store) Save(artifactType string, data any) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create artifact directory %s: %w", s.Dir, err)
	}

	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s artifact: %w", artifactType, err)
	}

	base := fmt.Sprintf("%s_%s", artifactType, time.Now().Format(timestampLayout))
	path := filepath.Join(s.Dir, base+".json")
	for i := 1; fileExists(path); i++ {
		path = filepath.Join(s.Dir, fmt.Sprintf("%s_%d.json", base, i))
	}

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s artifact: %w", artifactType, err)
	}
	return path, nil
}

// Latest finds the newest artifact of the given type and unmarshals it into
// out. A fixed-name override file {type}.json, if present, wins over any
// timestamped artifact; otherwise the file with the newest modification time
// is chosen.
func (s *Store) Latest(artifactType string, out any) (string, error) {
	path, err := s.LatestPath(artifactType)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read artifact %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return "", fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}
	return path, nil
}

// LatestPath resolves the newest artifact file of the given type without
// reading it.
func (s *Store) LatestPath(artifactType string) (string, error) {
	override := filepath.Join(s.Dir, artifactType+".json")
	if fileExists(override) {
		return override, nil
	}

	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &NotFoundError{Type: artifactType, Dir: s.Dir}
		}
		return "", fmt.Errorf("failed to read artifact directory %s: %w", s.Dir, err)
	}

	prefix := artifactType + "_"
	var newest string
	var newestTime time.Time
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		// job_description_*.json also matches prefix "job_*"; require the
		// remainder after the type name to start with a timestamp digit.
		rest := strings.TrimPrefix(name, prefix)
		if rest == "" || rest[0] < '0' || rest[0] > '9' {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestTime) {
			newest = name
			newestTime = info.ModTime()
		}
	}

	if newest == "" {
		return "", &NotFoundError{Type: artifactType, Dir: s.Dir}
	}
	return filepath.Join(s.Dir, newest), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
