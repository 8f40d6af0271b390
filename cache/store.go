package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/nextwipe/wipetime/backend/models"
)

// Store persists one WipeData JSON file per game under a cache directory.
// There is no locking: concurrent writers for the same game race with
// last-write-wins semantics, and an unparsable file is treated as a miss.
type Store struct {
	dir string
}

// NewStore creates a file-backed store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the cache file path for a game, e.g. cache/rust-wipe.json.
func (s *Store) Path(gameID, label string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s-%s.json", gameID, label))
}

// Read returns the last-persisted record for the game, or nil when no file
// exists or it cannot be parsed. I/O errors are logged, never propagated.
func (s *Store) Read(gameID, label string) *models.WipeData {
	path := s.Path(gameID, label)
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("game", gameID).Msg("Failed to read cache file")
		}
		return nil
	}

	var data models.WipeData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Warn().Err(err).Str("game", gameID).Str("path", path).Msg("Cache file unparsable, treating as miss")
		return nil
	}
	return &data
}

// Write serializes the record to pretty JSON and overwrites the game's cache
// file, creating the cache directory first if absent.
func (s *Store) Write(gameID, label string, data *models.WipeData) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory %s: %w", s.dir, err)
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache record for %s: %w", gameID, err)
	}

	if err := os.WriteFile(s.Path(gameID, label), raw, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file for %s: %w", gameID, err)
	}
	return nil
}
