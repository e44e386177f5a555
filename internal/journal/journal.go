// internal/journal/journal.go
package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bstardust/exifgps/internal/logger"
)

// Journal records published images so an interrupted upload can resume
type Journal struct {
	mu           sync.Mutex
	path         string
	Uploads      map[string]UploadEntry `json:"uploads"`
	lastSaveTime time.Time
	saveInterval time.Duration
	batchCount   int
}

// UploadEntry represents a journal entry for a published image
type UploadEntry struct {
	Path      string    `json:"path"`
	Uploaded  bool      `json:"uploaded"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}

// New creates a new journal backed by the file at path
func New(path string) *Journal {
	return &Journal{
		path:         path,
		Uploads:      make(map[string]UploadEntry),
		saveInterval: 30 * time.Second,
	}
}

// Load loads the journal from disk. A missing file is an empty journal.
func (j *Journal) Load() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	data, err := os.ReadFile(j.path)
	if os.IsNotExist(err) {
		logger.Info("No journal file found at %s, starting fresh", j.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}

	var stored struct {
		Uploads map[string]UploadEntry `json:"uploads"`
	}
	if err := json.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("failed to parse journal %s: %w", j.path, err)
	}

	if stored.Uploads != nil {
		j.Uploads = stored.Uploads
	}
	logger.Info("Loaded journal with %d entries from %s", len(j.Uploads), j.path)

	return nil
}

// Save writes the journal to disk, at most once per save interval
func (j *Journal) Save() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if time.Since(j.lastSaveTime) < j.saveInterval {
		return nil // Don't save too frequently
	}
	return j.write()
}

// Flush writes the journal to disk unconditionally
func (j *Journal) Flush() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.write()
}

func (j *Journal) write() error {
	j.lastSaveTime = time.Now()

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(j.path), 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}

	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal journal: %w", err)
	}

	if err := os.WriteFile(j.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write journal file: %w", err)
	}

	logger.Debug("Saved journal with %d entries to %s", len(j.Uploads), j.path)
	return nil
}

// MarkUploaded marks an object key as published from source
func (j *Journal) MarkUploaded(key string, source string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.Uploads[key] = UploadEntry{
		Path:      key,
		Uploaded:  true,
		Timestamp: time.Now().UTC(),
		Source:    source,
	}

	// Save after every 100 files
	j.batchCount++
	if j.batchCount >= 100 {
		j.batchCount = 0
		if err := j.write(); err != nil {
			logger.Warn("Failed to save journal: %v", err)
		}
	}
}

// IsUploaded checks if an object key has been published
func (j *Journal) IsUploaded(key string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	entry, exists := j.Uploads[key]
	return exists && entry.Uploaded
}
