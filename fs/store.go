// Package fs exports catalog restaurants as JSON files.
package fs

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/reservo"
)

// Store writes one JSON file per restaurant with atomic update semantics.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
type Store struct {
	baseDir string
	name    string
}

// NewStore creates a new Store.
func NewStore(baseDir, name string) *Store {
	return &Store{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *Store) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes r below the temp directory at the path derived from its
// source URL, falling back to its ID.
func (s *Store) Save(r *reservo.Restaurant) error {
	relPath, err := SourcePath(r.SourceURL)
	if err != nil || relPath == "" {
		if r.ID == "" {
			return reservo.Errorf(reservo.EINVALID, "restaurant has neither source URL nor ID")
		}
		relPath = r.ID + ".json"
	}

	fullPath := filepath.Join(s.tempDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode restaurant: %w", err)
	}
	return os.WriteFile(fullPath, append(b, '\n'), 0644)
}

// Commit replaces the final directory with the temp directory.
func (s *Store) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards everything saved since the last Commit.
func (s *Store) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// SourcePath converts a listing URL to a relative file path.
// Example: https://www.yelp.com/biz/joes-pizza → yelp.com/biz/joes-pizza.json
func SourcePath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host == "" {
		return "", nil
	}

	parts := []string{host}
	for _, seg := range strings.Split(u.Path, "/") {
		if seg == "" || seg == "." || seg == ".." {
			continue
		}
		parts = append(parts, seg)
	}
	if len(parts) == 1 {
		parts = append(parts, "index")
	}
	return filepath.Join(parts...) + ".json", nil
}
