package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrStoreUnavailable wraps any filesystem or parse failure of the backing file.
var ErrStoreUnavailable = errors.New("portfolio store unavailable")

// Store persists the portfolio document as a single JSON file. Every Read hits
// the disk; there is no in-memory copy. Mutations go through Apply, which
// serializes the read-modify-write cycle under a mutex so concurrent HTTP
// handlers cannot interleave within one process. Lost updates between two admin
// sessions racing across separate requests are still possible and accepted.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Read loads and parses the document from disk.
func (s *Store) Read() (*PortfolioData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStoreUnavailable, s.path, err)
	}
	var doc PortfolioData
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrStoreUnavailable, s.path, err)
	}
	return &doc, nil
}

// Write replaces the document on disk. The file is written to a temp file in
// the same directory and renamed over the target, so a reader never observes a
// partial document.
func (s *Store) Write(doc *PortfolioData) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrStoreUnavailable, err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: mkdir %s: %v", ErrStoreUnavailable, dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp")
	if err != nil {
		return fmt.Errorf("%w: temp file: %v", ErrStoreUnavailable, err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write: %v", ErrStoreUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close: %v", ErrStoreUnavailable, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: rename: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Replace overwrites the whole document under the store mutex, so a replace
// cannot interleave with an in-flight Apply cycle in this process.
func (s *Store) Replace(doc *PortfolioData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Write(doc)
}

// Apply runs a read-modify-write cycle under the store mutex. If the mutator
// returns an error nothing is written and the error is passed through.
func (s *Store) Apply(mutate func(*PortfolioData) error) (*PortfolioData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.Read()
	if err != nil {
		return nil, err
	}
	if err := mutate(doc); err != nil {
		return nil, err
	}
	if err := s.Write(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Init seeds the default document when the backing file does not exist yet.
// An existing file is never touched.
func (s *Store) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat %s: %v", ErrStoreUnavailable, s.path, err)
	}
	return s.Write(DefaultData())
}
