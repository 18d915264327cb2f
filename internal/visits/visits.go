// Package visits persists a simple page-visit counter as a small JSON file.
package visits

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Count is the persisted counter shape.
type Count struct {
	Count       int    `json:"count"`
	LastUpdated string `json:"lastUpdated"`
}

// Counter reads and increments the counter file. The file is created on first
// read; read errors degrade to a zero counter so the visitor-facing page never
// sees an error for a broken counter file.
type Counter struct {
	path string
	mu   sync.Mutex
}

func NewCounter(path string) *Counter {
	return &Counter{path: path}
}

// Get returns the current counter, initializing the file if it does not exist.
func (c *Counter) Get() (Count, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.read()
}

// Increment bumps the counter and persists it.
func (c *Counter) Increment() (Count, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, err := c.read()
	if err != nil {
		return Count{}, err
	}
	updated := Count{
		Count:       current.Count + 1,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
	if err := c.write(updated); err != nil {
		return Count{}, err
	}
	return updated, nil
}

func (c *Counter) read() (Count, error) {
	raw, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		initial := Count{Count: 0, LastUpdated: time.Now().UTC().Format(time.RFC3339)}
		if err := c.write(initial); err != nil {
			return Count{}, err
		}
		return initial, nil
	}
	if err != nil {
		log.Printf("Error reading visit count: %v", err)
		return Count{Count: 0, LastUpdated: time.Now().UTC().Format(time.RFC3339)}, nil
	}
	var count Count
	if err := json.Unmarshal(raw, &count); err != nil {
		log.Printf("Error parsing visit count: %v", err)
		return Count{Count: 0, LastUpdated: time.Now().UTC().Format(time.RFC3339)}, nil
	}
	return count, nil
}

func (c *Counter) write(count Count) error {
	raw, err := json.MarshalIndent(count, "", "  ")
	if err != nil {
		return fmt.Errorf("encode visit count: %w", err)
	}
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp")
	if err != nil {
		return fmt.Errorf("temp file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write visit count: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close visit count: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename visit count: %w", err)
	}
	return nil
}
