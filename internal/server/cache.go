package server

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// SourceCache provides thread-safe caching of source image bytes to avoid
// redundant disk reads when several styles are applied to the same file.
//
// Entries are keyed by the exact path string. Cached bytes remain in memory
// until removed with Evict or Clear, and are not refreshed if the file
// changes on disk.
type SourceCache struct {
	mu       sync.RWMutex
	maxBytes int64
	files    map[string][]byte
}

// NewSourceCache creates an empty cache that refuses files larger than
// maxBytes.
func NewSourceCache(maxBytes int64) *SourceCache {
	return &SourceCache{
		maxBytes: maxBytes,
		files:    make(map[string][]byte),
	}
}

// Load returns the contents of path, reading it from disk on first use.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is larger than the configured limit
func (c *SourceCache) Load(path string) ([]byte, error) {
	c.mu.RLock()
	if data, ok := c.files[path]; ok {
		c.mu.RUnlock()
		return data, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat image: %w", err)
	}
	if stat.Size() > c.maxBytes {
		return nil, fmt.Errorf("image is %d bytes, limit is %d", stat.Size(), c.maxBytes)
	}

	data, err := io.ReadAll(io.LimitReader(f, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if int64(len(data)) > c.maxBytes {
		return nil, fmt.Errorf("image exceeds limit of %d bytes", c.maxBytes)
	}

	c.mu.Lock()
	c.files[path] = data
	c.mu.Unlock()

	return data, nil
}

// Evict removes a specific file from the cache by its path.
func (c *SourceCache) Evict(path string) {
	c.mu.Lock()
	delete(c.files, path)
	c.mu.Unlock()
}

// Clear removes every cached file.
func (c *SourceCache) Clear() {
	c.mu.Lock()
	c.files = make(map[string][]byte)
	c.mu.Unlock()
}

// Len returns the number of cached files.
func (c *SourceCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.files)
}
