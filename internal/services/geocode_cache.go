package services

import (
	"encoding/json"
	"os"
	"sync"
)

// CoordinateCache is a durable name → coordinate map. Entries are written
// through to disk as they arrive and are never expired: once a place has
// geocoded successfully its coordinates are treated as valid forever.
type CoordinateCache interface {
	Get(key string) (Coordinate, bool)
	Put(key string, coord Coordinate) error
	Flush() error
}

type fileCoordinateCache struct {
	mu      sync.Mutex
	path    string
	entries map[string]Coordinate
}

// NewFileCoordinateCache loads the cache file if it exists; a missing file
// starts an empty cache.
func NewFileCoordinateCache(path string) (CoordinateCache, error) {
	c := &fileCoordinateCache{
		path:    path,
		entries: make(map[string]Coordinate),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &c.entries); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *fileCoordinateCache) Get(key string) (Coordinate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	coord, ok := c.entries[key]
	return coord, ok
}

func (c *fileCoordinateCache) Put(key string, coord Coordinate) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = coord
	return c.flushLocked()
}

func (c *fileCoordinateCache) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flushLocked()
}

func (c *fileCoordinateCache) flushLocked() error {
	data, err := json.Marshal(c.entries)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}
