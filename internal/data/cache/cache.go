// Package cache memoizes computed activity reports so repeated invocations
// within the TTL do not hit the event source again. The engine is unaware
// the cache exists.
package cache

import (
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/penwyp/go-activity-monitor/internal/core/model"
	"github.com/penwyp/go-activity-monitor/internal/util"
)

type cachedReport struct {
	Key      string                `json:"key"`
	CachedAt int64                 `json:"cachedAt"`
	Report   *model.ActivityReport `json:"report"`
}

// FileCache stores reports as JSON files under a base directory, with a
// memory layer in front for repeated lookups within one process.
type FileCache struct {
	baseDir string
	ttl     time.Duration
	mu      sync.RWMutex
	memory  map[string]*cachedReport
}

func NewFileCache(baseDir string, ttl time.Duration) (*FileCache, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &FileCache{
		baseDir: baseDir,
		ttl:     ttl,
		memory:  make(map[string]*cachedReport),
	}, nil
}

// cachePath hashes the key into a filename; keys contain hosts and paths
// that are not filesystem-safe.
func (c *FileCache) cachePath(key string) string {
	sum := crc32.ChecksumIEEE([]byte(key))
	return filepath.Join(c.baseDir, fmt.Sprintf("%08x.json", sum))
}

func (c *FileCache) fresh(entry *cachedReport) bool {
	return time.Since(time.Unix(entry.CachedAt, 0)) < c.ttl
}

// Get returns the cached report for the key if it is still fresh.
func (c *FileCache) Get(key string) (*model.ActivityReport, bool) {
	c.mu.RLock()
	entry, ok := c.memory[key]
	c.mu.RUnlock()
	if ok {
		if c.fresh(entry) {
			return entry.Report, true
		}
		// Evict, or every future miss re-reads a dead file.
		c.mu.Lock()
		delete(c.memory, key)
		c.mu.Unlock()
	}

	data, err := os.ReadFile(c.cachePath(key))
	if err != nil {
		return nil, false
	}

	var stored cachedReport
	if err := sonic.Unmarshal(data, &stored); err != nil {
		util.LogWarnf("cache: discarding unreadable entry for %q: %v", key, err)
		return nil, false
	}
	// Hash collision guard.
	if stored.Key != key {
		return nil, false
	}
	if !c.fresh(&stored) {
		return nil, false
	}

	c.mu.Lock()
	c.memory[key] = &stored
	c.mu.Unlock()
	return stored.Report, true
}

// Set stores a report under the key, on disk and in memory.
func (c *FileCache) Set(key string, report *model.ActivityReport) error {
	entry := &cachedReport{
		Key:      key,
		CachedAt: time.Now().Unix(),
		Report:   report,
	}

	data, err := sonic.Marshal(entry)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.cachePath(key), data, 0644); err != nil {
		return err
	}

	c.mu.Lock()
	c.memory[key] = entry
	c.mu.Unlock()
	return nil
}

// Clear removes every cached report file.
func (c *FileCache) Clear() error {
	c.mu.Lock()
	c.memory = make(map[string]*cachedReport)
	c.mu.Unlock()

	entries, err := os.ReadDir(c.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			if err := os.Remove(filepath.Join(c.baseDir, entry.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}
