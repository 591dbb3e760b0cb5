package watch

import (
	"io"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// HashCache remembers content hashes of watched files so editor saves that
// do not change content are filtered out before they trigger a rebuild.
type HashCache struct {
	mu     sync.Mutex
	hashes map[string]uint64
}

// NewHashCache creates an empty cache.
func NewHashCache() *HashCache {
	return &HashCache{hashes: make(map[string]uint64)}
}

// Changed reports whether the file's content differs from the last call
// for this path, updating the cache. Unreadable paths (deletes, renames)
// always count as changed and evict the entry.
func (c *HashCache) Changed(path string) bool {
	sum, err := hashFile(path)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		delete(c.hashes, path)
		return true
	}

	previous, known := c.hashes[path]
	c.hashes[path] = sum
	return !known || previous != sum
}

// AnyChanged reports whether at least one of the paths has new content.
// All paths are hashed so the cache stays current for the whole batch.
func (c *HashCache) AnyChanged(paths []string) bool {
	changed := false
	for _, path := range paths {
		if c.Changed(path) {
			changed = true
		}
	}
	return changed
}

func hashFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the watcher
	if err != nil {
		return 0, err
	}
	defer f.Close() //nolint:errcheck // best effort close

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, err
	}
	return hasher.Sum64(), nil
}
