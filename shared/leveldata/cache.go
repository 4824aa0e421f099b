package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// LoaderFunc parses the level with the given index.
type LoaderFunc func(index int) (*Registry, error)

// DirLoader loads levels from TMX files named by pattern (for example
// "level%d.tmx") inside dir of fsys. Unreadable files yield a MapLoadError.
func DirLoader(fsys fs.FS, dir, pattern string, opts Options) LoaderFunc {
	return func(index int) (*Registry, error) {
		p := path.Join(dir, fmt.Sprintf(pattern, index))
		src, err := NewTMXSource(fsys, p)
		if err != nil {
			return nil, &MapLoadError{Index: index, Path: p, Err: err}
		}
		return NewRegistry(index, src, opts)
	}
}

// Cache builds each level at most once per process and hands out the same
// registry on every later Get. Concurrent Gets for an index that is not yet
// cached share a single load; failed loads are not cached.
type Cache struct {
	load LoaderFunc

	mu     sync.RWMutex
	levels map[int]*Registry
	group  singleflight.Group
}

// NewCache returns an empty cache backed by load.
func NewCache(load LoaderFunc) *Cache {
	return &Cache{load: load, levels: make(map[int]*Registry)}
}

// Load parses the level without consulting or filling the cache.
func (c *Cache) Load(index int) (*Registry, error) {
	return c.load(index)
}

// Get returns the cached registry for index, loading it on first use.
func (c *Cache) Get(index int) (*Registry, error) {
	if r, ok := c.cached(index); ok {
		logger.Debug("level cache hit", "index", index)
		return r, nil
	}

	v, err, _ := c.group.Do(strconv.Itoa(index), func() (any, error) {
		if r, ok := c.cached(index); ok {
			return r, nil
		}
		r, err := c.load(index)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.levels[index] = r
		c.mu.Unlock()
		return r, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Registry), nil
}

// Cached reports whether index has already been loaded.
func (c *Cache) Cached(index int) bool {
	_, ok := c.cached(index)
	return ok
}

func (c *Cache) cached(index int) (*Registry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.levels[index]
	return r, ok
}
