package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/archscore/archscore/internal/domain"
	"github.com/hashicorp/golang-lru/v2"
)

// CachedLoader wraps a CatalogLoader and reuses parsed catalogs until the
// file's size or modification time changes. Cached catalogs are shared and
// must not be mutated.
type CachedLoader struct {
	next  domain.CatalogLoader
	cache *lru.Cache[string, *domain.ArchitectureCatalog]
}

// NewCached creates a CachedLoader holding up to size catalogs.
func NewCached(next domain.CatalogLoader, size int) (*CachedLoader, error) {
	cache, err := lru.New[string, *domain.ArchitectureCatalog](size)
	if err != nil {
		return nil, err
	}
	return &CachedLoader{next: next, cache: cache}, nil
}

func (c *CachedLoader) Load(path string) (*domain.ArchitectureCatalog, error) {
	key, err := cacheKey(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	if cat, ok := c.cache.Get(key); ok {
		return cat, nil
	}
	cat, err := c.next.Load(path)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, cat)
	return cat, nil
}

// Len reports how many catalogs are cached.
func (c *CachedLoader) Len() int { return c.cache.Len() }

func cacheKey(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s|%d|%d", abs, info.Size(), info.ModTime().UnixNano()), nil
}
