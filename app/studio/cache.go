package studio

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dmitrymomot/qrstudio/pkg/qrcode"
)

type cacheKey struct {
	text   string
	style  qrcode.Style
	size   int
	margin int
}

// Cache memoizes rendered PNGs. Rendering is deterministic, so a hit is
// byte-identical to a fresh render. Only successful renders are stored.
// Returned slices are shared and must not be modified.
type Cache struct {
	renderer *qrcode.Renderer
	entries  *lru.Cache[cacheKey, []byte]
}

// NewCache wraps renderer with an LRU of the given capacity. A capacity of
// zero or less renders every request.
func NewCache(renderer *qrcode.Renderer, capacity int) (*Cache, error) {
	c := &Cache{renderer: renderer}
	if capacity <= 0 {
		return c, nil
	}

	entries, err := lru.New[cacheKey, []byte](capacity)
	if err != nil {
		return nil, fmt.Errorf("studio: render cache: %w", err)
	}
	c.entries = entries
	return c, nil
}

// Render returns the PNG for the arguments and whether it came from the cache.
func (c *Cache) Render(text string, style qrcode.Style, size, margin int) ([]byte, bool, error) {
	key := cacheKey{text: text, style: style, size: size, margin: margin}
	if c.entries != nil {
		if data, ok := c.entries.Get(key); ok {
			return data, true, nil
		}
	}

	data, err := c.renderer.Render(text, style, size, margin)
	if err != nil {
		return nil, false, err
	}

	if c.entries != nil {
		c.entries.Add(key, data)
	}
	return data, false, nil
}

// Len reports the number of cached images.
func (c *Cache) Len() int {
	if c.entries == nil {
		return 0
	}
	return c.entries.Len()
}

// Purge drops every cached image.
func (c *Cache) Purge() {
	if c.entries != nil {
		c.entries.Purge()
	}
}
