package structlog

import (
	gocache "github.com/patrickmn/go-cache"
)

// TemplateCache holds parsed templates keyed by their source text. It is
// safe for concurrent use. When the cache reaches its size it is flushed
// rather than evicting entry by entry.
type TemplateCache struct {
	items   *gocache.Cache
	maxSize int
}

// NewTemplateCache returns a cache for up to cfg.Size templates, each kept
// for cfg.TTL (zero means no expiry). It returns nil when cfg.Size is zero;
// a nil cache parses on every lookup.
func NewTemplateCache(cfg TemplateCacheConfig) *TemplateCache {
	if cfg.Size <= 0 {
		return nil
	}
	ttl := cfg.TTL
	cleanup := 2 * ttl
	if ttl <= 0 {
		ttl = gocache.NoExpiration
		cleanup = 0
	}
	return &TemplateCache{
		items:   gocache.New(ttl, cleanup),
		maxSize: cfg.Size,
	}
}

// Parse returns the cached template for text, parsing and caching it on a
// miss.
func (c *TemplateCache) Parse(text string) *Template {
	if c == nil {
		return ParseTemplate(text)
	}
	if t, ok := c.items.Get(text); ok {
		if tmpl, ok := t.(*Template); ok {
			return tmpl
		}
	}
	tmpl := ParseTemplate(text)
	if c.items.ItemCount() >= c.maxSize {
		c.items.Flush()
	}
	c.items.SetDefault(text, tmpl)
	return tmpl
}

// Len returns the number of cached templates, including expired entries not
// yet cleaned up.
func (c *TemplateCache) Len() int {
	if c == nil {
		return 0
	}
	return c.items.ItemCount()
}
