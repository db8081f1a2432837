package structlog

import "time"

const (
	defaultMaxDepth          = 10
	defaultTemplateCacheSize = 1000
	defaultTemplateCacheTTL  = 10 * time.Minute
	defaultShutdownTimeout   = time.Second
)

// CaptureLimits bounds the size of captured values. Zero MaxStringLength
// and MaxCollectionCount mean unlimited.
type CaptureLimits struct {
	MaxDepth           int `validate:"gte=1,lte=64"`
	MaxStringLength    int `validate:"gte=0"`
	MaxCollectionCount int `validate:"gte=0"`
}

// DefaultCaptureLimits returns a depth limit of 10 and no size limits.
func DefaultCaptureLimits() CaptureLimits {
	return CaptureLimits{MaxDepth: defaultMaxDepth}
}

func (c CaptureLimits) withDefaults() CaptureLimits {
	if c.MaxDepth == 0 {
		c.MaxDepth = defaultMaxDepth
	}
	return c
}

// TemplateCacheConfig controls the parsed-template cache. A zero Size
// disables caching.
type TemplateCacheConfig struct {
	Size int           `validate:"gte=0"`
	TTL  time.Duration `validate:"gte=0"`
}

// DefaultTemplateCacheConfig caches up to 1000 templates for 10 minutes.
func DefaultTemplateCacheConfig() TemplateCacheConfig {
	return TemplateCacheConfig{Size: defaultTemplateCacheSize, TTL: defaultTemplateCacheTTL}
}
