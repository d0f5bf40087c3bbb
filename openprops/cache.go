package openprops

import (
	"context"
	"path/filepath"
	"time"

	"github.com/basetoken/basetoken/filesystem"
	"github.com/basetoken/basetoken/log"
	"github.com/basetoken/basetoken/where"
	"github.com/metafates/gache"
)

// CachedSource keeps fetched files on disk for a while, one gache file per name.
// Entries remember the origin they were fetched from and are treated as
// missing once the origin changes.
type CachedSource struct {
	source   Source
	origin   string
	lifetime time.Duration
	dir      string
}

type entry struct {
	Origin string `json:"origin"`
	Text   string `json:"text"`
}

// NewCachedSource wraps source with a cache under where.OpenProps().
// origin identifies where source reads from, usually its base URL.
func NewCachedSource(source Source, origin string, lifetime time.Duration) *CachedSource {
	return &CachedSource{
		source:   source,
		origin:   origin,
		lifetime: lifetime,
		dir:      where.OpenProps(),
	}
}

func (c *CachedSource) cacher(name string) *gache.Cache[entry] {
	return gache.New[entry](&gache.Options{
		Path:       filepath.Join(c.dir, name+".json"),
		Lifetime:   c.lifetime,
		FileSystem: &filesystem.GacheFs{},
	})
}

// Fetch returns the cached text of a file, refetching it when missing or expired.
func (c *CachedSource) Fetch(ctx context.Context, name string) (string, error) {
	cacher := c.cacher(name)

	cached, expired, err := cacher.Get()
	if err == nil && !expired && cached.Text != "" && cached.Origin == c.origin {
		log.Debugf("open props %q served from cache", name)
		return cached.Text, nil
	}

	text, err := c.source.Fetch(ctx, name)
	if err != nil {
		return "", err
	}

	if err := cacher.Set(entry{Origin: c.origin, Text: text}); err != nil {
		log.Warnf("caching open props %q: %s", name, err)
	}

	return text, nil
}
