package glyph

import (
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/arcade/omap"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// ErrNoRasterizer is returned by Load if no rasterizer is given.
var ErrNoRasterizer = errors.New("glyph: no rasterizer")

// ASCII is the range of code points loaded into a cache, [0, ASCII).
const ASCII = 128

// Glyph holds the metrics and texture of a rasterized character.
type Glyph struct {
	TextureID uint32
	Size      [2]int // width and rows of the bitmap
	Bearing   [2]int // offset from the origin to the left and top of the bitmap
	Advance   uint32 // horizontal advance in 1/64 pixels
}

// Rasterizer renders characters into textures.
type Rasterizer interface {
	// Rasterize renders r into a new texture.
	Rasterize(r rune) (Glyph, error)
	// Discard deletes a texture created by Rasterize.
	Discard(textureID uint32)
}

// Config configures a Cache.
type Config struct {
	// Context is used for measuring console widths. If nil,
	// uax11.LatinContext is used.
	Context *uax11.Context
}

func (cfg Config) normalized() Config {
	if cfg.Context == nil {
		cfg.Context = uax11.LatinContext
	}
	return cfg
}

// Cache holds the glyphs of one font face.
type Cache struct {
	conf   Config
	glyphs *omap.Map[Glyph]
}

var setupGraphemes sync.Once

// New creates an empty glyph cache.
func New(conf Config) *Cache {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return &Cache{
		conf:   conf.normalized(),
		glyphs: omap.New[Glyph](),
	}
}

// Len returns the number of cached glyphs.
func (c *Cache) Len() int {
	return c.glyphs.Len()
}

// Load replaces the cached glyphs by the ASCII characters rendered with r.
// Textures of glyphs cached before are handed to r.Discard. Characters r
// fails to render are traced and skipped; NUL cannot be represented as a
// key and is skipped as well. Load returns the number of glyphs loaded.
func (c *Cache) Load(r Rasterizer) (int, error) {
	if r == nil {
		return 0, ErrNoRasterizer
	}
	c.Release(r.Discard)
	for ch := rune(1); ch < ASCII; ch++ {
		g, err := r.Rasterize(ch)
		if err != nil {
			tracer().Errorf("glyph: failed to load glyph %q: %v", ch, err)
			continue
		}
		if err := c.glyphs.Put(omap.StringKey(string(ch)), g); err != nil {
			r.Discard(g.TextureID)
			return c.Len(), fmt.Errorf("glyph: storing %q: %w", ch, err)
		}
	}
	tracer().Debugf("glyph: loaded %d glyphs", c.Len())
	return c.Len(), nil
}

// Lookup returns the glyph for a character.
func (c *Cache) Lookup(ch string) (Glyph, bool) {
	return c.glyphs.Get(omap.StringKey(ch))
}

// Release hands the texture of every glyph to discard (if non-nil), in
// character order, and empties the cache.
func (c *Cache) Release(discard func(textureID uint32)) {
	if discard != nil {
		c.glyphs.Walk(func(_ omap.Key, g Glyph) bool {
			discard(g.TextureID)
			return true
		})
	}
	c.glyphs.Clear(nil)
}
