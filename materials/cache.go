package materials

import (
	"go.uber.org/zap"

	"lightmap-viewer/internal/logger"
)

// TextureCache deduplicates GPU uploads by source path (first face path for
// cubemaps). Entries live until the process exits, failed loads included, so
// a missing file is reported once and never retried.
//
// The cache is written during scene load and read while rendering; it is not
// safe for concurrent use.
type TextureCache struct {
	loader  TextureLoader
	handles map[string]uint32
	Log     *zap.Logger
}

// NewTextureCache returns an empty cache that uploads through loader.
func NewTextureCache(loader TextureLoader) *TextureCache {
	return &TextureCache{
		loader:  loader,
		handles: make(map[string]uint32),
	}
}

// Texture2D returns the handle for path, uploading it on first use.
func (c *TextureCache) Texture2D(path string) uint32 {
	if h, ok := c.handles[path]; ok {
		return h
	}
	h, err := c.loader.LoadTexture2D(path)
	if err != nil {
		c.log().Error("texture load failed", zap.String("path", path), zap.Error(err))
	}
	c.handles[path] = h
	return h
}

// Cubemap returns the handle for a six-face cubemap keyed by its first face.
func (c *TextureCache) Cubemap(faces [6]string) uint32 {
	key := faces[0]
	if h, ok := c.handles[key]; ok {
		return h
	}
	h, err := c.loader.LoadCubemap(faces)
	if err != nil {
		c.log().Error("cubemap load failed", zap.String("path", key), zap.Error(err))
	}
	c.handles[key] = h
	return h
}

// Len is the number of distinct sources seen so far.
func (c *TextureCache) Len() int { return len(c.handles) }

func (c *TextureCache) log() *zap.Logger {
	if c.Log != nil {
		return c.Log
	}
	return logger.Log
}
