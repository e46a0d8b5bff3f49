package upscale

import "videocore/raster"

const maxTexturesPerSize = 4

type textureKey struct{ w, h int }

// TexturePool owns reusable image buffers keyed by size, capped at
// maxTexturesPerSize free textures per size. It is owned by exactly one
// Engine bound to one device.
type TexturePool struct {
	free map[textureKey][]*raster.Image
}

// NewTexturePool returns an empty pool.
func NewTexturePool() *TexturePool {
	return &TexturePool{free: make(map[textureKey][]*raster.Image)}
}

// Acquire returns a texture of the requested size, reusing a pooled one
// when available.
func (p *TexturePool) Acquire(w, h int) *raster.Image {
	key := textureKey{w, h}
	if bucket := p.free[key]; len(bucket) > 0 {
		tex := bucket[len(bucket)-1]
		p.free[key] = bucket[:len(bucket)-1]
		tex.Fill(0, 0, 0, 0)
		return tex
	}
	return raster.NewImage(w, h)
}

// Release returns tex to the pool, dropping it if the per-size cap is
// already full.
func (p *TexturePool) Release(tex *raster.Image) {
	if tex == nil {
		return
	}
	key := textureKey{tex.W, tex.H}
	bucket := p.free[key]
	if len(bucket) >= maxTexturesPerSize {
		return
	}
	p.free[key] = append(bucket, tex)
}
