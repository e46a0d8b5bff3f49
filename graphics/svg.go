package graphics

import (
	"sync"

	"videocore/corerr"
	"videocore/raster"
)

// Rasterizer is the host-supplied SVGRasterizer(svgText, viewBox) -> Bitmap
// service from §6. It is the only suspension point the graphics engine
// itself has (§5): rasterisation is asynchronous, everything downstream of
// the returned bitmap is pure and synchronous.
type Rasterizer interface {
	Rasterize(svgText string, viewBox [4]float64) (*raster.Image, error)
}

// svgCache memoises rasterised SVG content keyed by the raw SVG text, owned
// by one Engine instance — not a global/shared cache across engines or
// threads (§5, §9 "Global singletons" design note).
type svgCache struct {
	mu    sync.Mutex
	cache map[string]*raster.Image
}

func newSVGCache() *svgCache { return &svgCache{cache: map[string]*raster.Image{}} }

func (c *svgCache) get(content string, viewBox [4]float64, r Rasterizer) (*raster.Image, error) {
	if r == nil {
		return nil, corerr.New(corerr.DecodeError, "no SVGRasterizer configured for SVG clips")
	}

	c.mu.Lock()
	if img, ok := c.cache[content]; ok {
		c.mu.Unlock()
		return img, nil
	}
	c.mu.Unlock()

	img, err := r.Rasterize(content, viewBox)
	if err != nil {
		return nil, corerr.Wrap(corerr.DecodeError, "rasterizing SVG content", err)
	}

	c.mu.Lock()
	c.cache[content] = img
	c.mu.Unlock()
	return img, nil
}

// applyColorStyle recolours a rasterised SVG's RGB using source-in
// composition against its own alpha: "tint" keeps the tint opacity as an
// extra multiplier, "replace" paints fully opaque wherever the source had
// any alpha at all.
func applyColorStyle(img *raster.Image, style SVGColorStyle) *raster.Image {
	if style.ColorMode == ColorModeNone {
		return img
	}
	tr, tg, tb := hexToRGB(style.TintColor)
	out := img.Clone()
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			_, _, _, a := out.At(x, y)
			if a <= 0 {
				continue
			}
			switch style.ColorMode {
			case ColorModeTint:
				opacity := style.TintOpacity
				if opacity == 0 {
					opacity = 1
				}
				out.Set(x, y, tr, tg, tb, a*float32(opacity))
			case ColorModeReplace:
				out.Set(x, y, tr, tg, tb, 1)
			}
		}
	}
	return out
}

func hexToRGB(hex string) (r, g, b float32) {
	if len(hex) != 7 || hex[0] != '#' {
		return 1, 1, 1
	}
	parse := func(s string) float32 {
		v := 0
		for _, c := range s {
			v *= 16
			switch {
			case c >= '0' && c <= '9':
				v += int(c - '0')
			case c >= 'a' && c <= 'f':
				v += int(c-'a') + 10
			case c >= 'A' && c <= 'F':
				v += int(c-'A') + 10
			}
		}
		return float32(v) / 255
	}
	return parse(hex[1:3]), parse(hex[3:5]), parse(hex[5:7])
}
