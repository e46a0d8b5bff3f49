// Package compositor implements the per-pixel blend-mode pipeline and
// chroma-key matting that combine already-decoded layer bitmaps into one
// output frame.
package compositor

import (
	"math"
	"time"

	"videocore/raster"
)

// Layer is one entry in the ordered composite stack.
type Layer struct {
	Image     *raster.Image
	BlendMode BlendMode
	Opacity   float64
	Visible   bool
}

// Background is an optional solid fill painted before any layer.
type Background struct {
	Enabled      bool
	R, G, B, A float32
}

// Result carries the composited frame plus diagnostics.
type Result struct {
	Image          *raster.Image
	ProcessingTime time.Duration
	LayerCount     int
}

// Composite clears to transparent (optionally filling a background), then
// composites each visible, non-zero-opacity layer bottom-to-top using
// source-over for normal blending and the blend formula plus source-over
// for everything else.
func Composite(layers []Layer, bg Background, w, h int) Result {
	start := time.Now()
	out := raster.NewImage(w, h)
	if bg.Enabled {
		out.Fill(bg.R, bg.G, bg.B, bg.A)
	}

	count := 0
	for _, layer := range layers {
		if !layer.Visible || layer.Opacity <= 0 || layer.Image == nil {
			continue
		}
		compositeLayer(out, layer)
		count++
	}

	return Result{Image: out, ProcessingTime: time.Since(start), LayerCount: count}
}

func compositeLayer(out *raster.Image, layer Layer) {
	img := layer.Image
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			br, bg_, bb, ba := out.At(x, y)
			lr, lg, lb, la := img.At(x, y)
			effectiveAlpha := float64(la) * layer.Opacity

			var cr, cg, cb float32
			if layer.BlendMode == "" || layer.BlendMode == BlendNormal {
				cr, cg, cb = lr, lg, lb
			} else {
				cr = blend(layer.BlendMode, br, lr)
				cg = blend(layer.BlendMode, bg_, lg)
				cb = blend(layer.BlendMode, bb, lb)
			}

			nr, ng, nb, na := sourceOver(br, bg_, bb, ba, cr, cg, cb, float32(effectiveAlpha))
			out.Set(x, y, nr, ng, nb, na)
		}
	}
}

// sourceOver composites (lr,lg,lb,la) over (br,bg,bb,ba), both unpremultiplied.
func sourceOver(br, bgc, bb, ba, lr, lg, lb, la float32) (r, g, b, a float32) {
	outA := la + ba*(1-la)
	if outA <= 0 {
		return 0, 0, 0, 0
	}
	mix := func(base, layer float32) float32 {
		return (layer*la + base*ba*(1-la)) / outA
	}
	return mix(br, lr), mix(bgc, lg), mix(bb, lb), outA
}

// ChromaKey configures chroma-key alpha extraction.
type ChromaKey struct {
	KeyR, KeyG, KeyB float32
	Tolerance        float64
	EdgeSoftness     float64
	SpillSuppression float64
}

// ApplyChromaKey rewrites img's alpha channel by proximity to the key
// colour, softening the edge and optionally suppressing spill on the
// key-dominant channel.
func ApplyChromaKey(img *raster.Image, key ChromaKey) {
	inner := key.Tolerance - key.EdgeSoftness
	outer := key.Tolerance + key.EdgeSoftness

	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			r, g, b, a := img.At(x, y)
			dr := float64(r - key.KeyR)
			dg := float64(g - key.KeyG)
			db := float64(b - key.KeyB)
			d := math.Sqrt(dr*dr+dg*dg+db*db) / math.Sqrt(3)

			var keyAlpha float64
			switch {
			case d <= inner:
				keyAlpha = 0
			case d >= outer:
				keyAlpha = 1
			default:
				keyAlpha = (d - inner) / (outer - inner)
			}

			if keyAlpha > 0.5 && key.SpillSuppression > 0 {
				r, g, b = suppressSpill(r, g, b, key)
			}

			img.Set(x, y, r, g, b, a*float32(keyAlpha))
		}
	}
}

func suppressSpill(r, g, b float32, key ChromaKey) (float32, float32, float32) {
	dominant, others := dominantChannel(key.KeyR, key.KeyG, key.KeyB)
	_ = others
	switch dominant {
	case 'g':
		excess := g - maxf(r, b)
		if excess > 0 {
			g -= excess * float32(key.SpillSuppression)
		}
	case 'r':
		excess := r - maxf(g, b)
		if excess > 0 {
			r -= excess * float32(key.SpillSuppression)
		}
	case 'b':
		excess := b - maxf(r, g)
		if excess > 0 {
			b -= excess * float32(key.SpillSuppression)
		}
	}
	return r, g, b
}

func dominantChannel(r, g, b float32) (byte, [2]byte) {
	switch {
	case g >= r && g >= b:
		return 'g', [2]byte{'r', 'b'}
	case r >= g && r >= b:
		return 'r', [2]byte{'g', 'b'}
	default:
		return 'b', [2]byte{'r', 'g'}
	}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// SampleKeyColor averages an (2r+1)x(2r+1) square centred at (x,y) and
// returns an RGB colour in [0,1], suitable as a ChromaKey.KeyR/G/B source.
func SampleKeyColor(img *raster.Image, x, y, r int) (float32, float32, float32) {
	var sr, sg, sb float64
	n := 0
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			cr, cg, cb, _ := img.At(x+dx, y+dy)
			sr += float64(cr)
			sg += float64(cg)
			sb += float64(cb)
			n++
		}
	}
	if n == 0 {
		return 0, 0, 0
	}
	return float32(sr / float64(n)), float32(sg / float64(n)), float32(sb / float64(n))
}
