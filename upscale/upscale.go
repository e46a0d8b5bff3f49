package upscale

import (
	"videocore/corerr"
	"videocore/raster"
)

// Quality selects how much of the pipeline runs beyond the base Lanczos pass.
type Quality string

const (
	QualityFast     Quality = "fast"
	QualityBalanced Quality = "balanced"
	QualityQuality  Quality = "quality"
)

const sharpenStrength = 0.5

// GPUDevice is the host's handle to a GPU backend. A nil device triggers the
// bilinear-canvas fallback, the same host-interface pattern used for
// TextMetrics/SVGRasterizer/ImageLoader elsewhere in this module.
type GPUDevice interface {
	Available() bool
}

// Engine owns a GPU device and a pool of reusable textures sized per
// upscale target. Handing its pool to another Engine is undefined.
type Engine struct {
	device GPUDevice
	pool   *TexturePool
}

// NewEngine binds an engine to a single GPU device (nil is valid and
// triggers the bilinear fallback for every Upscale call).
func NewEngine(device GPUDevice) *Engine {
	return &Engine{device: device, pool: NewTexturePool()}
}

// Upscale resizes img from (sw,sh) to (dw,dh) using the requested quality
// tier, requiring dw>sw || dh>sh. It falls back to bilinear scaling when no
// GPU device is available or the device reports unavailable.
func (e *Engine) Upscale(img *raster.Image, dw, dh int, quality Quality) (*raster.Image, error) {
	if dw <= img.W && dh <= img.H {
		return nil, corerr.New(corerr.InvalidRange, "upscale target must exceed source in at least one dimension")
	}

	if e.device == nil || !e.device.Available() {
		return bilinearFallback(img, dw, dh), nil
	}

	tex := e.pool.Acquire(dw, dh)
	defer e.pool.Release(tex)

	result := LanczosResample(img, dw, dh)

	switch quality {
	case QualityFast:
		return result, nil
	case QualityBalanced:
		em := DetectEdges(result)
		return RefineEdges(result, em), nil
	case QualityQuality:
		em := DetectEdges(result)
		refined := RefineEdges(result, em)
		return AdaptiveSharpen(refined, sharpenStrength), nil
	default:
		return nil, corerr.Newf(corerr.Unsupported, "unknown upscale quality %q", quality)
	}
}

// bilinearFallback performs a 2-D bilinear resize, used when GPU pipeline
// initialisation fails or no device is bound.
func bilinearFallback(img *raster.Image, dw, dh int) *raster.Image {
	out := raster.NewImage(dw, dh)
	scaleX := float64(img.W) / float64(dw)
	scaleY := float64(img.H) / float64(dh)

	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			sx := (float64(x) + 0.5) * scaleX - 0.5
			sy := (float64(y) + 0.5) * scaleY - 0.5
			x0, y0 := int(sx), int(sy)
			fx, fy := sx-float64(x0), sy-float64(y0)

			r00, g00, b00, a00 := img.At(x0, y0)
			r10, g10, b10, a10 := img.At(x0+1, y0)
			r01, g01, b01, a01 := img.At(x0, y0+1)
			r11, g11, b11, a11 := img.At(x0+1, y0+1)

			r := bilerp(r00, r10, r01, r11, fx, fy)
			g := bilerp(g00, g10, g01, g11, fx, fy)
			b := bilerp(b00, b10, b01, b11, fx, fy)
			a := bilerp(a00, a10, a01, a11, fx, fy)
			out.Set(x, y, r, g, b, a)
		}
	}
	return out
}

func bilerp(v00, v10, v01, v11 float32, fx, fy float64) float32 {
	top := float64(v00) + (float64(v10)-float64(v00))*fx
	bottom := float64(v01) + (float64(v11)-float64(v01))*fx
	return float32(top + (bottom-top)*fy)
}
