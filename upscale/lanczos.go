// Package upscale implements the image upscaling pipeline: two-pass
// separable Lanczos-3 resampling, Sobel edge detection, edge-directed
// refinement, and adaptive sharpening, composed into three quality tiers.
package upscale

import (
	"math"

	"videocore/raster"
)

const lanczosA = 3.0

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}

func lanczosWeight(d float64) float64 {
	if math.Abs(d) >= lanczosA {
		return 0
	}
	return sinc(d) * sinc(d/lanczosA)
}

// resample1D resamples along one axis (horizontal when axis==0, vertical
// when axis==1) from srcLen to dstLen using clamp-edge addressing.
func resample1D(img *raster.Image, dstW, dstH int, axis int) *raster.Image {
	out := raster.NewImage(dstW, dstH)

	var srcLen, dstLen int
	if axis == 0 {
		srcLen, dstLen = img.W, dstW
	} else {
		srcLen, dstLen = img.H, dstH
	}
	scale := float64(srcLen) / float64(dstLen)
	radius := int(math.Ceil(lanczosA * math.Max(1, scale)))

	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			var srcPos float64
			if axis == 0 {
				srcPos = (float64(x)+0.5)*scale - 0.5
			} else {
				srcPos = (float64(y)+0.5)*scale - 0.5
			}
			center := int(math.Round(srcPos))

			var accR, accG, accB, accA, weightSum float64
			for tap := center - radius; tap <= center+radius; tap++ {
				dist := (float64(tap) + 0.5 - srcPos) / math.Max(1, scale)
				w := lanczosWeight(dist)
				if w == 0 {
					continue
				}
				var r, g, b, a float32
				if axis == 0 {
					r, g, b, a = img.At(clampIdx(tap, img.W), y)
				} else {
					r, g, b, a = img.At(x, clampIdx(tap, img.H))
				}
				accR += float64(r) * w
				accG += float64(g) * w
				accB += float64(b) * w
				accA += float64(a) * w
				weightSum += w
			}
			if weightSum != 0 {
				accR /= weightSum
				accG /= weightSum
				accB /= weightSum
				accA /= weightSum
			}
			out.Set(x, y, float32(accR), float32(accG), float32(accB), float32(accA))
		}
	}
	return out
}

func clampIdx(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// LanczosResample performs the two-pass separable Lanczos-3 upscale: a
// horizontal pass to (dw,sh) followed by a vertical pass to (dw,dh).
func LanczosResample(img *raster.Image, dw, dh int) *raster.Image {
	horizontal := resample1D(img, dw, img.H, 0)
	return resample1D(horizontal, dw, dh, 1)
}
