package upscale

import "videocore/raster"

// AdaptiveSharpen forms a 4-neighbour blur, derives a high-pass by
// subtracting it from the centre pixel, and adds back a strength that
// tapers off where the high-pass luminance is already large.
func AdaptiveSharpen(img *raster.Image, strength float64) *raster.Image {
	out := raster.NewImage(img.W, img.H)
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			cr, cg, cb, ca := img.At(x, y)

			nr, ng, nb, _ := neighborAverage(img, x, y)

			hpR := cr - nr
			hpG := cg - ng
			hpB := cb - nb
			hpLuma := luminance(hpR, hpG, hpB)

			adaptive := strength * (1 - absf64(hpLuma)*0.5)

			out.Set(x, y,
				clamp32(cr+hpR*float32(adaptive)),
				clamp32(cg+hpG*float32(adaptive)),
				clamp32(cb+hpB*float32(adaptive)),
				ca,
			)
		}
	}
	return out
}

func neighborAverage(img *raster.Image, x, y int) (r, g, b, a float32) {
	r1, g1, b1, a1 := img.At(x-1, y)
	r2, g2, b2, a2 := img.At(x+1, y)
	r3, g3, b3, a3 := img.At(x, y-1)
	r4, g4, b4, a4 := img.At(x, y+1)
	return (r1 + r2 + r3 + r4) / 4, (g1 + g2 + g3 + g4) / 4, (b1 + b2 + b3 + b4) / 4, (a1 + a2 + a3 + a4) / 4
}

func absf64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp32(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
