package upscale

import (
	"math"

	"videocore/raster"
)

// EdgeMap carries the per-pixel Sobel output: clamped gradient magnitude,
// normalized angle, and bias-0.5 gx/gy components.
type EdgeMap struct {
	W, H      int
	Magnitude []float64
	Angle     []float64
	Gx, Gy    []float64
}

func luminance(r, g, b float32) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

var sobelX = [3][3]float64{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
var sobelY = [3][3]float64{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}

// DetectEdges runs a 3x3 Sobel operator on img's luminance.
func DetectEdges(img *raster.Image) EdgeMap {
	em := EdgeMap{
		W:         img.W,
		H:         img.H,
		Magnitude: make([]float64, img.W*img.H),
		Angle:     make([]float64, img.W*img.H),
		Gx:        make([]float64, img.W*img.H),
		Gy:        make([]float64, img.W*img.H),
	}

	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			// Positive and negative taps are summed separately so that a
			// uniform neighbourhood cancels exactly.
			var gxPos, gxNeg, gyPos, gyNeg float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					r, g, b, _ := img.At(x+kx, y+ky)
					l := luminance(r, g, b)
					if w := sobelX[ky+1][kx+1]; w > 0 {
						gxPos += l * w
					} else {
						gxNeg -= l * w
					}
					if w := sobelY[ky+1][kx+1]; w > 0 {
						gyPos += l * w
					} else {
						gyNeg -= l * w
					}
				}
			}
			gx, gy := gxPos-gxNeg, gyPos-gyNeg
			mag := math.Hypot(gx, gy)
			if mag > 1 {
				mag = 1
			}
			idx := y*img.W + x
			em.Magnitude[idx] = mag
			em.Angle[idx] = (math.Atan2(gy, gx) + math.Pi) / (2 * math.Pi)
			em.Gx[idx] = gx*0.5 + 0.5
			em.Gy[idx] = gy*0.5 + 0.5
		}
	}
	return em
}

const edgeMagnitudeThreshold = 0.05

// RefineEdges blends each edge pixel with the average of its two
// perpendicular neighbours, weighted by magnitude.
func RefineEdges(img *raster.Image, em EdgeMap) *raster.Image {
	out := raster.NewImage(img.W, img.H)
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			idx := y*img.W + x
			r, g, b, a := img.At(x, y)
			mag := em.Magnitude[idx]
			if mag < edgeMagnitudeThreshold {
				out.Set(x, y, r, g, b, a)
				continue
			}

			gx := em.Gx[idx]*2 - 1
			gy := em.Gy[idx]*2 - 1
			gmag := math.Hypot(gx, gy)
			if gmag == 0 {
				out.Set(x, y, r, g, b, a)
				continue
			}
			px, py := -gy/gmag, gx/gmag
			nx1, ny1 := x+int(math.Round(px)), y+int(math.Round(py))
			nx2, ny2 := x-int(math.Round(px)), y-int(math.Round(py))

			r1, g1, b1, a1 := img.At(nx1, ny1)
			r2, g2, b2, a2 := img.At(nx2, ny2)
			avgR := (r1 + r2) / 2
			avgG := (g1 + g2) / 2
			avgB := (b1 + b2) / 2
			avgA := (a1 + a2) / 2

			blendAmt := math.Min(mag*2, 1) * 0.3
			out.Set(x, y,
				lerp32(r, avgR, blendAmt),
				lerp32(g, avgG, blendAmt),
				lerp32(b, avgB, blendAmt),
				lerp32(a, avgA, blendAmt),
			)
		}
	}
	return out
}

func lerp32(a, b float32, t float64) float32 {
	return float32(float64(a) + (float64(b)-float64(a))*t)
}
