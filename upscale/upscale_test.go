package upscale

import (
	"testing"

	"videocore/raster"
)

func checkerboard(w, h int) *raster.Image {
	img := raster.NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, 1, 1, 1, 1)
			} else {
				img.Set(x, y, 0, 0, 0, 1)
			}
		}
	}
	return img
}

type fakeDevice struct{ available bool }

func (f fakeDevice) Available() bool { return f.available }

func TestUpscaleRejectsNonGrowingTarget(t *testing.T) {
	e := NewEngine(fakeDevice{available: true})
	img := raster.NewImage(8, 8)
	if _, err := e.Upscale(img, 8, 8, QualityFast); err == nil {
		t.Fatal("expected error when target does not exceed source")
	}
}

func TestUpscaleFallsBackWithoutDevice(t *testing.T) {
	e := NewEngine(nil)
	img := checkerboard(4, 4)
	out, err := e.Upscale(img, 8, 8, QualityFast)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.W != 8 || out.H != 8 {
		t.Fatalf("expected 8x8 output, got %dx%d", out.W, out.H)
	}
}

func TestUpscaleFallsBackWhenDeviceUnavailable(t *testing.T) {
	e := NewEngine(fakeDevice{available: false})
	img := checkerboard(4, 4)
	out, err := e.Upscale(img, 6, 6, QualityFast)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.W != 6 {
		t.Fatalf("expected fallback output sized 6 wide, got %d", out.W)
	}
}

func TestUpscaleFastProducesRequestedSize(t *testing.T) {
	e := NewEngine(fakeDevice{available: true})
	img := checkerboard(4, 4)
	out, err := e.Upscale(img, 12, 12, QualityFast)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.W != 12 || out.H != 12 {
		t.Fatalf("expected 12x12, got %dx%d", out.W, out.H)
	}
}

func TestUpscaleUnknownQualityErrors(t *testing.T) {
	e := NewEngine(fakeDevice{available: true})
	img := checkerboard(4, 4)
	if _, err := e.Upscale(img, 8, 8, Quality("ultra")); err == nil {
		t.Fatal("expected error for unknown quality tier")
	}
}

func TestLanczosPreservesUniformColor(t *testing.T) {
	img := raster.NewImage(4, 4)
	img.Fill(0.5, 0.25, 0.75, 1)
	out := LanczosResample(img, 8, 8)
	r, g, b, a := out.At(4, 4)
	if diff := r - 0.5; diff > 0.02 || diff < -0.02 {
		t.Fatalf("expected uniform color preserved, got r=%v", r)
	}
	if diff := g - 0.25; diff > 0.02 || diff < -0.02 {
		t.Fatalf("expected uniform color preserved, got g=%v", g)
	}
	if diff := b - 0.75; diff > 0.02 || diff < -0.02 {
		t.Fatalf("expected uniform color preserved, got b=%v", b)
	}
	if diff := a - 1; diff > 0.02 || diff < -0.02 {
		t.Fatalf("expected uniform alpha preserved, got a=%v", a)
	}
}

func TestDetectEdgesFlatImageHasZeroMagnitude(t *testing.T) {
	img := raster.NewImage(4, 4)
	img.Fill(0.5, 0.5, 0.5, 1)
	em := DetectEdges(img)
	for _, m := range em.Magnitude {
		if m != 0 {
			t.Fatalf("expected zero magnitude on a flat image, got %v", m)
		}
	}
}

func TestDetectEdgesCheckerboardHasNonzeroMagnitude(t *testing.T) {
	img := checkerboard(5, 5)
	em := DetectEdges(img)
	found := false
	for _, m := range em.Magnitude {
		if m > 0.1 {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected checkerboard to produce nonzero edge magnitude somewhere")
	}
}

func TestTexturePoolRespectsMaxPerSize(t *testing.T) {
	p := NewTexturePool()
	var textures []*raster.Image
	for i := 0; i < maxTexturesPerSize+2; i++ {
		textures = append(textures, raster.NewImage(16, 16))
	}
	for _, tex := range textures {
		p.Release(tex)
	}
	if got := len(p.free[textureKey{16, 16}]); got != maxTexturesPerSize {
		t.Fatalf("expected pool capped at %d, got %d", maxTexturesPerSize, got)
	}
}

func TestTexturePoolAcquireReusesReleased(t *testing.T) {
	p := NewTexturePool()
	tex := raster.NewImage(8, 8)
	tex.Fill(1, 1, 1, 1)
	p.Release(tex)
	reused := p.Acquire(8, 8)
	r, _, _, _ := reused.At(0, 0)
	if r != 0 {
		t.Fatalf("expected reacquired texture cleared to transparent, got r=%v", r)
	}
}
