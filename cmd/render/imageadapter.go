package main

import (
	stdimage "image"
	"image/color"

	"videocore/raster"
)

// rasterImageAdapter lets a raster.Image satisfy stdlib image.Image so the
// CLI can hand it to png.Encode without the core packages ever importing
// the image package themselves.
type rasterImageAdapter struct {
	img *raster.Image
}

func imageToGoImage(img *raster.Image) stdimage.Image {
	return rasterImageAdapter{img: img}
}

func (a rasterImageAdapter) ColorModel() color.Model {
	return color.NRGBA64Model
}

func (a rasterImageAdapter) Bounds() stdimage.Rectangle {
	return stdimage.Rect(0, 0, a.img.W, a.img.H)
}

func (a rasterImageAdapter) At(x, y int) color.Color {
	r, g, b, al := a.img.At(x, y)
	return color.NRGBA64{
		R: uint16(clamp01(r) * 0xffff),
		G: uint16(clamp01(g) * 0xffff),
		B: uint16(clamp01(b) * 0xffff),
		A: uint16(clamp01(al) * 0xffff),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
