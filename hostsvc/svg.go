// Package hostsvc provides reference/demo implementations of the host
// interfaces the core packages declare but never implement themselves
// (TextMetrics, SVGRasterizer, ImageLoader). No other package in this
// module imports hostsvc; only hostsvc's own tests exercise it.
package hostsvc

import (
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"videocore/corerr"
	"videocore/raster"
)

// BrowserRasterizer implements graphics.Rasterizer by loading SVG markup
// into a headless Chrome page and screenshotting it, grounded on the
// teacher's BrowserSession (browser/shared.go).
type BrowserRasterizer struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
}

// NewBrowserRasterizer launches a headless Chrome instance dedicated to
// SVG rasterisation. Callers must call Close when done.
func NewBrowserRasterizer() (*BrowserRasterizer, error) {
	l := launcher.New().Headless(true)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, corerr.Wrap(corerr.GpuUnavailable, "failed to launch headless browser", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, corerr.Wrap(corerr.GpuUnavailable, "failed to connect to headless browser", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		browser.Close()
		l.Cleanup()
		return nil, corerr.Wrap(corerr.GpuUnavailable, "failed to create browser page", err)
	}
	page = page.Timeout(30 * time.Second)

	return &BrowserRasterizer{launcher: l, browser: browser, page: page}, nil
}

// Close tears down the browser session.
func (b *BrowserRasterizer) Close() {
	if b.page != nil {
		b.page.Close()
	}
	if b.browser != nil {
		b.browser.Close()
	}
	if b.launcher != nil {
		b.launcher.Cleanup()
	}
}

// Rasterize loads svg into the page sized to the viewBox and returns the
// decoded screenshot as a raster.Image.
func (b *BrowserRasterizer) Rasterize(svg string, viewBox [4]float64) (*raster.Image, error) {
	width, height := viewBox[2], viewBox[3]
	html := fmt.Sprintf(`<html><body style="margin:0">%s</body></html>`, svg)

	if err := b.page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width: int(width), Height: int(height), DeviceScaleFactor: 1,
	}); err != nil {
		return nil, corerr.Wrap(corerr.DecodeError, "failed to set viewport for SVG rasterisation", err)
	}
	if err := b.page.SetDocumentContent(html); err != nil {
		return nil, corerr.Wrap(corerr.DecodeError, "failed to load SVG document", err)
	}

	data, err := b.page.Screenshot(false, &proto.PageCaptureScreenshot{Format: proto.PageCaptureScreenshotFormatPng})
	if err != nil {
		return nil, corerr.Wrap(corerr.DecodeError, "failed to screenshot rasterised SVG", err)
	}
	return decodePNGToImage(data)
}

func decodePNGToImage(data []byte) (*raster.Image, error) {
	tmp, err := os.CreateTemp("", "svg-raster-*.png")
	if err != nil {
		return nil, corerr.Wrap(corerr.DecodeError, "failed to create temp file for PNG decode", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()
	if _, err := tmp.Write(data); err != nil {
		return nil, corerr.Wrap(corerr.DecodeError, "failed to write PNG to temp file", err)
	}
	if _, err := tmp.Seek(0, 0); err != nil {
		return nil, corerr.Wrap(corerr.DecodeError, "failed to seek temp file", err)
	}

	src, err := png.Decode(tmp)
	if err != nil {
		return nil, corerr.Wrap(corerr.DecodeError, "failed to decode rasterised PNG", err)
	}

	bounds := src.Bounds()
	img := raster.NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			r, g, bl, a := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			img.Set(x, y, float32(r)/0xffff, float32(g)/0xffff, float32(bl)/0xffff, float32(a)/0xffff)
		}
	}
	return img, nil
}
