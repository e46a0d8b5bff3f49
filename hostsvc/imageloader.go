package hostsvc

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"time"

	"videocore/corerr"
	"videocore/raster"
)

// HTTPImageLoader implements graphics.ImageLoader by fetching a URL over
// HTTP and decoding it as PNG/JPEG/GIF. It caches nothing itself — the
// graphics engine owns the URL-keyed image cache (§5).
type HTTPImageLoader struct {
	Client *http.Client
}

// NewHTTPImageLoader returns a loader with a bounded request timeout.
func NewHTTPImageLoader() *HTTPImageLoader {
	return &HTTPImageLoader{Client: &http.Client{Timeout: 15 * time.Second}}
}

// Load fetches and decodes the image at url.
func (l *HTTPImageLoader) Load(url string) (*raster.Image, error) {
	resp, err := l.Client.Get(url)
	if err != nil {
		return nil, corerr.Wrap(corerr.DecodeError, "failed to fetch image url "+url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, corerr.Newf(corerr.DecodeError, "image url %s returned status %d", url, resp.StatusCode)
	}

	src, format, err := image.Decode(resp.Body)
	if err != nil {
		return nil, corerr.Wrap(corerr.DecodeError, "failed to decode image at "+url, err)
	}
	_ = format

	bounds := src.Bounds()
	img := raster.NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			r, g, b, a := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			img.Set(x, y, float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
		}
	}
	return img, nil
}
