package graphics

import (
	"sync"

	"videocore/corerr"
	"videocore/emphasis"
	"videocore/raster"
	"videocore/transform"
)

// ImageLoader is the host-supplied ImageLoader(url) -> Bitmap service from
// §6, used to resolve sticker images.
type ImageLoader interface {
	Load(url string) (*raster.Image, error)
}

// Engine owns the two clip-kind-agnostic caches (SVG rasters, sticker
// bitmaps) for one graphics engine instance; per §5 these caches are not
// shared across engine instances or threads.
type Engine struct {
	rasterizer Rasterizer
	loader     ImageLoader
	svgs       *svgCache

	mu     sync.Mutex
	images map[string]*raster.Image
}

// NewEngine constructs a graphics engine bound to the given host services.
// Either may be nil if the caller never renders SVG/sticker clips.
func NewEngine(rasterizer Rasterizer, loader ImageLoader) *Engine {
	return &Engine{rasterizer: rasterizer, loader: loader, svgs: newSVGCache(), images: map[string]*raster.Image{}}
}

// AnimatedGraphicState is the per-frame evaluation result from §4.F's
// 4-step pipeline: base/keyframe transform, entry/exit window state, and
// emphasis state, all composed into one final placement.
type AnimatedGraphicState struct {
	Transform transform.AnimatedTransform
	X, Y      float64
	ScaleX, ScaleY float64
	Rotation  float64
	Opacity   float64
	MaskAxis  string // "","x","y","radial" — set when an entry/exit wipe/reveal is active
	MaskFraction float64
	MaskFromCenter bool
}

// evaluate runs §4.F steps 1-4 and returns the composed placement, without
// touching any raster content.
func evaluate(c Clip, t, w, h float64) AnimatedGraphicState {
	at := transform.Evaluate(c.Transform, c.Keyframes, t, w, h)

	x, y := at.Position.X, at.Position.Y
	sx, sy := at.Scale.X, at.Scale.Y
	rot := at.Rotation
	op := at.Opacity

	relative := t - c.StartTime
	var maskAxis string
	var maskFraction float64
	var maskFromCenter bool

	inEntry := c.EntryAnimation != nil && relative >= 0 && relative < c.EntryAnimation.Duration
	outStart := c.Duration - valueOr(c.ExitAnimation)
	inExit := c.ExitAnimation != nil && relative >= outStart && relative <= c.Duration

	switch {
	case inEntry:
		progress := relative / maxf(c.EntryAnimation.Duration, 1e-9)
		s := evaluateEntryExit(c.EntryAnimation.Preset, progress)
		x, y, sx, sy, rot, op = emphasis.Compose(x, y, sx, sy, rot, op, s)
		maskAxis, maskFraction, maskFromCenter = WipeMaskFraction(c.EntryAnimation.Preset, progress)
	case inExit:
		progress := (relative - outStart) / maxf(c.ExitAnimation.Duration, 1e-9)
		s := evaluateEntryExit(c.ExitAnimation.Preset, 1-clamp01(progress))
		x, y, sx, sy, rot, op = emphasis.Compose(x, y, sx, sy, rot, op, s)
		maskAxis, maskFraction, maskFromCenter = WipeMaskFraction(c.ExitAnimation.Preset, 1-clamp01(progress))
	case c.Emphasis != nil:
		s := emphasis.Evaluate(*c.Emphasis, t)
		x, y, sx, sy, rot, op = emphasis.Compose(x, y, sx, sy, rot, op, s)
	}

	return AnimatedGraphicState{
		Transform: at, X: x, Y: y, ScaleX: sx, ScaleY: sy, Rotation: rot, Opacity: op,
		MaskAxis: maskAxis, MaskFraction: maskFraction, MaskFromCenter: maskFromCenter,
	}
}

func valueOr(w *AnimationWindow) float64 {
	if w == nil {
		return 0
	}
	return w.Duration
}
func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// RenderResult is renderGraphic's output: the composed placement plus
// either a path (shapes) or a raster image (SVG/sticker) to draw at it.
type RenderResult struct {
	State AnimatedGraphicState
	Path  []PathOp
	Style ShapeStyle
	Image *raster.Image
	W, H  int
}

// RenderGraphic evaluates clip at time t against a w x h canvas, producing
// either a path+style (shapes) or a cached raster (SVG/sticker).
func (e *Engine) RenderGraphic(c Clip, t float64, w, h int) (RenderResult, error) {
	state := evaluate(c, t, float64(w), float64(h))

	switch c.Kind {
	case KindShape:
		return RenderResult{State: state, Path: BuildPath(c, float64(w), float64(h)), Style: c.Style, W: w, H: h}, nil
	case KindSVG:
		img, err := e.svgs.get(c.SVGContent, c.ViewBox, e.rasterizer)
		if err != nil {
			return RenderResult{}, err
		}
		img = applyColorStyle(img, c.ColorStyle)
		return RenderResult{State: state, Image: img, W: img.W, H: img.H}, nil
	case KindSticker:
		img, err := e.loadImage(c.ImageURL)
		if err != nil {
			return RenderResult{}, err
		}
		return RenderResult{State: state, Image: img, W: img.W, H: img.H}, nil
	default:
		return RenderResult{State: state}, nil
	}
}

func (e *Engine) loadImage(url string) (*raster.Image, error) {
	if e.loader == nil {
		return nil, corerr.New(corerr.DecodeError, "no ImageLoader configured for sticker clips")
	}

	e.mu.Lock()
	if img, ok := e.images[url]; ok {
		e.mu.Unlock()
		return img, nil
	}
	e.mu.Unlock()

	img, err := e.loader.Load(url)
	if err != nil {
		return nil, corerr.Wrap(corerr.DecodeError, "loading sticker image "+url, err)
	}

	e.mu.Lock()
	e.images[url] = img
	e.mu.Unlock()
	return img, nil
}

// AnimatableProperties exposes the keyframe property vocabulary graphics
// clips share with every other clip kind, for callers building UI pickers.
func AnimatableProperties() []string {
	return []string{"position.x", "position.y", "scale.x", "scale.y", "rotation", "opacity"}
}
