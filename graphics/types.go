// Package graphics implements the shape/SVG/sticker renderer: path
// construction for the closed set of shape kinds, SVG rasterisation with a
// content-keyed cache, and the entry/exit/emphasis animation pipeline
// shared by every graphic clip kind.
package graphics

import (
	"videocore/emphasis"
	"videocore/keyframe"
	"videocore/transform"
)

// Kind discriminates the three clip payload families §3 calls out:
// ShapeClip, SVGClip, StickerClip.
type Kind string

const (
	KindShape   Kind = "shape"
	KindSVG     Kind = "svg"
	KindSticker Kind = "sticker"
)

// ShapeType is the closed set of shape kinds §4.F's path draw stage covers.
type ShapeType string

const (
	ShapeRectangle ShapeType = "rectangle"
	ShapeCircle    ShapeType = "circle"
	ShapeEllipse   ShapeType = "ellipse"
	ShapeTriangle  ShapeType = "triangle"
	ShapeArrow     ShapeType = "arrow"
	ShapeLine      ShapeType = "line"
	ShapeStar      ShapeType = "star"
	ShapePolygon   ShapeType = "polygon"
)

// FillMode distinguishes a solid fill from the two gradient kinds.
type FillMode string

const (
	FillSolid   FillMode = "solid"
	FillLinear  FillMode = "linear"
	FillRadial  FillMode = "radial"
)

// Fill describes how a shape's interior is painted.
type Fill struct {
	Mode      FillMode
	Color     string
	GradientStops []GradientStop
	AngleDeg  float64 // linear gradient direction
}

// GradientStop is one color/offset pair in a gradient.
type GradientStop struct {
	Offset float64
	Color  string
}

// Stroke describes the outline paint applied after fill.
type Stroke struct {
	Color     string
	Width     float64
	DashArray []float64
	Cap       string // "butt","round","square"
	Join      string // "miter","round","bevel"
	Offset    float64
}

// Shadow is a separate draw stage rendered before the shape itself.
type Shadow struct {
	Color   string
	Blur    float64
	OffsetX float64
	OffsetY float64
}

// ShapeStyle bundles a shape's paint.
type ShapeStyle struct {
	Fill         *Fill
	Stroke       *Stroke
	Shadow       *Shadow
	CornerRadius float64 // rectangle only
}

// ColorMode selects how a rasterised SVG is recoloured.
type ColorMode string

const (
	ColorModeNone    ColorMode = ""
	ColorModeTint    ColorMode = "tint"
	ColorModeReplace ColorMode = "replace"
)

// SVGColorStyle controls SVG recolouring via source-in composition.
type SVGColorStyle struct {
	ColorMode   ColorMode
	TintColor   string
	TintOpacity float64
}

// EntryExit names the closed set of entry/exit animation presets.
type EntryExit string

const (
	EEFade        EntryExit = "fade"
	EESlideLeft   EntryExit = "slide-left"
	EESlideRight  EntryExit = "slide-right"
	EESlideUp     EntryExit = "slide-up"
	EESlideDown   EntryExit = "slide-down"
	EEScale       EntryExit = "scale"
	EERotate      EntryExit = "rotate"
	EEBounce      EntryExit = "bounce"
	EEPop         EntryExit = "pop"
	EEDraw        EntryExit = "draw"
	EEWipeLeft    EntryExit = "wipe-left"
	EEWipeRight   EntryExit = "wipe-right"
	EEWipeUp      EntryExit = "wipe-up"
	EEWipeDown    EntryExit = "wipe-down"
	EERevealCenter EntryExit = "reveal-center"
	EERevealEdges EntryExit = "reveal-edges"
	EEElastic     EntryExit = "elastic"
	EEFlipH       EntryExit = "flip-h"
	EEFlipV       EntryExit = "flip-v"
)

// AnimationWindow configures a fixed-length entry or exit animation at the
// start/end of a clip's visible duration.
type AnimationWindow struct {
	Preset   EntryExit
	Duration float64
}

// Clip is the subset of a timeline graphic clip (shape/SVG/sticker) the
// engine needs, declared locally so graphics has no dependency on timeline.
type Clip struct {
	Kind Kind

	// Shape payload.
	ShapeType ShapeType
	Points    []Point // normalized polygon points, ShapePolygon only
	Style     ShapeStyle

	// SVG payload.
	SVGContent string
	ViewBox    [4]float64 // minX,minY,width,height
	ColorStyle SVGColorStyle

	// Sticker payload.
	ImageURL string

	Transform    transform.Transform
	Keyframes    []keyframe.Keyframe
	BlendMode    string
	BlendOpacity float64

	EntryAnimation *AnimationWindow
	ExitAnimation  *AnimationWindow
	Emphasis       *emphasis.Spec

	StartTime float64
	Duration  float64
}

// Point is a normalized (0..1) polygon vertex.
type Point struct{ X, Y float64 }
