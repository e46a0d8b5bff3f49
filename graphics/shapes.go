package graphics

import "math"

// PathOp is one path-construction instruction, centred on the shape's own
// origin (anchor composition happens upstream in the transform matrix).
type PathOp struct {
	Kind string // "moveTo","lineTo","quadTo","arc","closePath"
	X, Y, CX, CY, Radius, StartAngle, EndAngle float64
}

// BuildPath returns the centred path for a shape clip's ShapeType, given
// its pixel width/height (already resolved from normalized style fields by
// the caller).
func BuildPath(c Clip, w, h float64) []PathOp {
	switch c.ShapeType {
	case ShapeRectangle:
		return rectanglePath(w, h, c.Style.CornerRadius)
	case ShapeCircle:
		r := math.Min(w, h) / 2
		return circlePath(r)
	case ShapeEllipse:
		return ellipsePath(w/2, h/2)
	case ShapeTriangle:
		return trianglePath(w, h)
	case ShapeArrow:
		return arrowPath(w, h)
	case ShapeLine:
		return []PathOp{{Kind: "moveTo", X: -w / 2, Y: 0}, {Kind: "lineTo", X: w / 2, Y: 0}}
	case ShapeStar:
		return starPath(math.Min(w, h)/2, math.Min(w, h)/4, 5)
	case ShapePolygon:
		return polygonPath(c.Points, w, h)
	default:
		return nil
	}
}

func rectanglePath(w, h, radius float64) []PathOp {
	x0, y0 := -w/2, -h/2
	if radius <= 0 {
		return []PathOp{
			{Kind: "moveTo", X: x0, Y: y0},
			{Kind: "lineTo", X: x0 + w, Y: y0},
			{Kind: "lineTo", X: x0 + w, Y: y0 + h},
			{Kind: "lineTo", X: x0, Y: y0 + h},
			{Kind: "closePath"},
		}
	}
	r := radius
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	return []PathOp{
		{Kind: "moveTo", X: x0 + r, Y: y0},
		{Kind: "lineTo", X: x0 + w - r, Y: y0},
		{Kind: "quadTo", CX: x0 + w, CY: y0, X: x0 + w, Y: y0 + r},
		{Kind: "lineTo", X: x0 + w, Y: y0 + h - r},
		{Kind: "quadTo", CX: x0 + w, CY: y0 + h, X: x0 + w - r, Y: y0 + h},
		{Kind: "lineTo", X: x0 + r, Y: y0 + h},
		{Kind: "quadTo", CX: x0, CY: y0 + h, X: x0, Y: y0 + h - r},
		{Kind: "lineTo", X: x0, Y: y0 + r},
		{Kind: "quadTo", CX: x0, CY: y0, X: x0 + r, Y: y0},
		{Kind: "closePath"},
	}
}

func circlePath(r float64) []PathOp {
	return []PathOp{{Kind: "arc", Radius: r, StartAngle: 0, EndAngle: 2 * math.Pi}}
}

func ellipsePath(rx, ry float64) []PathOp {
	const steps = 32
	ops := make([]PathOp, 0, steps+1)
	for i := 0; i <= steps; i++ {
		theta := 2 * math.Pi * float64(i) / steps
		x, y := rx*math.Cos(theta), ry*math.Sin(theta)
		if i == 0 {
			ops = append(ops, PathOp{Kind: "moveTo", X: x, Y: y})
		} else {
			ops = append(ops, PathOp{Kind: "lineTo", X: x, Y: y})
		}
	}
	ops = append(ops, PathOp{Kind: "closePath"})
	return ops
}

func trianglePath(w, h float64) []PathOp {
	return []PathOp{
		{Kind: "moveTo", X: 0, Y: -h / 2},
		{Kind: "lineTo", X: w / 2, Y: h / 2},
		{Kind: "lineTo", X: -w / 2, Y: h / 2},
		{Kind: "closePath"},
	}
}

// arrowPath builds the 7-point polygon from head/tail width/length,
// defaulting to a 40/60 head/tail split of the bounding box's width.
func arrowPath(w, h float64) []PathOp {
	headLen := w * 0.4
	shaftHalf := h * 0.25
	headHalf := h * 0.5
	x0 := -w / 2
	xShaftEnd := x0 + (w - headLen)
	xTip := w / 2
	return []PathOp{
		{Kind: "moveTo", X: x0, Y: -shaftHalf},
		{Kind: "lineTo", X: xShaftEnd, Y: -shaftHalf},
		{Kind: "lineTo", X: xShaftEnd, Y: -headHalf},
		{Kind: "lineTo", X: xTip, Y: 0},
		{Kind: "lineTo", X: xShaftEnd, Y: headHalf},
		{Kind: "lineTo", X: xShaftEnd, Y: shaftHalf},
		{Kind: "lineTo", X: x0, Y: shaftHalf},
		{Kind: "closePath"},
	}
}

func starPath(outerR, innerR float64, points int) []PathOp {
	if points <= 0 {
		points = 5
	}
	ops := make([]PathOp, 0, points*2+1)
	for i := 0; i < points*2; i++ {
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		theta := math.Pi*float64(i)/float64(points) - math.Pi/2
		x, y := r*math.Cos(theta), r*math.Sin(theta)
		if i == 0 {
			ops = append(ops, PathOp{Kind: "moveTo", X: x, Y: y})
		} else {
			ops = append(ops, PathOp{Kind: "lineTo", X: x, Y: y})
		}
	}
	ops = append(ops, PathOp{Kind: "closePath"})
	return ops
}

func polygonPath(points []Point, w, h float64) []PathOp {
	if len(points) == 0 {
		return nil
	}
	ops := make([]PathOp, 0, len(points)+1)
	for i, p := range points {
		x, y := p.X*w-w/2, p.Y*h-h/2
		if i == 0 {
			ops = append(ops, PathOp{Kind: "moveTo", X: x, Y: y})
		} else {
			ops = append(ops, PathOp{Kind: "lineTo", X: x, Y: y})
		}
	}
	ops = append(ops, PathOp{Kind: "closePath"})
	return ops
}

// GradientEndpoints converts a linear gradient's angle into start/end
// points spanning the shape's bounding box, centred at the origin.
func GradientEndpoints(angleDeg, w, h float64) (x1, y1, x2, y2 float64) {
	rad := angleDeg * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)
	half := math.Hypot(w, h) / 2
	return -dx * half, -dy * half, dx * half, dy * half
}
