package chartgeom

import (
	"math"
)

type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// LabelGap is the distance kept between a polar anchor and its label.
const LabelGap = 16.0

type Label struct {
	Item   int
	Text   string
	Pos    Point
	Anchor Anchor
}

// PositionLabel computes where a label attached to base has to be drawn.
//
// In polar mode the label is pushed away from origin (or from base itself
// when origin is nil): offsetX is added to the radius and offsetY is a
// rotation in degrees.
func PositionLabel(sys CoordinateSystem, base Point, origin *Point, offsetX, offsetY float64) (Point, Anchor) {
	if sys != Polar {
		return base.Add(offsetX, offsetY), AnchorMiddle
	}
	center := base
	if origin != nil {
		center = *origin
	}
	var (
		dx     = base.X - center.X
		dy     = base.Y - center.Y
		phi    = math.Atan2(dy, dx) + offsetY*deg2rad
		radius = math.Hypot(dx, dy) + offsetX + LabelGap
	)
	phi = normalizeAngle(phi)

	anchor := AnchorEnd
	if phi >= -math.Pi/2 && phi <= math.Pi/2 {
		anchor = AnchorStart
	}
	return PolarPoint(center, radius, phi), anchor
}

// normalizeAngle brings phi back in the ]-π, π] interval.
func normalizeAngle(phi float64) float64 {
	phi = math.Mod(phi, 2*math.Pi)
	switch {
	case phi > math.Pi:
		phi -= 2 * math.Pi
	case phi <= -math.Pi:
		phi += 2 * math.Pi
	}
	return phi
}
