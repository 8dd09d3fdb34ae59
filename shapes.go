package chartgeom

import (
	"fmt"
	"math"
	"strings"
)

var DefaultMarkerSize float64 = 4

type Marker int

const (
	MarkerNone Marker = iota
	MarkerCircle
	MarkerSquare
	MarkerDiamond
)

func ParseMarker(str string) (Marker, error) {
	switch strings.ToLower(str) {
	case "", "none":
		return MarkerNone, nil
	case "circle":
		return MarkerCircle, nil
	case "square":
		return MarkerSquare, nil
	case "diamond":
		return MarkerDiamond, nil
	default:
		return 0, fmt.Errorf("%s: unrecognized marker", str)
	}
}

// Contains reports whether p is covered by the marker of the given size
// drawn at center.
func (m Marker) Contains(center Point, size float64, p Point) bool {
	if size <= 0 {
		size = DefaultMarkerSize
	}
	half := size / 2
	switch m {
	case MarkerCircle:
		return center.Distance(p) <= half
	case MarkerSquare:
		return squareOf(center, half).Contains(p)
	case MarkerDiamond:
		return math.Abs(p.X-center.X)+math.Abs(p.Y-center.Y) <= half*math.Sqrt2
	default:
		return false
	}
}

// Polygon gives the outline of square and diamond markers.
func (m Marker) Polygon(center Point, size float64) Polygon {
	if size <= 0 {
		size = DefaultMarkerSize
	}
	half := size / 2
	switch m {
	case MarkerSquare:
		return squareOf(center, half).Polygon()
	case MarkerDiamond:
		d := half * math.Sqrt2
		return Polygon{
			center.Add(0, -d),
			center.Add(d, 0),
			center.Add(0, d),
			center.Add(-d, 0),
		}
	default:
		return nil
	}
}

func squareOf(center Point, half float64) Rect {
	return NewRect(center.X-half, center.Y-half, center.X+half, center.Y+half)
}
