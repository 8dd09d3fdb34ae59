package chartgeom

// Style is carried along with the geometry for the renderer. The engine
// only fills in missing colors.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
}

func (s Style) withColor(color string) Style {
	if s.Fill == "" {
		s.Fill = color
	}
	if s.Stroke == "" {
		s.Stroke = color
	}
	if s.StrokeWidth <= 0 {
		s.StrokeWidth = 1
	}
	if s.Opacity <= 0 {
		s.Opacity = 1
	}
	return s
}
