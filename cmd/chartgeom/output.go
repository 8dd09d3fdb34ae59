package main

import (
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/midbel/chartgeom"
	"github.com/midbel/chartgeom/sankey"
)

// number is encoded as null when it is not finite.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

type tickOutput struct {
	Value  number `json:"value"`
	Pos    number `json:"pos"`
	Label  string `json:"label"`
	Anchor string `json:"anchor"`
}

type shapeOutput struct {
	Item   int      `json:"item"`
	Value  number   `json:"value"`
	Point  []number `json:"point"`
	Anchor []number `json:"anchor"`
	Rect   []number `json:"rect,omitempty"`
	Fill   string   `json:"fill,omitempty"`
}

type labelOutput struct {
	Item   int      `json:"item"`
	Text   string   `json:"text"`
	Pos    []number `json:"pos"`
	Anchor string   `json:"anchor"`
}

type serieOutput struct {
	Title  string        `json:"title"`
	Kind   string        `json:"kind"`
	Color  string        `json:"color"`
	Path   string        `json:"path,omitempty"`
	Trend  string        `json:"trend,omitempty"`
	Shapes []shapeOutput `json:"shapes"`
	Labels []labelOutput `json:"labels"`
	Mean   number        `json:"mean"`
	Median number        `json:"median"`
	Mode   number        `json:"mode"`
	Slope  number        `json:"slope"`
	Offset number        `json:"intercept"`
}

type hitOutput struct {
	Serie   string   `json:"serie"`
	Item    int      `json:"item"`
	Tooltip []number `json:"tooltip"`
}

type layoutOutput struct {
	Band          number        `json:"band"`
	CategoryTicks []tickOutput  `json:"category_ticks"`
	ValueTicks    []tickOutput  `json:"value_ticks"`
	Series        []serieOutput `json:"series"`
	Hit           *hitOutput    `json:"hit,omitempty"`
}

type ticksOutput struct {
	Start  number   `json:"start"`
	End    number   `json:"end"`
	Step   number   `json:"step"`
	Values []number `json:"values"`
	Minor  []number `json:"minor,omitempty"`
}

type nodeOutput struct {
	ID     string `json:"id"`
	Layer  int    `json:"layer"`
	X      number `json:"x"`
	Y      number `json:"y"`
	Width  number `json:"width"`
	Height number `json:"height"`
	Value  number `json:"value"`
}

type linkOutput struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Value  number `json:"value"`
	Width  number `json:"width"`
	Path   string `json:"path"`
}

type sankeyOutput struct {
	Nodes []nodeOutput `json:"nodes"`
	Links []linkOutput `json:"links"`
}

func point(p chartgeom.Point) []number {
	return []number{number(p.X), number(p.Y)}
}

func numbers(vs []float64) []number {
	list := make([]number, len(vs))
	for i := range vs {
		list[i] = number(vs[i])
	}
	return list
}

func ticksOf(list []chartgeom.Tick) []tickOutput {
	out := make([]tickOutput, 0, len(list))
	for _, t := range list {
		out = append(out, tickOutput{
			Value:  number(t.Value),
			Pos:    number(t.Pos),
			Label:  t.Label,
			Anchor: string(t.Anchor),
		})
	}
	return out
}

func layoutOf(lay *chartgeom.Layout[record]) layoutOutput {
	out := layoutOutput{
		Band:          number(lay.Band),
		CategoryTicks: ticksOf(lay.CategoryTicks),
		ValueTicks:    ticksOf(lay.ValueTicks),
	}
	for i, sl := range lay.Series {
		a, b := sl.Trend()
		so := serieOutput{
			Title:  sl.Title,
			Kind:   sl.Kind.String(),
			Color:  sl.Style.Stroke,
			Path:   sl.Path().String(),
			Trend:  lay.TrendLine(i).String(),
			Mean:   number(sl.Mean()),
			Median: number(sl.Median()),
			Mode:   number(sl.Mode()),
			Slope:  number(a),
			Offset: number(b),
		}
		for _, s := range sl.Shapes() {
			sh := shapeOutput{
				Item:   s.Item,
				Value:  number(s.Value),
				Point:  point(s.Point),
				Anchor: point(s.Anchor),
				Fill:   s.Fill,
			}
			if sl.Kind.Banded() {
				sh.Rect = []number{
					number(s.Rect.Min.X),
					number(s.Rect.Min.Y),
					number(s.Rect.Width()),
					number(s.Rect.Height()),
				}
			}
			so.Shapes = append(so.Shapes, sh)
		}
		for _, lbl := range lay.DataLabels(i, 0, 0) {
			so.Labels = append(so.Labels, labelOutput{
				Item:   lbl.Item,
				Text:   lbl.Text,
				Pos:    point(lbl.Pos),
				Anchor: string(lbl.Anchor),
			})
		}
		out.Series = append(out.Series, so)
	}
	return out
}

func sankeyOf(g *sankey.Graph) sankeyOutput {
	var out sankeyOutput
	for _, n := range g.Nodes {
		out.Nodes = append(out.Nodes, nodeOutput{
			ID:     n.ID,
			Layer:  n.Layer,
			X:      number(n.X),
			Y:      number(n.Y),
			Width:  number(n.Width),
			Height: number(n.Height),
			Value:  number(n.Value),
		})
	}
	for _, k := range g.Links {
		out.Links = append(out.Links, linkOutput{
			Source: k.Source.ID,
			Target: k.Target.ID,
			Value:  number(k.Value),
			Width:  number(k.Width),
			Path:   k.Path.String(),
		})
	}
	return out
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
