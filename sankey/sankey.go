// Package sankey lays out flow diagrams: nodes are placed in layers from
// the sources to the sinks and links are drawn between them with a width
// proportional to their value.
package sankey

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/midbel/chartgeom"
)

var (
	ErrUnknownNode = errors.New("link refers to an unknown node")
	ErrCycle       = errors.New("links form a cycle")
)

const (
	DefaultNodeWidth   = 24.0
	DefaultNodePadding = 8.0
)

type Options struct {
	NodeWidth   float64
	NodePadding float64
}

func DefaultOptions() Options {
	return Options{
		NodeWidth:   DefaultNodeWidth,
		NodePadding: DefaultNodePadding,
	}
}

// Link is a flow given by the user between two nodes identified by their
// ID.
type Link struct {
	Source string
	Target string
	Value  float64
}

type ComputedSankeyNode struct {
	ID     string
	X      float64
	Y      float64
	Width  float64
	Height float64
	Layer  int
	Value  float64

	in  []*ComputedSankeyLink
	out []*ComputedSankeyLink
}

func (n *ComputedSankeyNode) Rect() chartgeom.Rect {
	return chartgeom.NewRect(n.X, n.Y, n.X+n.Width, n.Y+n.Height)
}

func (n *ComputedSankeyNode) Incoming() []*ComputedSankeyLink {
	return n.in
}

func (n *ComputedSankeyNode) Outgoing() []*ComputedSankeyLink {
	return n.out
}

// ComputedSankeyLink does not own its nodes. Y0 and Y1 are the middle of
// the link where it leaves its source and reaches its target.
type ComputedSankeyLink struct {
	Source *ComputedSankeyNode
	Target *ComputedSankeyNode
	Value  float64
	Width  float64
	Y0     float64
	Y1     float64
	Path   chartgeom.Path
}

type Graph struct {
	Nodes  []*ComputedSankeyNode
	Links  []*ComputedSankeyLink
	Layers int
}

// NodeAt gives the node under (x, y).
func (g *Graph) NodeAt(x, y float64) (*ComputedSankeyNode, bool) {
	pt := chartgeom.NewPoint(x, y)
	for _, n := range g.Nodes {
		if n.Rect().Contains(pt) {
			return n, true
		}
	}
	return nil, false
}

// Layout places the given nodes and links inside area. Every endpoint of
// links has to be in nodes.
func Layout(nodes []string, links []Link, area chartgeom.Rect, opts Options) (*Graph, error) {
	opts = opts.normalize()

	var (
		g     Graph
		index = make(map[string]*ComputedSankeyNode)
	)
	for _, id := range nodes {
		if _, ok := index[id]; ok {
			continue
		}
		n := ComputedSankeyNode{
			ID:    id,
			Width: opts.NodeWidth,
		}
		index[id] = &n
		g.Nodes = append(g.Nodes, &n)
	}
	for _, k := range links {
		src, ok := index[k.Source]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownNode, k.Source)
		}
		dst, ok := index[k.Target]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownNode, k.Target)
		}
		if src == dst {
			return nil, fmt.Errorf("%w: %s links to itself", ErrCycle, src.ID)
		}
		lk := ComputedSankeyLink{
			Source: src,
			Target: dst,
			Value:  flowValue(k.Value),
		}
		src.out = append(src.out, &lk)
		dst.in = append(dst.in, &lk)
		g.Links = append(g.Links, &lk)
	}
	if len(g.Nodes) == 0 {
		return &g, nil
	}
	if err := g.computeLayers(); err != nil {
		return nil, err
	}
	g.computeValues()
	g.placeNodes(area, opts)
	g.placeLinks()
	return &g, nil
}

func (o Options) normalize() Options {
	if o.NodeWidth <= 0 || math.IsNaN(o.NodeWidth) {
		o.NodeWidth = DefaultNodeWidth
	}
	if o.NodePadding < 0 || math.IsNaN(o.NodePadding) {
		o.NodePadding = 0
	}
	return o
}

// computeLayers assigns to every node the length of the longest path
// from a source. Sinks are moved to the last layer.
func (g *Graph) computeLayers() error {
	var (
		degree = make(map[*ComputedSankeyNode]int)
		queue  []*ComputedSankeyNode
		done   int
	)
	for _, n := range g.Nodes {
		degree[n] = len(n.in)
		if degree[n] == 0 {
			queue = append(queue, n)
		}
	}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		done++
		for _, k := range n.out {
			if k.Target.Layer < n.Layer+1 {
				k.Target.Layer = n.Layer + 1
			}
			degree[k.Target]--
			if degree[k.Target] == 0 {
				queue = append(queue, k.Target)
			}
		}
	}
	if done < len(g.Nodes) {
		return ErrCycle
	}
	for _, n := range g.Nodes {
		if n.Layer+1 > g.Layers {
			g.Layers = n.Layer + 1
		}
	}
	for _, n := range g.Nodes {
		if len(n.out) == 0 && len(n.in) > 0 {
			n.Layer = g.Layers - 1
		}
	}
	return nil
}

func (g *Graph) computeValues() {
	for _, n := range g.Nodes {
		var in, out float64
		for _, k := range n.in {
			in += k.Value
		}
		for _, k := range n.out {
			out += k.Value
		}
		n.Value = math.Max(in, out)
	}
}

func (g *Graph) layers() [][]*ComputedSankeyNode {
	list := make([][]*ComputedSankeyNode, g.Layers)
	for _, n := range g.Nodes {
		list[n.Layer] = append(list[n.Layer], n)
	}
	return list
}

// placeNodes uses the same value to pixel factor for every layer: the
// one of the most crowded layer.
func (g *Graph) placeNodes(area chartgeom.Rect, opts Options) {
	var (
		layers = g.layers()
		ky     = math.Inf(1)
		step   float64
	)
	for _, ns := range layers {
		var sum float64
		for _, n := range ns {
			sum += n.Value
		}
		if sum <= 0 {
			continue
		}
		space := area.Height() - float64(len(ns)-1)*opts.NodePadding
		ky = math.Min(ky, math.Max(0, space)/sum)
	}
	if math.IsInf(ky, 0) {
		ky = 0
	}
	if len(layers) > 1 {
		step = (area.Width() - opts.NodeWidth) / float64(len(layers)-1)
	}
	for i, ns := range layers {
		var total float64
		for _, n := range ns {
			n.Height = n.Value * ky
			total += n.Height
		}
		total += float64(len(ns)-1) * opts.NodePadding

		y := area.Min.Y + math.Max(0, area.Height()-total)/2
		for _, n := range ns {
			n.X = area.Min.X + float64(i)*step
			n.Y = y
			y += n.Height + opts.NodePadding
		}
	}
	for _, k := range g.Links {
		k.Width = k.Value * ky
	}
}

func (g *Graph) placeLinks() {
	for _, n := range g.Nodes {
		sort.SliceStable(n.out, func(i, j int) bool {
			return n.out[i].Target.Y < n.out[j].Target.Y
		})
		sort.SliceStable(n.in, func(i, j int) bool {
			return n.in[i].Source.Y < n.in[j].Source.Y
		})
		y := n.Y
		for _, k := range n.out {
			k.Y0 = y + k.Width/2
			y += k.Width
		}
		y = n.Y
		for _, k := range n.in {
			k.Y1 = y + k.Width/2
			y += k.Width
		}
	}
	for _, k := range g.Links {
		var (
			x0 = k.Source.X + k.Source.Width
			x1 = k.Target.X
			xi = x0 + (x1-x0)/2
		)
		k.Path = k.Path[:0]
		k.Path.MoveTo(chartgeom.NewPoint(x0, k.Y0))
		k.Path.CubicTo(chartgeom.NewPoint(xi, k.Y0), chartgeom.NewPoint(xi, k.Y1), chartgeom.NewPoint(x1, k.Y1))
	}
}

func flowValue(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
