package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/midbel/chartgeom"
	"github.com/midbel/chartgeom/sankey"
	"github.com/spf13/cobra"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

var (
	verbose bool
	pretty  bool
	width   float64 = defaultWidth
	height  float64 = defaultHeight
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "chartgeom",
		Short:         "Compute chart scales, ticks and series geometry",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "pretty-print JSON output")
	rootCmd.PersistentFlags().Float64Var(&width, "width", defaultWidth, "chart width")
	rootCmd.PersistentFlags().Float64Var(&height, "height", defaultHeight, "chart height")

	rootCmd.AddCommand(layoutCommand(), ticksCommand(), sankeyCommand())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func layoutCommand() *cobra.Command {
	var (
		kind     string
		xcol     int
		ycol     int
		distance float64
		margin   float64
		category string
		timefmt  string
		interp   string
		marker   string
		at       string
		header   bool
		inverted bool
	)
	cmd := &cobra.Command{
		Use:   "layout [file.csv...]",
		Short: "Lay out one series per CSV file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := chartgeom.ParseKind(kind)
			if err != nil {
				return err
			}
			ip, err := chartgeom.ParseInterpolation(interp)
			if err != nil {
				return err
			}
			mk, err := chartgeom.ParseMarker(marker)
			if err != nil {
				return err
			}
			axis, err := parseScaleType(category)
			if err != nil {
				return err
			}
			rr, err := newRecordReader(axis, xcol, ycol, timefmt)
			if err != nil {
				return err
			}
			rows, err := readFiles(cmd.Context(), args, header)
			if err != nil {
				return err
			}

			ch := chartgeom.NewChart[record](width, height)
			ch.Logger = slog.Default()
			ch.Margin = margin
			ch.CategoryAxis.Type = axis
			ch.CategoryAxis.TickDistance = distance
			ch.ValueAxis.TickDistance = distance
			ch.ValueAxis.Inverted = inverted
			if axis == chartgeom.TypeTime {
				ch.CategoryAxis.Round = true
				ch.CategoryAxis.Format = timefmt
			}
			for i := range args {
				items, err := rr.Records(rows[i])
				if err != nil {
					return fmt.Errorf("%s: %w", args[i], err)
				}
				s := chartgeom.Serie[record]{
					Title:         getIdent(args[i]),
					Kind:          k,
					Items:         items,
					Category:      getCategory,
					Value:         getValue,
					Interpolation: ip,
					Marker:        mk,
				}
				ch.Append(s)
			}
			ch.CategoryAxis.Categories = rr.Categories()

			lay, err := ch.Layout()
			if err != nil {
				return err
			}
			out := layoutOf(lay)
			if at != "" {
				pt, err := parsePoint(at)
				if err != nil {
					return err
				}
				if serie, item, ok := lay.DataAt(pt.X, pt.Y); ok {
					tip, _ := lay.Tooltip(serie, item)
					out.Hit = &hitOutput{
						Serie:   lay.Series[serie].Title,
						Item:    item,
						Tooltip: point(tip),
					}
				}
			}
			return writeJSON(cmd.OutOrStdout(), out, pretty)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "line", "series kind")
	cmd.Flags().IntVar(&xcol, "xcol", 0, "index of category column")
	cmd.Flags().IntVar(&ycol, "ycol", 1, "index of value column")
	cmd.Flags().Float64Var(&distance, "distance", chartgeom.DefaultTickDistance, "minimum distance between ticks")
	cmd.Flags().Float64Var(&margin, "margin", chartgeom.DefaultMargin, "space between grouped bars")
	cmd.Flags().StringVar(&category, "category", "number", "category axis type: number, category, date")
	cmd.Flags().StringVar(&timefmt, "time-format", chartgeom.DefaultTimeFormat, "format of dates")
	cmd.Flags().StringVar(&interp, "interpolation", "linear", "line interpolation")
	cmd.Flags().StringVar(&marker, "marker", "none", "marker of line and scatter series")
	cmd.Flags().StringVar(&at, "at", "", "look for the item under x,y")
	cmd.Flags().BoolVar(&header, "header", true, "skip the first row of files")
	cmd.Flags().BoolVar(&inverted, "inverted", false, "invert the value axis")
	return cmd
}

func ticksCommand() *cobra.Command {
	var (
		lo       float64
		hi       float64
		size     float64
		distance float64
		round    bool
		step     float64
		minor    int
	)
	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "Compute the ticks of a number scale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := chartgeom.NumberScaler(chartgeom.NewRange(lo, hi), chartgeom.NewRange(0, size))
			s.Round = round
			if cmd.Flags().Changed("step") {
				s = s.WithStep(step)
			}
			res, err := s.Ticks(distance)
			if err != nil {
				return err
			}
			out := ticksOutput{
				Start:  number(res.Start),
				End:    number(res.End),
				Step:   number(res.Step),
				Values: numbers(res.Values()),
			}
			if minor > 0 {
				s.Input = chartgeom.NewRange(res.Start, res.End)
				out.Minor = numbers(s.MinorTicks(minor))
			}
			return writeJSON(cmd.OutOrStdout(), out, pretty)
		},
	}
	cmd.Flags().Float64Var(&lo, "min", 0, "domain start")
	cmd.Flags().Float64Var(&hi, "max", 1, "domain end")
	cmd.Flags().Float64Var(&size, "size", defaultWidth, "output size in pixels")
	cmd.Flags().Float64Var(&distance, "distance", chartgeom.DefaultTickDistance, "minimum distance between ticks")
	cmd.Flags().BoolVar(&round, "round", false, "use nice bounds")
	cmd.Flags().Float64Var(&step, "step", 0, "force the tick step")
	cmd.Flags().IntVar(&minor, "minor", 0, "maximum number of minor ticks")
	return cmd
}

func sankeyCommand() *cobra.Command {
	var (
		opts   = sankey.DefaultOptions()
		header bool
	)
	cmd := &cobra.Command{
		Use:   "sankey file.csv",
		Short: "Lay out a flow diagram from source,target,value rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := readRows(args[0], header)
			if err != nil {
				return err
			}
			var (
				nodes []string
				links []sankey.Link
				seen  = make(map[string]struct{})
			)
			for i, row := range rows {
				if len(row) < 3 {
					return fmt.Errorf("row %d: source, target and value expected", i+1)
				}
				val, err := strconv.ParseFloat(row[2], 64)
				if err != nil {
					return fmt.Errorf("row %d: %w", i+1, err)
				}
				for _, id := range row[:2] {
					if _, ok := seen[id]; !ok {
						seen[id] = struct{}{}
						nodes = append(nodes, id)
					}
				}
				links = append(links, sankey.Link{
					Source: row[0],
					Target: row[1],
					Value:  val,
				})
			}
			area := chartgeom.NewRect(0, 0, width, height)
			g, err := sankey.Layout(nodes, links, area, opts)
			if err != nil {
				return err
			}
			slog.Debug("sankey computed", "nodes", len(g.Nodes), "links", len(g.Links), "layers", g.Layers)
			return writeJSON(cmd.OutOrStdout(), sankeyOf(g), pretty)
		},
	}
	cmd.Flags().Float64Var(&opts.NodeWidth, "node-width", sankey.DefaultNodeWidth, "width of nodes")
	cmd.Flags().Float64Var(&opts.NodePadding, "node-padding", sankey.DefaultNodePadding, "space between nodes of a layer")
	cmd.Flags().BoolVar(&header, "header", true, "skip the first row of the file")
	return cmd
}
