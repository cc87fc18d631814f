package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"chordstage/internal/layout"
	"chordstage/internal/present"
)

type fitView struct {
	FontSize float64     `json:"font_size"`
	Fits     bool        `json:"fits"`
	Box      layout.Size `json:"box"`
	Used     layout.Size `json:"used"`
	Columns  [][]int     `json:"columns"`
}

func newFitCommand(ctx *commandContext) *cobra.Command {
	var flags displayFlags
	var width, height, minSize, maxSize, step float64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "fit <song>",
		Short: "Find the largest font size that shows a whole song on one screen",
		Long: "Fit measures the rendered sections with a monospaced font model, flows them into\n" +
			"columns and searches for the largest font size whose layout fits the screen box.",
		Args: cobra.ExactArgs(1),
		RunE: ctx.run(func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			s, err := flags.resolve(cfg)
			if err != nil {
				return err
			}
			if width <= 0 || height <= 0 {
				return fmt.Errorf("--width and --height must be positive")
			}
			song, _, err := ctx.loadSong(cmd, args[0], s.override(&flags))
			if err != nil {
				return err
			}
			sections := present.Sections(song, s.options(song))
			cells := present.SectionSizes(sections)
			box := layout.Size{Width: width, Height: height}

			pack := func(fontSize float64) (layout.Columns, bool) {
				blocks := make([]layout.Size, len(cells))
				for i, c := range cells {
					blocks[i] = layout.DefaultMonospace.Size(int(c.Width), int(c.Height), fontSize)
				}
				return layout.PackColumns(blocks, box, layout.DefaultMonospace.LineHeight*fontSize)
			}
			size, ok := layout.FitFontSize(box, minSize, maxSize, step, func(fontSize float64) layout.Size {
				cols, fits := pack(fontSize)
				if !fits {
					return layout.Size{Width: math.Inf(1), Height: math.Inf(1)}
				}
				return cols.Size
			})
			cols, _ := pack(size)

			view := fitView{FontSize: size, Fits: ok, Box: box, Used: cols.Size, Columns: cols.Columns}
			if asJSON {
				return writeJSON(cmd, view)
			}
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintf(out, "Song does not fit at the minimum size %s\n", formatSize(minSize))
			}
			fmt.Fprintf(out, "Font size: %s\n", formatSize(size))
			rows := make([][]string, 0, len(cols.Columns))
			for i, members := range cols.Columns {
				rows = append(rows, []string{strconv.Itoa(i + 1), joinInts(oneBased(members))})
			}
			fmt.Fprintln(out, renderTable([]string{"Column", "Sections"}, rows, []columnAlignment{alignRight, alignLeft}))
			return nil
		}),
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&width, "width", 1920, "Screen width in pixels")
	cmd.Flags().Float64Var(&height, "height", 1080, "Screen height in pixels")
	cmd.Flags().Float64Var(&minSize, "min", 8, "Smallest font size to try")
	cmd.Flags().Float64Var(&maxSize, "max", 96, "Largest font size to try")
	cmd.Flags().Float64Var(&step, "step", 1, "Font size increment")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func oneBased(values []int) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = v + 1
	}
	return out
}

func formatSize(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
