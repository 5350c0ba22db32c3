package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-swipe/internal/gesture"
)

var flagVerbose bool

var classifyCmd = &cobra.Command{
	Use:   "classify <x1> <y1> <x2> <y2>",
	Short: "Classify a start/end coordinate pair",
	Long: `Print the swipe direction for a gesture that starts at (x1, y1)
and ends at (x2, y2). Coordinates grow right and down, as on screen.
Flags go before the coordinates. When the first coordinate is negative,
put -- in front of the coordinates so it is not read as a flag.

Examples:
  swipe classify 100 50 10 55     # left
  swipe classify 5 5 5 5          # up (taps count as up)
  swipe classify -v 0 0 20 20     # down, with deltas
  swipe classify 0 0 -20 5        # left
  swipe classify -- -5 0 10 2     # right, first coordinate negative`,
	Args: cobra.ExactArgs(4),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Also print the deltas")
	// Stop flag parsing at the first coordinate so later negatives are values.
	classifyCmd.Flags().SetInterspersed(false)
}

func runClassify(cmd *cobra.Command, args []string) error {
	coords := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("coordinate %d: %q is not a number", i+1, a)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("coordinate %d: %q is not a finite number", i+1, a)
		}
		coords[i] = v
	}

	start := gesture.TouchSample{X: coords[0], Y: coords[1]}
	end := gesture.TouchSample{X: coords[2], Y: coords[3]}
	dir := gesture.Classify(start, end)

	out := cmd.OutOrStdout()
	if flagVerbose {
		dx, dy := gesture.Delta(start, end)
		fmt.Fprintf(out, "dx=%g dy=%g\n", dx, dy)
	}
	fmt.Fprintln(out, dir)
	return nil
}
