// Command lzwin-sweep compresses one input at a range of window sizes,
// prints a size table, and renders the results as an SVG scatter chart.
// Useful for picking a window size for a given kind of data.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/PaulWendt96/lzwin"
)

func main() {
	out := flag.String("out", "sweep.svg", "output SVG path")
	lookahead := flag.Int("lookahead", 20, "lookahead buffer size")
	minWindow := flag.Int("min", 16, "smallest window size to try")
	maxWindow := flag.Int("max", lzwin.MaxWindowSize, "largest window size to try")
	step := flag.Int("step", 16, "window size increment")
	flag.Parse()

	if flag.NArg() != 1 || *step < 1 || *minWindow < 1 || *maxWindow < *minWindow {
		fmt.Fprintln(os.Stderr, "usage: lzwin-sweep [-out chart.svg] [-min N] [-max N] [-step N] [-lookahead N] <input>")
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fatal(err)
	}
	if len(data) == 0 {
		fatal(fmt.Errorf("%s is empty", flag.Arg(0)))
	}

	sizes := make(map[int]int)
	for w := *minWindow; w <= *maxWindow; w += *step {
		cfg := &lzwin.Config{WindowSize: w, LookaheadSize: *lookahead}
		enc, err := lzwin.CompressBytes(data, cfg)
		if err != nil {
			fatal(err)
		}
		sizes[w] = len(enc)
		fmt.Printf("window %3d: %d -> %d bytes (%.1f%%)\n",
			w, len(data), len(enc), 100*float64(len(enc))/float64(len(data)))
	}

	if err := scatterIntMap(*out, sizes); err != nil {
		fatal(err)
	}
	fmt.Println("chart written to", *out)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "lzwin-sweep:", err)
	os.Exit(1)
}

// scatterIntMap renders a scatter plot of window size against compressed
// size.
func scatterIntMap(path string, results map[int]int) error {
	keys := make([]int, 0, len(results))
	for k := range results {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	xvals := make([]float64, 0, len(keys))
	yvals := make([]float64, 0, len(keys))
	for _, k := range keys {
		xvals = append(xvals, float64(k))
		yvals = append(yvals, float64(results[k]))
	}

	graph := chart.Chart{
		XAxis: chart.XAxis{Name: "window size"},
		YAxis: chart.YAxis{Name: "compressed bytes"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					DotWidth: 3,
				},
				XValues: xvals,
				YValues: yvals,
			},
		},
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()
	return graph.Render(chart.SVG, fh)
}
