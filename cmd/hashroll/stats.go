package main

import (
	"fmt"

	"github.com/Redundancy/hashroll/histogram"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

const statsUsage = "hashroll stats [options] [<file>]"

var reportedPercentiles = []float64{50, 90, 99}

func init() {
	app.Commands = append(
		app.Commands,
		&cli.Command{
			Name:      "stats",
			Aliases:   []string{"s"},
			Usage:     statsUsage,
			ArgsUsage: "[<file>]",
			Description: `Summarize the chunk length distribution of a file.

Prints the number of chunks, their total size and the minimum, median, 90th and 99th percentile
and maximum chunk lengths. <file> defaults to standard input.`,
			Action: Stats,
			Flags:  chunkerFlags(),
		},
	)
}

// Stats prints the distribution of chunk lengths
func Stats(c *cli.Context) error {
	if err := checkArgs(c, statsUsage, 0, 1); err != nil {
		return err
	}

	filename := c.Args().Get(0)
	if filename == "" {
		filename = "-"
	}

	r, err := openInput(filename)
	if err != nil {
		return err
	}
	defer r.Close()

	h := histogram.New()
	err = eachChunk(c, r, func(_ uint64, chunk []byte) {
		h.Add(len(chunk))
	})
	if err != nil {
		return err
	}

	return printStats(c, h)
}

func printStats(c *cli.Context, h *histogram.Histogram) error {
	w := c.App.Writer

	fmt.Fprintf(w, "chunks\t%v\n", h.Total())
	fmt.Fprintf(w, "bytes\t%v (%v)\n", h.Bytes(), humanize.IBytes(h.Bytes()))
	if h.Total() == 0 {
		return nil
	}

	min, err := h.Min()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "min\t%v\n", min)

	for _, p := range reportedPercentiles {
		length, err := h.Percentile(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "p%v\t%v\n", p, length)
	}

	max, err := h.Max()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "max\t%v\n", max)

	mean, err := h.Mean()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "mean\t%.1f\n", mean)
	return nil
}
