package main

import (
	"fmt"

	"github.com/Redundancy/hashroll/comparer"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

const compareUsage = "hashroll compare [options] <reference> <file>"

func init() {
	app.Commands = append(
		app.Commands,
		&cli.Command{
			Name:      "compare",
			Usage:     compareUsage,
			ArgsUsage: "<reference> <file>",
			Description: `Chunk two files and report how much of <file> is made of chunks that also occur in
<reference>.

Both files are chunked incrementally and concurrently, --buffer bytes at a time.`,
			Action: Compare,
			Flags:  chunkerFlags(),
		},
	)
}

// Compare reports the chunks shared by two files
func Compare(c *cli.Context) error {
	if err := checkArgs(c, compareUsage, 2, 2); err != nil {
		return err
	}

	chunker, err := chunkerFromFlags(c)
	if err != nil {
		return err
	}
	bufSize, err := sizeFlag(c, "buffer", defaultBufferSize)
	if err != nil {
		return err
	}

	reference, err := openInput(c.Args().Get(0))
	if err != nil {
		return err
	}
	defer reference.Close()

	comparison, err := openInput(c.Args().Get(1))
	if err != nil {
		return err
	}
	defer comparison.Close()

	summary, err := comparer.CompareReaders(chunker, reference, comparison, int(bufSize))
	if err != nil {
		return err
	}

	fmt.Fprintf(
		c.App.Writer,
		"shared %v of %v chunks (%.1f%%), %v of %v (%.1f%%)\n",
		summary.SharedChunks,
		summary.Chunks,
		100*summary.Overlap(),
		humanize.IBytes(summary.SharedBytes),
		humanize.IBytes(summary.Bytes),
		100*summary.ByteOverlap(),
	)
	return nil
}
