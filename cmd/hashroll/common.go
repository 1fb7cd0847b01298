package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Redundancy/hashroll/chunks"
	"github.com/urfave/cli/v2"
)

// openInput opens a named file, or standard input for "-"
func openInput(filename string) (io.ReadCloser, error) {
	if filename == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, formatFileError(filename, err)
	}
	return f, nil
}

func formatFileError(filename string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("Could not find %v: %w", filename, err)
	case os.IsPermission(err):
		return fmt.Errorf("Could not open %v (permission denied): %w", filename, err)
	default:
		return fmt.Errorf("Unknown error opening %v: %w", filename, err)
	}
}

func modeFromFlags(c *cli.Context) chunks.Mode {
	if c.Bool("strict") {
		return chunks.Strict
	}
	return chunks.Partial
}

// eachChunk chunks r with the chunker and view selected on the command line. Chunks passed to fn
// may be reused once fn returns.
func eachChunk(c *cli.Context, r io.Reader, fn func(offset uint64, chunk []byte)) error {
	chunker, err := chunkerFromFlags(c)
	if err != nil {
		return err
	}

	bufSize, err := sizeFlag(c, "buffer", defaultBufferSize)
	if err != nil {
		return err
	}
	mode := modeFromFlags(c)

	var offset uint64
	if c.Bool("incremental") {
		it, err := chunks.NewStreamIter(chunker.NewIncremental(), r, int(bufSize), mode)
		if err != nil {
			return err
		}

		for {
			chunk, err := it.Next()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}

			fn(offset, chunk)
			offset += uint64(len(chunk))
		}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	it := chunks.IterSlices(chunker, data, mode)
	for chunk, ok := it.Next(); ok; chunk, ok = it.Next() {
		fn(offset, chunk)
		offset += uint64(len(chunk))
	}
	return nil
}

func checkArgs(c *cli.Context, usage string, min, max int) error {
	if l := c.Args().Len(); l < min || l > max {
		return fmt.Errorf(
			"Usage is \"%v\" (invalid number of arguments)",
			usage,
		)
	}
	return nil
}
