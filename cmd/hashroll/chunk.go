package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const chunkUsage = "hashroll chunk [options] [<file>]"

func init() {
	app.Commands = append(
		app.Commands,
		&cli.Command{
			Name:      "chunk",
			Aliases:   []string{"c"},
			Usage:     chunkUsage,
			ArgsUsage: "[<file>]",
			Description: `Print the offset and length of every chunk of a file, one chunk per line.

<file> defaults to standard input, which may also be given as "-".`,
			Action: Chunk,
			Flags:  chunkerFlags(),
		},
	)
}

// Chunk lists the chunks of a file
func Chunk(c *cli.Context) error {
	if err := checkArgs(c, chunkUsage, 0, 1); err != nil {
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

	count := 0
	err = eachChunk(c, r, func(offset uint64, chunk []byte) {
		fmt.Fprintf(c.App.Writer, "%v\t%v\n", offset, len(chunk))
		count++
	})
	if err != nil {
		return err
	}

	log.WithField("chunks", count).Debugf("chunked %v", filename)
	return nil
}
