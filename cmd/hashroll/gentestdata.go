package main

import (
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/Redundancy/hashroll/util/readers"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

const (
	genTestDataUsage = "hashroll gen-test-data <seed> [<KiB>]"
	defaultTestKiB   = 32
)

func init() {
	app.Commands = append(
		app.Commands,
		&cli.Command{
			Name:      "gen-test-data",
			Aliases:   []string{"g"},
			Usage:     genTestDataUsage,
			ArgsUsage: "<seed> [<KiB>]",
			Description: `Write deterministic pseudo-random bytes to standard output.

The bytes are the little-endian output of a PCG64 generator seeded with <seed>, the same data the
golden chunk lengths of the library tests are recorded against. <seed> is a decimal number below
2^128. <KiB> defaults to 32.`,
			Action: GenTestData,
		},
	)
}

// GenTestData writes seeded test data
func GenTestData(c *cli.Context) error {
	if err := checkArgs(c, genTestDataUsage, 1, 2); err != nil {
		return err
	}

	seedHi, seedLo, err := parseSeed(c.Args().Get(0))
	if err != nil {
		return err
	}

	kib := uint64(defaultTestKiB)
	if c.Args().Len() == 2 {
		if kib, err = strconv.ParseUint(c.Args().Get(1), 10, 32); err != nil {
			return fmt.Errorf("Invalid size %q: %w", c.Args().Get(1), err)
		}
	}

	source := readers.NewPCG64Stream(seedHi, seedLo, readers.DefaultStreamHi, readers.DefaultStreamLo)
	n, err := io.Copy(c.App.Writer, io.LimitReader(source, int64(kib)*1024))
	if err != nil {
		return err
	}

	log.WithField("seed", c.Args().Get(0)).Debugf("wrote %v of test data", humanize.IBytes(uint64(n)))
	return nil
}

var maxSeed = new(big.Int).Lsh(big.NewInt(1), 128)

// parseSeed reads a decimal 128 bit seed as its high and low words
func parseSeed(arg string) (hi, lo uint64, err error) {
	seed, ok := new(big.Int).SetString(arg, 10)
	if !ok || seed.Sign() < 0 || seed.Cmp(maxSeed) >= 0 {
		return 0, 0, fmt.Errorf("Invalid seed %q: expected a decimal number in [0, 2^128)", arg)
	}

	lo = new(big.Int).And(seed, new(big.Int).SetUint64(^uint64(0))).Uint64()
	hi = new(big.Int).Rsh(seed, 64).Uint64()
	return hi, lo, nil
}
