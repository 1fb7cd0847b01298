package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Redundancy/hashroll/buzhash"
	"github.com/Redundancy/hashroll/chunks"
	"github.com/Redundancy/hashroll/fastcdc"
	"github.com/Redundancy/hashroll/gear"
	"github.com/Redundancy/hashroll/mii"
	"github.com/Redundancy/hashroll/pigz"
	"github.com/Redundancy/hashroll/ram"
	"github.com/Redundancy/hashroll/rollsum"
	"github.com/Redundancy/hashroll/rsyncable"
	"github.com/Redundancy/hashroll/tables"
	"github.com/Redundancy/hashroll/zpaq"
	"github.com/Redundancy/hashroll/zstd"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

const (
	defaultAlgorithm  = "fastcdc"
	defaultBufferSize = 32 * 1024
	defaultRamW       = 8192
)

// builder turns the chunker flags into a configured chunker. Flags that were not given take the
// algorithm's own defaults.
type builder func(c *cli.Context) (chunks.Chunker, error)

var algorithms = map[string]builder{
	"bup":       buildBup,
	"buzhash":   buildBuzhash,
	"fastcdc":   buildFastCDC,
	"gear":      buildGear,
	"gzip":      buildGzip,
	"mii":       buildMii,
	"pigz":      buildPigz,
	"ram":       buildRam,
	"rsyncable": buildGzip,
	"zpaq":      buildZpaq,
	"zstd":      buildZstd,
}

func algorithmNames() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// chunkerFlags are shared by every command that chunks. A new slice is built for each command.
func chunkerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "algorithm",
			Aliases: []string{"a"},
			Value:   defaultAlgorithm,
			Usage:   "one of " + strings.Join(algorithmNames(), ", "),
		},
		&cli.IntFlag{
			Name:  "window",
			Usage: "window length in bytes (bup, buzhash, gzip)",
		},
		&cli.StringFlag{
			Name:  "min-size",
			Usage: "minimum chunk size (fastcdc)",
		},
		&cli.StringFlag{
			Name:  "avg-size",
			Usage: "normal chunk size (fastcdc), modulus (gzip) or target section size (zstd)",
		},
		&cli.StringFlag{
			Name:  "max-size",
			Usage: "maximum chunk size (buzhash, fastcdc, zpaq)",
		},
		&cli.IntFlag{
			Name:  "bits",
			Usage: "average chunk size as a power of two (buzhash, gear, pigz) or zpaq's fragment",
		},
		&cli.IntFlag{
			Name:  "w",
			Usage: "run length (mii) or window (ram)",
		},
		&cli.IntFlag{
			Name:  "salt",
			Usage: "buzhash table salt",
		},
		&cli.Int64Flag{
			Name:  "gear-seed",
			Usage: "generate the gear table from this Mersenne twister seed (gear, fastcdc)",
		},
		&cli.StringFlag{
			Name:  "buffer",
			Value: humanize.IBytes(defaultBufferSize),
			Usage: "read size of the incremental view",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "drop the trailing data that does not end on an edge",
		},
		&cli.BoolFlag{
			Name:  "incremental",
			Usage: "push the input through the incremental view instead of searching it in memory",
		},
	}
}

func chunkerFromFlags(c *cli.Context) (chunks.Chunker, error) {
	name := c.String("algorithm")
	build, ok := algorithms[name]
	if !ok {
		return nil, fmt.Errorf(
			"%w: unknown algorithm %q, expected one of %v",
			chunks.ErrInvalidConfig,
			name,
			strings.Join(algorithmNames(), ", "),
		)
	}

	chunker, err := build(c)
	if err != nil {
		return nil, err
	}

	log.WithField("algorithm", name).Debug("chunker configured")
	return chunker, nil
}

func intFlag(c *cli.Context, name string, def int) int {
	if c.IsSet(name) {
		return c.Int(name)
	}
	return def
}

// sizeFlag parses sizes such as "64KiB" or "1 MB"
func sizeFlag(c *cli.Context, name string, def uint64) (uint64, error) {
	value := c.String(name)
	if !c.IsSet(name) && value == "" {
		return def, nil
	}

	n, err := humanize.ParseBytes(value)
	if err != nil {
		return 0, fmt.Errorf("%w: --%v: %v", chunks.ErrInvalidConfig, name, err)
	}
	return n, nil
}

func bitsFlag(c *cli.Context, def, max int) (uint, error) {
	bits := intFlag(c, "bits", def)
	if bits < 0 || bits > max {
		return 0, fmt.Errorf("%w: --bits %v not in [0, %v]", chunks.ErrInvalidConfig, bits, max)
	}
	return uint(bits), nil
}

func buildBup(c *cli.Context) (chunks.Chunker, error) {
	return rollsum.New(intFlag(c, "window", rollsum.DefaultWindow))
}

func buildBuzhash(c *cli.Context) (chunks.Chunker, error) {
	salt := intFlag(c, "salt", 0)
	if salt < 0 || salt > 255 {
		return nil, fmt.Errorf("%w: --salt %v is not a byte", chunks.ErrInvalidConfig, salt)
	}

	bits, err := bitsFlag(c, 12, 32)
	if err != nil {
		return nil, err
	}
	max, err := sizeFlag(c, "max-size", 1<<24)
	if err != nil {
		return nil, err
	}

	return buzhash.New(
		intFlag(c, "window", 67),
		uint32((uint64(1)<<bits)-1),
		buzhash.NewSaltedTableHash(byte(salt), &tables.GoBuzhash),
		max,
	)
}

func buildGear(c *cli.Context) (chunks.Chunker, error) {
	bits, err := bitsFlag(c, gear.DefaultAverageSizeLog2, 31)
	if err != nil {
		return nil, err
	}

	if !c.IsSet("gear-seed") {
		return gear.WithAverageSizeLog2(bits)
	}
	return gear.New(gear.MSBMask(bits), 0, tables.GenerateGear32(c.Int64("gear-seed")))
}

func buildFastCDC(c *cli.Context) (chunks.Chunker, error) {
	min, err := sizeFlag(c, "min-size", fastcdc.DefaultMinSize)
	if err != nil {
		return nil, err
	}
	normal, err := sizeFlag(c, "avg-size", fastcdc.DefaultNormalSize)
	if err != nil {
		return nil, err
	}
	max, err := sizeFlag(c, "max-size", fastcdc.DefaultMaxSize)
	if err != nil {
		return nil, err
	}

	table := &tables.Gear64
	if c.IsSet("gear-seed") {
		table = tables.GenerateGear64(c.Int64("gear-seed"))
	}
	return fastcdc.New(table, min, normal, max)
}

func buildZpaq(c *cli.Context) (chunks.Chunker, error) {
	if c.IsSet("max-size") {
		max, err := sizeFlag(c, "max-size", 0)
		if err != nil {
			return nil, err
		}
		return zpaq.WithMaxSize(max)
	}

	fragment, err := bitsFlag(c, zpaq.DefaultFragment, 255)
	if err != nil {
		return nil, err
	}
	return zpaq.WithAverageSizePow2(uint8(fragment))
}

func buildGzip(c *cli.Context) (chunks.Chunker, error) {
	modulus, err := sizeFlag(c, "avg-size", rsyncable.DefaultModulus)
	if err != nil {
		return nil, err
	}
	return rsyncable.WithWindowAndModulus(intFlag(c, "window", rsyncable.DefaultWindow), modulus)
}

func buildPigz(c *cli.Context) (chunks.Chunker, error) {
	bits, err := bitsFlag(c, pigz.DefaultBits, 255)
	if err != nil {
		return nil, err
	}
	return pigz.WithBits(uint8(bits))
}

func buildMii(c *cli.Context) (chunks.Chunker, error) {
	w := intFlag(c, "w", mii.DefaultW)
	if w < 0 {
		return nil, fmt.Errorf("%w: --w %v is negative", chunks.ErrInvalidConfig, w)
	}
	return mii.WithW(uint64(w))
}

func buildRam(c *cli.Context) (chunks.Chunker, error) {
	w := intFlag(c, "w", defaultRamW)
	if w < 0 {
		return nil, fmt.Errorf("%w: --w %v is negative", chunks.ErrInvalidConfig, w)
	}
	return ram.WithW(uint64(w)), nil
}

func buildZstd(c *cli.Context) (chunks.Chunker, error) {
	target, err := sizeFlag(c, "avg-size", zstd.DefaultTargetSectionSize)
	if err != nil {
		return nil, err
	}
	return zstd.WithTargetSectionSize(target)
}
