// Command benchplans builds transform plans across a list of sizes, times
// their execution, and prints a table. Optionally exports the resulting
// wisdom (per-size strategy decisions) to a YAML file.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"github.com/rs/zerolog"

	algodft "github.com/cwbudde/algo-dft"
)

const appName = "benchplans"

func main() {
	var (
		sizeList   = "6,12,100,360,1000"
		iters      = 200
		warmup     = 10
		seed       = int64(1)
		wisdomFile = ""
		verbose    = false
	)

	flaggy.SetName(appName)
	flaggy.SetDescription("benchmark mixed-radix DFT plans")
	flaggy.String(&sizeList, "s", "sizes", "comma-separated transform sizes")
	flaggy.Int(&iters, "i", "iters", "benchmark iterations per size")
	flaggy.Int(&warmup, "w", "warmup", "warmup iterations per size")
	flaggy.Int64(&seed, "r", "seed", "rng seed")
	flaggy.String(&wisdomFile, "o", "wisdom", "export wisdom to file (YAML)")
	flaggy.Bool(&verbose, "v", "verbose", "trace plan construction")
	flaggy.Parse()

	sizes := parseSizes(sizeList)
	if len(sizes) == 0 {
		fmt.Fprintln(os.Stderr, "no sizes specified")
		os.Exit(1)
	}

	opts := &algodft.Options{}
	if verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		opts.Trace = &logger
	}

	rnd := rand.New(rand.NewSource(seed))

	fmt.Printf("iters=%d warmup=%d\n", iters, warmup)
	fmt.Printf("%8s  %10s  %12s\n", "size", "direction", "ns/op")

	for _, n := range sizes {
		for _, dir := range []algodft.Direction{algodft.Forward, algodft.Inverse} {
			nsPerOp, err := benchmarkSize(rnd, n, dir, iters, warmup, opts)
			if err != nil {
				fmt.Printf("%8d  %10s  %12s (%v)\n", n, dir, "-", err)
				continue
			}

			fmt.Printf("%8d  %10s  %12.1f\n", n, dir, nsPerOp)
		}
	}

	if wisdomFile != "" {
		if err := algodft.ExportWisdom(wisdomFile); err != nil {
			fmt.Fprintf(os.Stderr, "wisdom export failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("wisdom exported to %s\n", wisdomFile)
	}
}

func benchmarkSize(rnd *rand.Rand, n int, dir algodft.Direction, iters, warmup int, opts *algodft.Options) (float64, error) {
	src := make([]complex128, n)
	dst := make([]complex128, n)

	for i := range src {
		src[i] = complex(rnd.Float64()*2-1, rnd.Float64()*2-1)
	}

	plan, err := algodft.NewPlan(n, src, dst, dir, opts)
	if err != nil {
		return 0, err
	}

	defer plan.Destroy()

	for i := 0; i < warmup; i++ {
		plan.Execute()
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		plan.Execute()
	}

	elapsed := time.Since(start)

	return float64(elapsed.Nanoseconds()) / float64(iters), nil
}

func parseSizes(list string) []int {
	var sizes []int

	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		n, err := strconv.Atoi(field)
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "skipping invalid size %q\n", field)
			continue
		}

		sizes = append(sizes, n)
	}

	return sizes
}
