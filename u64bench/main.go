// Command u64bench measures the cost of the emulated 64-bit word
// operations against the native uint64 operations they replace.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cespare/wordemu/u64"
	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
)

type benchOp struct {
	name   string
	emu    func(a, b u64.Uint64) u64.Uint64
	native func(a, b uint64) uint64
}

var allOps = []benchOp{
	{"add", u64.Add, func(a, b uint64) uint64 { return a + b }},
	{"sub", u64.Sub, func(a, b uint64) uint64 { return a - b }},
	{"mul", u64.Mul, func(a, b uint64) uint64 { return a * b }},
	{"xor", u64.Xor, func(a, b uint64) uint64 { return a ^ b }},
	{"and", u64.And, func(a, b uint64) uint64 { return a & b }},
	{"neg", func(a, _ u64.Uint64) u64.Uint64 { return u64.Neg(a) }, func(a, _ uint64) uint64 { return -a }},
	{"rotl13", func(a, _ u64.Uint64) u64.Uint64 { return u64.RotateLeft(a, 13) }, func(a, _ uint64) uint64 { return a<<13 | a>>51 }},
	{"rotr40", func(a, _ u64.Uint64) u64.Uint64 { return u64.RotateRight(a, 40) }, func(a, _ uint64) uint64 { return a>>40 | a<<24 }},
	{"shl7", func(a, _ u64.Uint64) u64.Uint64 { return u64.Shl(a, 7) }, func(a, _ uint64) uint64 { return a << 7 }},
}

func main() {
	log.SetFlags(0)
	var (
		n          = flag.Int("n", 10_000_000, "Iterations per operation")
		opNames    = flag.String("ops", "", "Comma-separated operations to run (default all)")
		fgprofFile = flag.String("fgprof", "", "Write an fgprof profile (pprof format) to this file")
	)
	flag.Parse()

	ops, err := selectOps(*opNames)
	if err != nil {
		log.Fatal(err)
	}

	if *fgprofFile != "" {
		f, err := os.Create(*fgprofFile)
		if err != nil {
			log.Fatal(err)
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				log.Println("Error writing profile:", err)
			}
			if err := f.Close(); err != nil {
				log.Println("Error closing profile:", err)
			}
		}()
	}

	run(os.Stdout, ops, *n)
}

func selectOps(names string) ([]benchOp, error) {
	if names == "" {
		return allOps, nil
	}
	var ops []benchOp
outer:
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		for _, op := range allOps {
			if op.name == name {
				ops = append(ops, op)
				continue outer
			}
		}
		return nil, fmt.Errorf("unknown operation %q", name)
	}
	return ops, nil
}

var (
	emuSink    u64.Uint64
	nativeSink uint64
)

func run(w io.Writer, ops []benchOp, n int) {
	a, b := uint64(0x4aa537e02d4ff2d7), uint64(0xe8c2a9e22698b38b)
	ea, eb := u64.FromUint64(a), u64.FromUint64(b)
	for _, op := range ops {
		start := time.Now()
		x := ea
		for range n {
			x = op.emu(x, eb)
		}
		emuSink = x
		emu := time.Since(start)

		start = time.Now()
		y := a
		for range n {
			y = op.native(y, b)
		}
		nativeSink = y
		native := time.Since(start)

		if x.Uint64() != y {
			fmt.Fprintf(w, "%-7s MISMATCH: emulated %s; native %016x\n", op.name, x, y)
			continue
		}
		fmt.Fprintf(w, "%-7s emulated %8.2f ns/op (%s)   native %6.2f ns/op (%s)\n",
			op.name,
			nsPerOp(emu, n), rate(emu, n),
			nsPerOp(native, n), rate(native, n),
		)
	}
}

func nsPerOp(d time.Duration, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(d.Nanoseconds()) / float64(n)
}

func rate(d time.Duration, n int) string {
	if d <= 0 {
		return "-"
	}
	return humanize.SIWithDigits(float64(n)/d.Seconds(), 1, "op/s")
}
