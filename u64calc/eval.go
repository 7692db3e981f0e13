package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/wordemu/u64"
	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
)

type calc struct {
	last u64.Uint64
}

type binaryOp func(a, b u64.Uint64) u64.Uint64

type unaryOp func(a u64.Uint64) u64.Uint64

type shiftOp func(a u64.Uint64, n int) u64.Uint64

var binaryOps = map[string]binaryOp{
	"add": u64.Add,
	"sub": u64.Sub,
	"mul": u64.Mul,
	"xor": u64.Xor,
	"and": u64.And,
	"or":  u64.Or,
}

var unaryOps = map[string]unaryOp{
	"neg":  u64.Neg,
	"not":  u64.Not,
	"inc":  u64.Inc,
	"mod2": u64.Mod2,
	"set":  func(a u64.Uint64) u64.Uint64 { return a },
}

var shiftOps = map[string]shiftOp{
	"rotl": u64.RotateLeft,
	"rotr": u64.RotateRight,
	"shl":  func(a u64.Uint64, n int) u64.Uint64 { return u64.Shl(a, uint(n)) },
	"shr":  func(a u64.Uint64, n int) u64.Uint64 { return u64.Shr(a, uint(n)) },
}

// eval evaluates a single line of input and returns the text to print.
// Operations that produce a word also remember it as _.
func (c *calc) eval(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty expression")
	}
	name, args := fields[0], fields[1:]

	if fn, ok := binaryOps[name]; ok {
		vals, err := c.values(name, args, 2)
		if err != nil {
			return "", err
		}
		return c.result(fn(vals[0], vals[1])), nil
	}
	if fn, ok := unaryOps[name]; ok {
		vals, err := c.values(name, args, 1)
		if err != nil {
			return "", err
		}
		return c.result(fn(vals[0])), nil
	}
	if fn, ok := shiftOps[name]; ok {
		if len(args) != 2 {
			return "", fmt.Errorf("%s: want 2 operands, got %d", name, len(args))
		}
		v, err := c.parseValue(args[0])
		if err != nil {
			return "", fmt.Errorf("%s: %w", name, err)
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			return "", fmt.Errorf("%s: bad bit count %q", name, args[1])
		}
		return c.result(fn(v, n)), nil
	}

	switch name {
	case "cmp":
		vals, err := c.values(name, args, 2)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(u64.Compare(vals[0], vals[1])), nil
	case "int":
		vals, err := c.values(name, args, 1)
		if err != nil {
			return "", err
		}
		return humanize.Comma(vals[0].Int64()), nil
	case "hex":
		vals, err := c.values(name, args, 1)
		if err != nil {
			return "", err
		}
		return vals[0].ToHex(), nil
	case "dump":
		vals, err := c.values(name, args, 1)
		if err != nil {
			return "", err
		}
		return pretty.Sprint(viewOf(vals[0])), nil
	case "help":
		return help(), nil
	}
	return "", fmt.Errorf("unknown operation %q (try help)", name)
}

func (c *calc) values(name string, args []string, n int) ([]u64.Uint64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s: want %d operand(s), got %d", name, n, len(args))
	}
	vals := make([]u64.Uint64, n)
	for i, arg := range args {
		v, err := c.parseValue(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		vals[i] = v
	}
	return vals, nil
}

// parseValue parses an operand: up to 16 hex digits (optionally prefixed
// with 0x), #<decimal> for a signed literal, or _ for the last result.
func (c *calc) parseValue(s string) (u64.Uint64, error) {
	switch {
	case s == "_":
		return c.last, nil
	case strings.HasPrefix(s, "#"):
		i, err := strconv.ParseInt(s[1:], 10, 64)
		if err != nil {
			return u64.Zero, fmt.Errorf("bad decimal literal %q", s)
		}
		return u64.FromInt64(i), nil
	}
	return u64.FromHex(strings.TrimPrefix(s, "0x"))
}

func (c *calc) result(v u64.Uint64) string {
	c.last = v
	return fmt.Sprintf("%s  (%s)", v, humanize.Comma(v.Int64()))
}

// view is the breakdown printed by dump.
type view struct {
	Hex    string
	Hi     uint32
	Lo     uint32
	Signed int64
	Bytes  [8]byte
}

func viewOf(v u64.Uint64) view {
	hi, lo := v.HiLo()
	return view{
		Hex:    v.ToHex(),
		Hi:     hi,
		Lo:     lo,
		Signed: v.Int64(),
		Bytes:  v.Bytes(),
	}
}

func help() string {
	var names []string
	for name := range binaryOps {
		names = append(names, name+" a b")
	}
	for name := range unaryOps {
		names = append(names, name+" a")
	}
	for name := range shiftOps {
		names = append(names, name+" a bits")
	}
	names = append(names, "cmp a b", "int a", "hex a", "dump a")
	sort.Strings(names)
	return "operations:\n  " + strings.Join(names, "\n  ")
}
