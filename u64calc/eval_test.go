package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cespare/wordemu/u64"
	"github.com/kr/pretty"
)

func TestEval(t *testing.T) {
	for _, tt := range []struct {
		line string
		want string
	}{
		{"add 4f3f9abb2e7c8889 68825a36ac081669", "b7c1f4f1da849ef2  (-5,205,610,374,673,162,510)"},
		{"add 4aa537e02d4ff2d7 e8c2a9e22698b38b", "3367e1c253e8a662  (3,704,177,443,283,183,202)"},
		{"sub 68825a36ac081669 4f3f9abb2e7c8889", "1942bf7b7d8b8de0  (1,820,227,736,519,282,144)"},
		{"mul 4f3f9abb2e7c8889 2", "9e7f35765cf91112  (-7,025,838,111,192,444,654)"},
		{"neg 4f3f9abb2e7c8889", "b0c06544d1837777  (-5,710,452,981,258,553,481)"},
		{"inc 0x4f3f9abb2e7c8889", "4f3f9abb2e7c888a  (5,710,452,981,258,553,482)"},
		{"rotr 0f0f0f0f0f123456 16", "34560f0f0f0f0f12  (3,771,218,295,320,940,306)"},
		{"set #-401364645913", "ffffffa28ccd87e7  (-401,364,645,913)"},
		{"cmp 4f3f9abb2e7c8889 68825a36ac081669", "-1"},
		{"cmp 68825a36ac081669 4f3f9abb2e7c8889", "1"},
		{"int ffffffffffffffff", "-1"},
		{"hex ff", "00000000000000ff"},
		{"mod2 4f3f9abb2e7c8889", "0000000000000001  (1)"},
	} {
		var c calc
		got, err := c.eval(tt.line)
		if err != nil {
			t.Errorf("eval(%q): %s", tt.line, err)
			continue
		}
		if got != tt.want {
			t.Errorf("eval(%q): got %q; want %q", tt.line, got, tt.want)
		}
	}
}

func TestEvalLast(t *testing.T) {
	var c calc
	for _, line := range []string{
		"set 4f3f9abb2e7c8889",
		"add _ 68825a36ac081669",
		"sub _ 68825a36ac081669",
	} {
		if _, err := c.eval(line); err != nil {
			t.Fatalf("eval(%q): %s", line, err)
		}
	}
	if got, want := c.last, u64.MustFromHex("4f3f9abb2e7c8889"); got != want {
		t.Errorf("got %s; want %s", got, want)
	}
}

func TestEvalErrors(t *testing.T) {
	for _, line := range []string{
		"",
		"frob 1 2",
		"add 1",
		"add 1 2 3",
		"add 4f3f9abb2e7c88891 1",
		"neg xyz",
		"rotl 1 x",
		"rotl 1 -1",
		"set #abc",
	} {
		var c calc
		if got, err := c.eval(line); err == nil {
			t.Errorf("eval(%q): got %q; want error", line, got)
		}
	}

	var c calc
	_, err := c.eval("add 4f3f9abb2e7c88891 1")
	var iie *u64.InvalidInputError
	if !errors.As(err, &iie) || !errors.Is(err, u64.ErrTooLong) {
		t.Errorf("got err %v; want wrapped %v", err, u64.ErrTooLong)
	}
}

func TestViewOf(t *testing.T) {
	got := viewOf(u64.MustFromHex("4f3f9abb2e7c8889"))
	want := view{
		Hex:    "4f3f9abb2e7c8889",
		Hi:     1329568443,
		Lo:     779913353,
		Signed: 5710452981258553481,
		Bytes:  [8]byte{0x4f, 0x3f, 0x9a, 0xbb, 0x2e, 0x7c, 0x88, 0x89},
	}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("viewOf: got/want diff:\n%s", strings.Join(diff, "\n"))
	}

	var c calc
	out, err := c.eval("dump 4f3f9abb2e7c8889")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "4f3f9abb2e7c8889") {
		t.Errorf("dump output missing hex form:\n%s", out)
	}
}

func TestHelp(t *testing.T) {
	out := help()
	for _, op := range []string{"add a b", "neg a", "rotl a bits", "cmp a b", "dump a"} {
		if !strings.Contains(out, op) {
			t.Errorf("help missing %q", op)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadConfig(filepath.Join(dir, "missing"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(cfg, defaultConfig()); len(diff) > 0 {
		t.Errorf("missing file: got/want diff:\n%s", strings.Join(diff, "\n"))
	}

	name := filepath.Join(dir, "u64calc.ini")
	const text = `
[other]
prompt = nope

[u64calc]
prompt = u64>
history = /var/tmp/u64calc.txt
`
	if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = loadConfig(name)
	if err != nil {
		t.Fatal(err)
	}
	want := config{Prompt: "u64>", History: "/var/tmp/u64calc.txt"}
	if diff := pretty.Diff(cfg, want); len(diff) > 0 {
		t.Errorf("got/want diff:\n%s", strings.Join(diff, "\n"))
	}
}
