// Command u64calc is an interactive calculator for emulated 64-bit words.
//
// Each line is an operation followed by its operands:
//
//	> add 4aa537e02d4ff2d7 e8c2a9e22698b38b
//	3367e1c253e8a662  (3,704,177,443,283,183,202)
//	> rotr _ 16
//	a6623367e1c253e8  (-6,457,542,394,433,612,824)
//
// Operands are up to 16 hex digits, #<decimal> for a signed 64-bit
// literal, or _ for the previous result. Type "help" for the list of
// operations.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
)

func main() {
	log.SetFlags(0)
	var (
		expr       = flag.String("e", "", "Evaluate a single expression and exit")
		configFile = flag.String("config", defaultConfigFile(), "INI config file (section [u64calc])")
	)
	flag.Parse()

	var c calc
	if *expr != "" {
		out, err := c.eval(*expr)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(out)
		return
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if err := repl(&c, cfg); err != nil {
		log.Fatal(err)
	}
}

func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".u64calc")
}

func repl(c *calc, cfg config) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt + " ",
		HistoryFile: cfg.History,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			log.Println("Readline error:", err)
			continue
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		}
		out, err := c.eval(line)
		if err != nil {
			fmt.Fprintln(l.Stderr(), "error:", err)
			continue
		}
		fmt.Fprintln(l.Stdout(), out)
	}
}
