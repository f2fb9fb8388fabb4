// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/wh02/config"
	"github.com/ezrec/wh02/lexer"
	"github.com/ezrec/wh02/parser"
)

// diagnostics flattens a joined error into its parts.
func diagnostics(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func main() {
	var configFile string
	var capacity int
	var width int
	var dump bool
	var verbose bool

	flag.StringVar(&configFile, "config", "", ".star build file to load")
	flag.IntVar(&capacity, "capacity", 0, "Image size in words (overrides build file)")
	flag.IntVar(&width, "width", 0, "Hexits per dumped word, 2 or 4 (overrides build file)")
	flag.BoolVar(&dump, "p", false, "Pretty-print parsed instructions to stderr")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 2 {
		log.Fatalf("usage: %v [options] INPUT OUTPUT", os.Args[0])
	}
	input := flag.Arg(0)
	output := flag.Arg(1)

	cfg := config.Default()
	if len(configFile) != 0 {
		var err error
		cfg, err = config.Load(configFile, nil)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	if capacity != 0 {
		cfg.Capacity = capacity
	}
	if width != 0 {
		cfg.Width = width
	}
	if verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	p := parser.NewParser(lexer.NewLexer(inf))
	p.Verbose = cfg.Verbose

	insts, err := p.ParseAll()
	if dump {
		pp.Fprintln(os.Stderr, insts)
	}
	if err != nil {
		errs := diagnostics(err)
		for _, err := range errs {
			log.Printf("%v: %v", input, err)
		}
		log.Fatalf("%v: %d error(s), no output written", input, len(errs))
	}

	img, err := cfg.Assembler().Assemble(insts)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	err = writeFile(output, img)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
