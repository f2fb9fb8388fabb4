// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads assembler build settings from Starlark files.
//
// A build file assigns any of the globals below; anything else it defines is
// ignored. Values may be computed, and DEFAULT_CAPACITY and DEFAULT_WIDTH
// are predeclared:
//
//	capacity = DEFAULT_CAPACITY * 2  # words in the memory image
//	width = 4                        # hexits per word in the dump
//	verbose = True                   # log assembler actions
package config

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/wh02/assembler"
)

const (
	MAX_CAPACITY = 1 << 16 // Largest addressable image.
)

// Config holds the assembler build settings.
type Config struct {
	Capacity int  // Words in the memory image.
	Width    int  // Hexits per word in the dump.
	Verbose  bool // Log assembler actions.
}

// Default returns the settings of a stock WH-02.
func Default() *Config {
	return &Config{
		Capacity: assembler.DEFAULT_CAPACITY,
		Width:    assembler.DEFAULT_WIDTH,
	}
}

// predeclared are the names visible to build files.
var predeclared = starlark.StringDict{
	"DEFAULT_CAPACITY": starlark.MakeInt(assembler.DEFAULT_CAPACITY),
	"DEFAULT_WIDTH":    starlark.MakeInt(assembler.DEFAULT_WIDTH),
}

// Load executes a build file over the default settings. The src argument
// follows starlark.ExecFile: if nil, filename is read from disk.
func Load(filename string, src any) (cfg *Config, err error) {
	defer func() {
		if err != nil {
			cfg = nil
			err = &ErrConfig{Name: filename, Err: err}
		}
	}()

	thread := starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, &thread, filename, src, predeclared)
	if err != nil {
		return
	}

	cfg = Default()

	for _, name := range []string{"capacity", "width"} {
		value, ok := globals[name]
		if !ok {
			continue
		}
		var n int
		if err = starlark.AsInt(value, &n); err != nil {
			err = ErrConfigType(name)
			return
		}
		switch name {
		case "capacity":
			cfg.Capacity = n
		case "width":
			cfg.Width = n
		}
	}

	if value, ok := globals["verbose"]; ok {
		verbose, ok := value.(starlark.Bool)
		if !ok {
			err = ErrConfigType("verbose")
			return
		}
		cfg.Verbose = bool(verbose)
	}

	err = cfg.Validate()
	return
}

// Validate checks that the settings describe a buildable image.
func (cfg *Config) Validate() (err error) {
	if cfg.Capacity < 1 || cfg.Capacity > MAX_CAPACITY {
		err = &ErrConfigValue{Name: "capacity", Value: cfg.Capacity}
		return
	}

	if cfg.Width != 2 && cfg.Width != 4 {
		err = &ErrConfigValue{Name: "width", Value: cfg.Width}
		return
	}

	return
}

// Assembler returns an assembler using these settings.
func (cfg *Config) Assembler() *assembler.Assembler {
	return &assembler.Assembler{
		Verbose:  cfg.Verbose,
		Capacity: cfg.Capacity,
		Width:    cfg.Width,
	}
}
