// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"io"
	"os"
	"path/filepath"
)

// writeFile writes content to a temporary file beside output, and renames
// it into place only once every byte is written and the file is closed.
// On failure, output is left untouched.
func writeFile(output string, content io.WriterTo) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(output), "."+filepath.Base(output)+".*")
	if err != nil {
		return
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	_, err = content.WriteTo(tmp)
	if err != nil {
		return
	}

	err = tmp.Close()
	if err != nil {
		return
	}

	err = os.Rename(tmp.Name(), output)
	return
}
