package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vaughan0/go-ini"
)

type config struct {
	Prompt  string
	History string
}

func defaultConfig() config {
	return config{
		Prompt:  ">",
		History: filepath.Join(os.TempDir(), "u64calc_history"),
	}
}

// loadConfig reads the [u64calc] section of an INI file. A missing file is
// not an error; the defaults are used.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	file, err := ini.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	if v, ok := file.Get("u64calc", "prompt"); ok {
		cfg.Prompt = v
	}
	if v, ok := file.Get("u64calc", "history"); ok {
		cfg.History = v
	}
	return cfg, nil
}
