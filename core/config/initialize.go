package config

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir and loads it. An
// existing configuration is never overwritten.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	if err := fsys.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, ConfigurationName)
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%s: %w", path, fs.ErrExist)
	}

	logger.Printf("Writing default configuration to %s", path)
	if err := afero.WriteFile(fsys, path, defaultConfigData, 0600); err != nil {
		return nil, err
	}

	return Load(fsys, dir)
}
