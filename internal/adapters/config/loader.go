// Package config provides the YAML configuration loader for blastrunner.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/blastrunner/internal/core/domain"
	"go.trai.ch/blastrunner/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path and returns the resolved configuration.
// Omitted keys take the values of domain.DefaultConfig. A relative base_dir is
// resolved against the directory holding the file.
func (l *Loader) Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(domain.ErrConfigNotFound, zerr.With(err, "path", path))
		}
		return nil, errors.Join(domain.ErrConfigReadFailed, zerr.With(err, "path", path))
	}

	schema, err := parse(data)
	if err != nil {
		return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(err, "path", path))
	}

	cfg, err := schema.toDomain(filepath.Dir(path))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.logger.Debug("loaded configuration from " + path)
	return cfg, nil
}

func parse(data []byte) (*Schema, error) {
	var schema Schema
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&schema); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &schema, nil
}

func (s *Schema) toDomain(configDir string) (*domain.Config, error) {
	if s.Version != "" && s.Version != SupportedVersion {
		return nil, errors.Join(
			domain.ErrUnsupportedConfigVersion,
			zerr.With(zerr.New("unknown version"), "version", s.Version),
		)
	}

	cfg := domain.DefaultConfig()

	if s.BaseDir != "" {
		cfg.BaseDir = s.BaseDir
		if !filepath.IsAbs(cfg.BaseDir) {
			cfg.BaseDir = filepath.Join(configDir, cfg.BaseDir)
		}
	}
	cfg.Verbose = s.Verbose
	if s.Cache != nil {
		cfg.Cache = *s.Cache
	}
	cfg.DetectContentChanges = s.DetectContentChanges

	if s.Database.Name != "" {
		cfg.Database.Name = s.Database.Name
	}
	if s.Database.Type != "" {
		dbType, err := domain.ParseDBType(s.Database.Type)
		if err != nil {
			return nil, err
		}
		cfg.Database.Type = dbType
	}

	if s.Tools.MakeBlastDB != "" {
		cfg.Tools.MakeBlastDB = s.Tools.MakeBlastDB
	}
	if s.Tools.Blastp != "" {
		cfg.Tools.Blastp = s.Tools.Blastp
	}
	cfg.Tools.Env = s.Tools.Env

	if s.Search.Parallelism != nil {
		cfg.Search.Parallelism = *s.Search.Parallelism
	}
	cfg.Search.ExtraArgs = s.Search.ExtraArgs

	return cfg, nil
}
