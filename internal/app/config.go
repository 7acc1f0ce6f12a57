package app

import (
	"errors"
	"path/filepath"

	"go.trai.ch/blastrunner/internal/core/domain"
	"go.trai.ch/zerr"
)

// loadConfig reads the configuration file, applies the settings and override,
// then validates the result. A missing default configuration file is accepted
// when the base directory comes from the settings.
func (a *App) loadConfig(s Settings, override func(*domain.Config) error) (*domain.Config, error) {
	path := s.ConfigPath
	explicit := path != ""
	if !explicit {
		path = filepath.Join(s.WorkDir, domain.ConfigFileName)
	}

	cfg, err := a.configLoader.Load(path)
	if err != nil {
		if explicit || s.BaseDir == "" || !errors.Is(err, domain.ErrConfigNotFound) {
			return nil, zerr.Wrap(err, "failed to load configuration")
		}
		cfg = domain.DefaultConfig()
	}

	if s.BaseDir != "" {
		cfg.BaseDir = s.BaseDir
	}
	if s.Verbose {
		cfg.Verbose = true
	}
	if s.NoCache {
		cfg.Cache = false
	}
	a.logger.SetVerbose(cfg.Verbose)

	if override != nil {
		if err := override(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, zerr.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func applyDatabaseOverrides(cfg *domain.Config, dbType, dbName string) error {
	if dbType != "" {
		t, err := domain.ParseDBType(dbType)
		if err != nil {
			return err
		}
		cfg.Database.Type = t
	}
	if dbName != "" {
		cfg.Database.Name = dbName
	}
	return nil
}
