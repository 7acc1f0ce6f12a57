package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/blastrunner/internal/adapters/config"
	"go.trai.ch/blastrunner/internal/core/domain"
	"go.trai.ch/blastrunner/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
version: "1"
base_dir: ./work
verbose: true
cache: false
detect_content_changes: true
database:
  name: swissprot_subset
  type: NUCL
tools:
  makeblastdb: /opt/blast/bin/makeblastdb
  blastp: /opt/blast/bin/blastp
  env:
    BLASTDB: /data/blastdb
    PATH: /opt/blast/bin
search:
  parallelism: 4
  extra_args: ["-evalue", "1e-5"]
`)

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, &domain.Config{
		BaseDir:              filepath.Join(filepath.Dir(path), "work"),
		Verbose:              true,
		Cache:                false,
		DetectContentChanges: true,
		Database:             domain.DatabaseConfig{Name: "swissprot_subset", Type: domain.DBTypeNucleotide},
		Tools: domain.ToolsConfig{
			MakeBlastDB: "/opt/blast/bin/makeblastdb",
			Blastp:      "/opt/blast/bin/blastp",
			Env:         map[string]string{"BLASTDB": "/data/blastdb", "PATH": "/opt/blast/bin"},
		},
		Search: domain.SearchConfig{Parallelism: 4, ExtraArgs: []string{"-evalue", "1e-5"}},
	}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "base_dir: /srv/blast\n")

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)

	want := domain.DefaultConfig()
	want.BaseDir = "/srv/blast"
	assert.Equal(t, want, cfg)
	assert.True(t, cfg.Cache)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := newLoader(t).Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Empty(t, cfg.BaseDir)
	assert.True(t, errors.Is(cfg.Validate(), domain.ErrMissingBaseDir))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"malformed yaml", "base_dir: [unterminated\n", domain.ErrConfigParseFailed},
		{"unknown key", "base_dir: x\nbasedir: y\n", domain.ErrConfigParseFailed},
		{"unsupported version", "version: \"2\"\nbase_dir: x\n", domain.ErrUnsupportedConfigVersion},
		{"invalid db type", "base_dir: x\ndatabase:\n  type: rna\n", domain.ErrInvalidDBType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t).Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), domain.ConfigFileName))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigNotFound))
}

func TestLoad_ReadFailed(t *testing.T) {
	_, err := newLoader(t).Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigReadFailed))
}

func TestLoad_ExplicitZeroParallelismIsKept(t *testing.T) {
	cfg, err := newLoader(t).Load(writeConfig(t, "base_dir: x\nsearch:\n  parallelism: 0\n"))
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Search.Parallelism)
	assert.True(t, errors.Is(cfg.Validate(), domain.ErrInvalidParallelism))
}
