package config

// SupportedVersion is the only configuration format version understood by this build.
const SupportedVersion = "1"

// Schema represents the structure of the blastrunner.yaml configuration file.
// Pointer fields distinguish an explicit false or zero from an omitted key.
type Schema struct {
	Version              string      `yaml:"version"`
	BaseDir              string      `yaml:"base_dir"`
	Verbose              bool        `yaml:"verbose"`
	Cache                *bool       `yaml:"cache"`
	DetectContentChanges bool        `yaml:"detect_content_changes"`
	Database             DatabaseDTO `yaml:"database"`
	Tools                ToolsDTO    `yaml:"tools"`
	Search               SearchDTO   `yaml:"search"`
}

// DatabaseDTO configures the database built by makeblastdb.
type DatabaseDTO struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// ToolsDTO names the external executables and their extra environment.
type ToolsDTO struct {
	MakeBlastDB string            `yaml:"makeblastdb"`
	Blastp      string            `yaml:"blastp"`
	Env         map[string]string `yaml:"env"`
}

// SearchDTO tunes blastp.
type SearchDTO struct {
	Parallelism *int     `yaml:"parallelism"`
	ExtraArgs   []string `yaml:"extra_args"`
}
