package config

// Config represents the complete dexmap configuration.
// It can be loaded from .dexmap/config.yml with environment variable overrides.
type Config struct {
	Extract ExtractConfig `yaml:"extract" mapstructure:"extract"`
	Deps    DepsConfig    `yaml:"deps" mapstructure:"deps"`
}

// ExtractConfig controls the extract command's reporting.
type ExtractConfig struct {
	Sample int `yaml:"sample" mapstructure:"sample"` // entries shown after parsing; 0 disables
}

// DepsConfig defines which files the deps scan visits.
type DepsConfig struct {
	Include []string `yaml:"include" mapstructure:"include"` // glob patterns of files to scan
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`   // glob patterns of files to skip
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Extract: ExtractConfig{
			Sample: 5,
		},
		Deps: DepsConfig{
			Include: []string{"**.ts"},
			Ignore:  []string{"**node_modules**", "**.d.ts"},
		},
	}
}
