package config

import (
	"errors"
	"fmt"

	"github.com/gobwas/glob"
)

var (
	// ErrInvalidSample indicates a negative sample size
	ErrInvalidSample = errors.New("invalid sample size")

	// ErrEmptyInclude indicates that no include patterns were configured
	ErrEmptyInclude = errors.New("empty include patterns")

	// ErrInvalidPattern indicates a glob pattern that does not compile
	ErrInvalidPattern = errors.New("invalid glob pattern")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Extract.Sample < 0 {
		errs = append(errs, fmt.Errorf("%w: extract.sample must not be negative, got %d", ErrInvalidSample, cfg.Extract.Sample))
	}

	if len(cfg.Deps.Include) == 0 {
		errs = append(errs, fmt.Errorf("%w: deps.include must list at least one pattern", ErrEmptyInclude))
	}
	for _, pattern := range cfg.Deps.Include {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: deps.include %q: %v", ErrInvalidPattern, pattern, err))
		}
	}
	for _, pattern := range cfg.Deps.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: deps.ignore %q: %v", ErrInvalidPattern, pattern, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
