package config

import (
	"fmt"
	"strings"
)

var validLogFormats = map[string]struct{}{
	"console": {},
	"json":    {},
}

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// ValidateThreshold checks a similarity threshold against the documented
// range, shared by config validation and command-line overrides.
func ValidateThreshold(threshold float64) error {
	if threshold < minSimilarityThreshold || threshold > maxSimilarityThreshold {
		return fmt.Errorf(
			"matching.similarity_threshold %.2f outside valid range [%.1f, %.1f]",
			threshold, minSimilarityThreshold, maxSimilarityThreshold,
		)
	}
	return nil
}

// Validate checks the configuration for values outside their documented
// ranges. It assumes normalize has already run.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.DataRoot) == "" {
		return fmt.Errorf("paths.data_root must not be empty")
	}
	if strings.TrimSpace(c.Paths.DatabasePath) == "" {
		return fmt.Errorf("paths.database_path must not be empty")
	}

	if err := ValidateThreshold(c.Matching.SimilarityThreshold); err != nil {
		return err
	}

	if _, ok := validLogFormats[c.Logging.Format]; !ok {
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	if _, ok := validLogLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
