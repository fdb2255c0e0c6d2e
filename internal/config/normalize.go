package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMatching()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	// The environment override wins over both defaults and file values
	// so deployments can relocate the library without editing config.
	if value, ok := os.LookupEnv(DataRootEnv); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataRoot = strings.TrimSpace(value)
	}

	var err error
	if c.Paths.DataRoot, err = expandPath(c.Paths.DataRoot); err != nil {
		return fmt.Errorf("paths.data_root: %w", err)
	}

	if strings.TrimSpace(c.Paths.DocumentsDir) == "" {
		c.Paths.DocumentsDir = filepath.Join(c.Paths.DataRoot, defaultDocumentsSubdir)
	}
	if c.Paths.DocumentsDir, err = expandPath(c.Paths.DocumentsDir); err != nil {
		return fmt.Errorf("paths.documents_dir: %w", err)
	}

	if strings.TrimSpace(c.Paths.MediaDir) == "" {
		c.Paths.MediaDir = filepath.Join(c.Paths.DataRoot, defaultMediaSubdir)
	}
	if c.Paths.MediaDir, err = expandPath(c.Paths.MediaDir); err != nil {
		return fmt.Errorf("paths.media_dir: %w", err)
	}

	if strings.TrimSpace(c.Paths.DatabasePath) == "" {
		c.Paths.DatabasePath = defaultDatabasePath
	}
	if c.Paths.DatabasePath, err = expandPath(c.Paths.DatabasePath); err != nil {
		return fmt.Errorf("paths.database_path: %w", err)
	}

	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}

	return nil
}

func (c *Config) normalizeMatching() {
	if c.Matching.SimilarityThreshold == 0 {
		c.Matching.SimilarityThreshold = defaultSimilarityThreshold
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
