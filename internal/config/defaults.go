package config

const (
	defaultDataRoot            = "~/.local/share/docshelf/data"
	defaultDatabasePath        = "~/.local/share/docshelf/database/catalog.db"
	defaultLogDir              = "~/.local/share/docshelf/logs"
	defaultDocumentsSubdir     = "documents"
	defaultMediaSubdir         = "images"
	defaultSimilarityThreshold = 0.9
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"

	// Documented bounds for matching.similarity_threshold.
	minSimilarityThreshold = 0.7
	maxSimilarityThreshold = 1.0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataRoot:     defaultDataRoot,
			DatabasePath: defaultDatabasePath,
			LogDir:       defaultLogDir,
		},
		Matching: Matching{
			SimilarityThreshold: defaultSimilarityThreshold,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
