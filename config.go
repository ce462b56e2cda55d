package readable

import "github.com/tantowi/readable/internal/rconfig"

// Config aliases the four nested tunable records so callers can inspect or
// override them without importing internal/rconfig directly.
type (
	PreprocessConfig  = rconfig.PreprocessConfig
	ScoreConfig       = rconfig.ScoreConfig
	PostProcessConfig = rconfig.PostProcessConfig
	ExtractConfig     = rconfig.ExtractConfig
)

// ConfigBundle is the JSON/YAML-loadable aggregate of every tunable, used
// by WithConfigFile.
type ConfigBundle = rconfig.Bundle

// DefaultConfigBundle returns the bundle a Builder starts from when no
// overrides or config file are supplied.
func DefaultConfigBundle() ConfigBundle {
	return rconfig.DefaultBundle()
}
