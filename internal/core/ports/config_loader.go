package ports

// Config holds the optional per-user configuration.
type Config struct {
	// DeveloperDir overrides the developer directory reported by
	// xcode-select when non-empty.
	DeveloperDir string

	// SDKVersion is the default requested SDK version when the caller
	// passes none.
	SDKVersion string

	// LogFormat selects "pretty" or "json" log output.
	LogFormat string
}

// ConfigLoader defines the interface for loading the optional
// configuration file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration starting from the given working
	// directory, walking up toward the filesystem root. A missing file
	// yields the zero Config, not an error.
	Load(cwd string) (Config, error)
}
