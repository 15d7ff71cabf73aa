package config

// File represents the structure of the macsdk.yaml configuration file.
type File struct {
	// DeveloperDir overrides the active developer directory.
	DeveloperDir string `yaml:"developerDir"`

	// SDKVersion is the SDK version requested when the command line
	// passes none.
	SDKVersion string `yaml:"sdkVersion"`

	// LogFormat selects the log output format, "pretty" or "json".
	LogFormat string `yaml:"logFormat"`
}
