package meta

import (
	"os"

	"gopkg.in/yaml.v3"

	"glyphstorm/parameter"
)

// Options is the optional settings file. Command-line flags override
// whatever loads from here; absent fields keep their defaults
type Options struct {
	Volume      float64 `yaml:"volume"`
	Muted       bool    `yaml:"muted"`
	Seed        int64   `yaml:"seed"`
	ProfilePath string  `yaml:"profile"`
}

// DefaultOptions returns the settings used when no file exists
func DefaultOptions() Options {
	return Options{
		Volume: parameter.DefaultVolume,
	}
}

// LoadOptions reads the settings file. A missing file yields defaults;
// a corrupt one is an error
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return DefaultOptions(), err
	}
	return opts, nil
}
