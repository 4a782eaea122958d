package lantern

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the user-configurable part of the logging policy: per-level
// colors and the global minimum level. It is a plain serializable snapshot;
// embed it (or implement an accessor for it) in an application's own
// configuration type and hand it to the Builder. A Config is never mutated
// after construction.
type Config struct {
	Colors      map[Level]string `yaml:"colors" json:"colors"`
	MinLogLevel Level            `yaml:"min_log_level" json:"min_log_level"`
}

// DefaultConfig returns the baseline policy:
//
//	Error  red
//	Warn   yellow
//	Info   green
//	Debug  magenta
//	Trace  cyan
//
// with minimum level Info.
func DefaultConfig() Config {
	return Config{
		Colors: map[Level]string{
			LevelError: "red",
			LevelWarn:  "yellow",
			LevelInfo:  "green",
			LevelDebug: "magenta",
			LevelTrace: "cyan",
		},
		MinLogLevel: LevelInfo,
	}
}

// ParseConfig decodes a Config from its YAML form.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse logging config: %w", err)
	}
	return cfg, nil
}

// Marshal encodes the Config to its YAML form.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// flatten turns the color map into an order-stable pair sequence, walking
// levels in taxonomy order.
func flattenColors(colors map[Level]string) []ColorSetting {
	settings := make([]ColorSetting, 0, len(colors))
	for l := LevelOff; l < levelMaxForChecksOnly; l++ {
		if name, ok := colors[l]; ok {
			settings = append(settings, ColorSetting{Level: l, Color: name})
		}
	}
	return settings
}
