// Package config loads the TOML configuration file
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml"

	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer"
	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/simple"
	"awesome-dragon.science/go/colourEnabler/pkg/log"
)

// Defaults used for keys missing from the config file
const (
	DefaultLogLevel   = "info"
	DefaultFormat     = "terminal"
	DefaultTimestamps = true
	DefaultRichText   = true
)

// Config is the main config struct
type Config struct {
	OriginalPath string
	Log          LogConfig     `toml:"log"`
	Output       OutputConfig  `toml:"output"`
	Surface      SurfaceConfig `toml:"surface"`
}

// LogConfig configures the logger
type LogConfig struct {
	Level      string `toml:"level"`
	Timestamps bool   `toml:"timestamps"`
}

// SimpleFormat is the format name that selects the transformer described by OutputConfig.Simple
const SimpleFormat = "simple"

// ErrNoSimpleConf is returned when the simple format is selected without an [output.simple] table
var ErrNoSimpleConf = errors.New("format \"simple\" needs an [output.simple] table")

// OutputConfig selects the transformer used to render output
type OutputConfig struct {
	Format string       `toml:"format"`
	Simple *simple.Conf `toml:"simple"`
}

// Formats returns every format name a config may select, sorted
func Formats() []string {
	out := append(transformer.Names(), SimpleFormat)
	sort.Strings(out)

	return out
}

// Transformer creates the transformer named by name. The simple format is built from o.Simple
func (o *OutputConfig) Transformer(name string) (transformer.Transformer, error) {
	if name != SimpleFormat {
		return transformer.Get(name)
	}

	if o.Simple == nil {
		return nil, ErrNoSimpleConf
	}

	return simple.FromConf(o.Simple)
}

// SurfaceConfig configures new surfaces
type SurfaceConfig struct {
	RichText bool `toml:"rich_text"`
}

// Default returns the config used when no file is given
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: DefaultLogLevel, Timestamps: DefaultTimestamps},
		Output:  OutputConfig{Format: DefaultFormat},
		Surface: SurfaceConfig{RichText: DefaultRichText},
	}
}

// GetConfig fetches the config located at the given path
func GetConfig(path string) (*Config, error) {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read or parse config file: %w", err)
	}

	out, err := fromTree(tree)
	if err != nil {
		return nil, err
	}

	out.OriginalPath = path

	return out, nil
}

// FromString parses and validates a config held in a string
func FromString(s string) (*Config, error) {
	tree, err := toml.Load(s)
	if err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}

	return fromTree(tree)
}

func fromTree(tree *toml.Tree) (*Config, error) {
	out, err := makeConfig(tree)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := validateConfig(out); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return out, nil
}

func makeConfig(tree *toml.Tree) (*Config, error) {
	out := new(Config)
	if err := tree.Unmarshal(out); err != nil {
		return nil, err
	}

	def := Default()
	if !tree.Has("log.level") {
		out.Log.Level = def.Log.Level
	}

	if !tree.Has("log.timestamps") {
		out.Log.Timestamps = def.Log.Timestamps
	}

	if !tree.Has("output.format") {
		out.Output.Format = def.Output.Format
	}

	if !tree.Has("surface.rich_text") {
		out.Surface.RichText = def.Surface.RichText
	}

	return out, nil
}

func validateConfig(inConf *Config) error {
	if _, err := log.ParseLevel(inConf.Log.Level); err != nil {
		return err
	}

	if _, err := inConf.Output.Transformer(inConf.Output.Format); err != nil {
		return fmt.Errorf("%w, valid formats are %s", err, strings.Join(Formats(), ", "))
	}

	return nil
}

// LogLevel returns the numeric form of Log.Level. Configs returned by this package always have a valid level
func (c *Config) LogLevel() int {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.INFO
	}

	return level
}

// LogFlags returns the logger flags matching the config
func (c *Config) LogFlags() int {
	if c.Log.Timestamps {
		return log.FTimestamp
	}

	return 0
}
