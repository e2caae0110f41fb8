package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oomph-ac/locomotion/locomotion"
	"github.com/oomph-ac/locomotion/scenario"
	"github.com/oomph-ac/locomotion/terrain"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// File is the contents of a configuration file: the controller tunables, the scene the body moves in and
// the scripted input it is driven with.
type File struct {
	Locomotion locomotion.Config     `toml:"locomotion" yaml:"locomotion"`
	Body       terrain.BodyConfig    `toml:"body" yaml:"body"`
	Terrain    []terrain.PatchConfig `toml:"terrain" yaml:"terrain"`

	Doors   []Door   `toml:"doors" yaml:"doors"`
	Cameras []Camera `toml:"cameras" yaml:"cameras"`
	Volumes []Volume `toml:"volumes" yaml:"volumes"`

	Logging  Logging  `toml:"logging" yaml:"logging"`
	Sentry   Sentry   `toml:"sentry" yaml:"sentry"`
	Scenario Scenario `toml:"scenario" yaml:"scenario"`
}

// Logging ...
type Logging struct {
	// Level is one of the logrus level names, such as "info" or "debug".
	Level string `toml:"level" yaml:"level"`
}

// Sentry ...
type Sentry struct {
	// DSN enables crash reporting when not empty.
	DSN string `toml:"dsn" yaml:"dsn"`
}

// Scenario holds the scripted run of the configuration.
type Scenario struct {
	Name  string `toml:"name" yaml:"name"`
	Ticks int    `toml:"ticks" yaml:"ticks"`
	// TickLength is the length of a tick in seconds.
	TickLength float32         `toml:"tick_length" yaml:"tick_length"`
	Spawn      []float32       `toml:"spawn" yaml:"spawn"`
	SpawnYaw   float32         `toml:"spawn_yaw" yaml:"spawn_yaw"`
	Steps      []scenario.Step `toml:"steps" yaml:"steps"`
}

// LogLevel parses the configured log level. An empty level is info.
func (f File) LogLevel() (logrus.Level, error) {
	if f.Logging.Level == "" {
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(f.Logging.Level)
}

// Load reads the configuration file at path. Files ending in .toml are decoded as TOML, files ending in
// .yaml or .yml as YAML. If the file does not exist, it is created with the default configuration, which
// is then returned. Keys missing from an existing file keep their default values.
func Load(path string) (File, error) {
	c := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		data, err := Encode(path, c)
		if err != nil {
			return c, fmt.Errorf("encode default config: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return c, fmt.Errorf("create default config: %w", err)
		}
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(path, data, &c); err != nil {
		return c, fmt.Errorf("decode config %s: %w", path, err)
	}
	return c, nil
}

// Encode encodes c in the format selected by the extension of path.
func Encode(path string, c File) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return toml.Marshal(c)
	case ".yaml", ".yml":
		return yaml.Marshal(c)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
}

// Decode decodes data into c in the format selected by the extension of path.
func Decode(path string, data []byte, c *File) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return toml.Unmarshal(data, c)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, c)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}
