package configuration

import (
	"os"

	"github.com/pkg/errors"

	"github.com/dirbuf-io/dirbuf/pkg/columns"
	"github.com/dirbuf-io/dirbuf/pkg/encoding"
	"github.com/dirbuf-io/dirbuf/pkg/filesystem"
	"github.com/dirbuf-io/dirbuf/pkg/logging"
	"github.com/dirbuf-io/dirbuf/pkg/visibility"
)

const (
	// DefaultBatchSize is the default number of directory entries read per
	// listing batch.
	DefaultBatchSize = 100
	// DefaultCacheCapacity is the default number of idle directories held by
	// the entry cache.
	DefaultCacheCapacity = 64
)

// Configuration is the YAML configuration object type.
type Configuration struct {
	// Listing is the listing configuration.
	Listing struct {
		// BatchSize is the number of directory entries read per batch.
		BatchSize int `yaml:"batchSize"`
		// Columns are the columns requested by default.
		Columns []string `yaml:"columns"`
	} `yaml:"listing"`
	// Cache is the entry cache configuration.
	Cache struct {
		// Capacity is the number of idle directories held by the cache.
		Capacity int `yaml:"capacity"`
	} `yaml:"cache"`
	// Columns is the column rendering configuration.
	Columns struct {
		// TimeFormat is the strftime format used for time columns.
		TimeFormat string `yaml:"timeFormat"`
	} `yaml:"columns"`
	// View is the display configuration.
	View struct {
		// Hidden are the patterns of entries hidden from display.
		Hidden []string `yaml:"hidden"`
	} `yaml:"view"`
	// Logging is the logging configuration.
	Logging struct {
		// Level is the log level.
		Level logging.Level `yaml:"level"`
	} `yaml:"logging"`
}

// Default returns the default configuration.
func Default() *Configuration {
	result := &Configuration{}
	result.Listing.BatchSize = DefaultBatchSize
	result.Listing.Columns = []string{columns.NameSize, columns.NameModificationTime}
	if filesystem.PermissionsSupported {
		result.Listing.Columns = append([]string{columns.NamePermissions}, result.Listing.Columns...)
	}
	result.Cache.Capacity = DefaultCacheCapacity
	result.Columns.TimeFormat = columns.DefaultTimeFormat
	result.View.Hidden = []string{".*"}
	result.Logging.Level = logging.LevelWarn
	return result
}

// Load loads the configuration from the specified path on top of the default
// configuration. If the file doesn't exist, the default configuration is
// returned. The result is validated before being returned.
func Load(path string) (*Configuration, error) {
	// Create the default configuration, into which we decode.
	result := Default()

	// Attempt to load the file.
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "unable to load configuration file")
	}

	// Validate the result.
	if err := result.EnsureValid(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	// Success.
	return result, nil
}

// EnsureValid ensures that the configuration is valid, reporting the first
// invalid value found.
func (c *Configuration) EnsureValid() error {
	// Validate listing parameters.
	if c.Listing.BatchSize < 1 {
		return errors.Errorf("invalid listing batch size: %d", c.Listing.BatchSize)
	}
	registry := columns.NewPlatformRegistry(c.Columns.TimeFormat)
	if _, err := registry.Resolve(c.Listing.Columns); err != nil {
		return errors.Wrap(err, "invalid listing columns")
	}

	// Validate cache parameters.
	if c.Cache.Capacity < 1 {
		return errors.Errorf("invalid cache capacity: %d", c.Cache.Capacity)
	}

	// Validate column parameters.
	if c.Columns.TimeFormat == "" {
		return errors.New("empty time format")
	}

	// Validate view parameters.
	for _, pattern := range c.View.Hidden {
		if err := visibility.EnsurePatternValid(pattern); err != nil {
			return errors.Wrapf(err, "invalid hidden pattern '%s'", pattern)
		}
	}

	// Success.
	return nil
}
