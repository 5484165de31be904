package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/dirbuf-io/dirbuf/cmd"

	"github.com/dirbuf-io/dirbuf/pkg/adapter"
	"github.com/dirbuf-io/dirbuf/pkg/adapter/files"
	"github.com/dirbuf-io/dirbuf/pkg/cache"
	"github.com/dirbuf-io/dirbuf/pkg/columns"
	"github.com/dirbuf-io/dirbuf/pkg/configuration"
	"github.com/dirbuf-io/dirbuf/pkg/dirbuf"
	"github.com/dirbuf-io/dirbuf/pkg/filesystem"
	"github.com/dirbuf-io/dirbuf/pkg/location"
	"github.com/dirbuf-io/dirbuf/pkg/logging"
	"github.com/dirbuf-io/dirbuf/pkg/visibility"
)

// application holds the components shared by commands.
type application struct {
	// configuration is the loaded configuration.
	configuration *configuration.Configuration
	// logger is the root logger.
	logger *logging.Logger
	// entries is the entry cache.
	entries *cache.Cache
	// columns is the column registry.
	columns *columns.Registry
	// adapters is the adapter registry.
	adapters *adapter.Registry
	// files is the filesystem adapter.
	files *files.Adapter
	// filter is the hidden entry filter.
	filter *visibility.Filter
}

// loadConfiguration loads the configuration from the path specified on the
// command line or the default path.
func loadConfiguration() (*configuration.Configuration, error) {
	path := rootConfiguration.configuration
	if path == "" {
		var err error
		if path, err = configuration.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return configuration.Load(path)
}

// logLevel computes the effective log level. A level specified on the command
// line takes precedence, followed by debug mode and the configured level.
func logLevel(configured logging.Level) logging.Level {
	if level, specified := rootConfiguration.logLevel.Level(); specified {
		return level
	} else if dirbuf.DebugEnabled {
		return logging.LevelDebug
	}
	return configured
}

// newApplication creates the shared command components.
func newApplication() (*application, error) {
	// Load configuration.
	configuration, err := loadConfiguration()
	if err != nil {
		return nil, errors.Wrap(err, "unable to load configuration")
	}

	// Set up logging.
	logger := cmd.EnableLogging(logLevel(configuration.Logging.Level)).Sublogger("dirbuf")

	// Create the hidden entry filter.
	filter, err := visibility.NewFilter(configuration.View.Hidden)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hidden entry patterns")
	}

	// Create the cache and trace its events.
	entries := cache.New(configuration.Cache.Capacity)
	if logger.Level() >= logging.LevelTrace {
		cacheLogger := logger.Sublogger("cache")
		entries.Subscribe(func(event cache.Event) {
			if event.Entry != nil {
				cacheLogger.Tracef("%s %s (%s)", event.Kind, event.Directory, event.Entry.Name)
			} else {
				cacheLogger.Tracef("%s %s", event.Kind, event.Directory)
			}
		})
	}

	// Create the column registry.
	registry := columns.NewPlatformRegistry(configuration.Columns.TimeFormat)

	// Create and register the filesystem adapter.
	workingDirectory, err := os.Getwd()
	if err != nil {
		logger.Warn(errors.Wrap(err, "unable to compute working directory"))
	}
	adapters := adapter.NewRegistry()
	filesAdapter := files.New(entries, registry, adapters, files.Options{
		BatchSize:        configuration.Listing.BatchSize,
		WorkingDirectory: workingDirectory,
		HomeDirectory:    filesystem.HomeDirectory,
		Logger:           logger.Sublogger("files"),
	})
	if err := adapters.Register(filesAdapter); err != nil {
		return nil, errors.Wrap(err, "unable to register filesystem adapter")
	}

	// Success.
	return &application{
		configuration: configuration,
		logger:        logger,
		entries:       entries,
		columns:       registry,
		adapters:      adapters,
		files:         filesAdapter,
		filter:        filter,
	}, nil
}

// resolve converts a command line argument to a normalized location along with
// the adapter responsible for it. Arguments containing a scheme separator are
// parsed as locations and all others are treated as native paths.
func (a *application) resolve(argument string, directory bool) (location.Location, adapter.Adapter, error) {
	if !strings.Contains(argument, "://") {
		l, err := files.NormalizePath(argument, directory)
		if err != nil {
			return location.Location{}, nil, err
		}
		return l, a.files, nil
	}
	l, err := location.Parse(argument)
	if err != nil {
		return location.Location{}, nil, errors.Wrap(err, "invalid location")
	}
	if directory {
		l = l.AsDirectory()
	}
	handler, err := a.adapters.ForLocation(l)
	if err != nil {
		return location.Location{}, nil, err
	}
	if l, err = handler.Normalize(l); err != nil {
		return location.Location{}, nil, errors.Wrap(err, "unable to normalize location")
	}
	return l, handler, nil
}
