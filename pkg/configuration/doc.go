// Package configuration provides loading and validation of the dirbuf YAML
// configuration file.
package configuration
