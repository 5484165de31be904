// Package logging provides a nil-safe, leveled logger built on top of the
// standard log package.
package logging
