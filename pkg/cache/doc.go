// Package cache provides the entry cache populated by directory listings. It
// tracks the entries of each listed directory, brackets listing updates so
// that a refreshed generation of entries replaces the prior one atomically,
// and bounds the number of cached directories on an LRU basis.
package cache
