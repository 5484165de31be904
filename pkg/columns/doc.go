// Package columns provides the registry of metadata columns that listings can
// request, the fetchers that populate the metadata those columns require, and
// the rendering of column values for display.
package columns
