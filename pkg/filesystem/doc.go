// Package filesystem provides the filesystem primitives used by dirbuf:
// metadata snapshots, symbolic link resolution, the permission codec, path
// normalization and shortening, writability probing, and the recursive copy,
// move, and removal operations used when applying actions.
package filesystem
