// Package dirbuf provides build and runtime information about dirbuf itself.
package dirbuf
