// Package textutil derives short ASCII identifiers from song names for cache
// keys and lock file names.
package textutil
