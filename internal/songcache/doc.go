// Package songcache stores parsed songs so repeated renders of an unchanged
// transcript skip classification.
//
// Entries are keyed by a stable identifier derived from the transcript path
// and stamped with a content digest of the raw text. A lookup whose digest
// differs from the stored one is a miss. Three backends share the Cache
// interface: an in-process map, a SQLite database and Redis. Load wraps any
// backend with the hit, miss and repair logic used by the CLI.
package songcache
