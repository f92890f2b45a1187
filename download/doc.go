// Package download fetches ontology files over HTTP into an on-disk cache.
//
// A Client owns one cache directory. Fetch is cache-first: a file already
// present under its cache name is returned without touching the network
// unless the client was built with WithForce. Writes are atomic, temp file
// then rename, so a cancelled download never leaves a partial file behind.
// FetchAll downloads several resources with bounded concurrency.
//
// Errors: ErrEmptyURL for a blank URL, ErrBadStatus for any non-2xx
// response.
package download
