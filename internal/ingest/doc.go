// Package ingest turns scan and match output into catalog entries. It
// covers the bulk path, which records every document a matching run
// produced, and the single-file path, which places a new document (and
// optional media file) into the library before cataloging it.
package ingest
