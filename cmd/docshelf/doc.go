// Command docshelf manages a personal document library: it scans
// folders for documents and companion media, pairs them by filename
// similarity, and catalogs the results in a local SQLite database.
package main
