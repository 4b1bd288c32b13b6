// Package sqlite implements the course catalog repository over a SQLite
// database using the pure-Go modernc.org/sqlite driver.
package sqlite
