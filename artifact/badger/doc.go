// Package badger implements the artifact repositories over BadgerDB.
package badger
