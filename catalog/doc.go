// Package catalog defines read access to the course catalog. The sqlite
// subpackage provides the production implementation.
package catalog
