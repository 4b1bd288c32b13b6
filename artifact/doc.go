// Package artifact defines storage for trained classifier artifacts and
// their MUS serialization. The badger subpackage provides the production
// implementation.
package artifact
