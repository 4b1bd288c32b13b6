package badger

import (
	"fmt"

	"github.com/poiesic/chatalogue/core"
)

// Key prefixes for different data types
const (
	centroidRecordPrefix     = "cenrec"
	centroidModelLabelPrefix = "cenmol"
)

// makeCentroidKey generates a key for a centroid by ID.
func makeCentroidKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", centroidRecordPrefix, id))
}

// makeCentroidTupleKey generates a composite key for centroid lookup by
// (model, label). Format: prefix:model:label
func makeCentroidTupleKey(model, label string) []byte {
	return []byte(centroidModelLabelPrefix + ":" + model + ":" + label)
}

// makeCentroidModelPrefix generates the key prefix covering every centroid
// of a model.
func makeCentroidModelPrefix(model string) []byte {
	return []byte(centroidModelLabelPrefix + ":" + model + ":")
}
