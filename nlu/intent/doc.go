// Package intent implements the utterance intent classifier.
//
// The classifier is an embedding nearest-centroid model: at train time each
// labeled example utterance is embedded and the vectors are averaged per
// label; at query time the utterance embedding is compared to every label
// centroid by cosine similarity and the similarities are softmaxed into a
// confidence. Centroids are persisted in the artifact store so startup does
// not re-embed the training set.
package intent
