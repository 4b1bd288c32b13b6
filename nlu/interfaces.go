package nlu

import "context"

// Embedder generates vector embeddings from text for semantic similarity.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// IntentClassifier assigns an intent label to a user utterance.
// Implementations must be thread-safe for concurrent use.
type IntentClassifier interface {
	// ClassifyIntent classifies a single utterance.
	// Empty input classifies as chitchat with zero confidence rather than
	// returning an error.
	ClassifyIntent(ctx context.Context, text string) (*IntentResult, error)
}

// IntentResult is the outcome of classifying one utterance.
type IntentResult struct {
	// Primary is the best-scoring intent label.
	Primary string

	// Confidence is the score of the primary label, in [0,1].
	Confidence float64

	// TopK holds the best labels in descending score order.
	TopK []LabelScore
}

// LabelScore pairs an intent label with its classification score.
type LabelScore struct {
	Label string
	Score float64
}

// Responder turns a question plus database context into a polished
// natural-language answer. Implementations must be thread-safe.
type Responder interface {
	// Respond generates an answer to the question using the supplied
	// conversation context line and formatted database facts.
	// The completion is returned verbatim.
	Respond(ctx context.Context, question, contextLine, dbFacts string) (string, error)
}

// Provider aggregates NLU services for convenient initialization and
// lifecycle management.
type Provider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Responder returns the answer generation service, or nil when answer
	// polishing is not configured (no API credential).
	Responder() Responder

	// Close releases resources held by the provider and its services.
	Close() error
}
