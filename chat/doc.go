// Package chat orchestrates the question answering pipeline: semantic
// parsing, conversation context resolution, catalog lookups and answer
// rendering, with optional LLM polishing of the deterministic answer.
package chat
