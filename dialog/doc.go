// Package dialog tracks conversation state across turns: the active course
// topic, pronoun resolution against it, topic-change detection, and bounded
// per-session history.
package dialog
