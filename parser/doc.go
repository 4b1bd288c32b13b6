// Package parser turns natural-language questions about the course catalog
// into structured semantic parses.
//
// Parsing is deterministic apart from intent classification, which is
// delegated to an nlu.IntentClassifier. A parse splits the utterance into
// clauses, classifies each clause, and extracts course codes, course titles,
// instructor surnames, weekdays, sections and requested attributes with
// rule-based extractors. Entity-less follow-up clauses inherit their subject
// from the preceding clauses.
package parser
