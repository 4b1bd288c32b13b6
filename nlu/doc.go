// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package nlu provides abstractions for the language-understanding services
// used in chatalogue.
//
// This package defines interfaces for text embeddings, intent classification
// and answer polishing. It follows the dependency inversion principle,
// allowing the parser and chat engine to depend on abstractions rather than
// concrete model clients.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - Embedder: Generates vector embeddings from text
//   - IntentClassifier: Assigns an intent label to an utterance
//   - Responder: Polishes database facts into a natural-language answer
//
// # Implementation Packages
//
//   - nlu/openai: Production implementation using OpenAI-compatible APIs
//   - nlu/intent: Embedding-centroid intent classifier built on an Embedder
//   - nlu/mock: Test doubles for unit testing without external dependencies
//
// Public constructors (openai.NewEmbedder, openai.NewResponder, etc.) return
// interface types to enforce abstraction. Test utility constructors in
// nlu/mock return concrete types to enable assertions and behavior injection
// via function fields.
package nlu
