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


// Package openai provides nlu implementations backed by OpenAI-compatible
// APIs through langchaingo.
//
// The Embedder targets any OpenAI-compatible embedding endpoint (including
// local servers such as Ollama). The Responder performs answer polishing via
// chat completion and is only constructed when an API key is configured;
// without one the chat engine formats database rows directly, producing
// identical structured output with no LLM text appended.
package openai
