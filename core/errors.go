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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidSubquery indicates a Subquery failed validation.
	ErrInvalidSubquery = errors.New("invalid subquery")

	// ErrInvalidCentroid indicates a Centroid failed validation.
	ErrInvalidCentroid = errors.New("invalid centroid")

	// ErrEmptyUtterance indicates the utterance text is empty.
	ErrEmptyUtterance = errors.New("utterance cannot be empty")

	// ErrUnknownIntent indicates an intent label outside the known set.
	ErrUnknownIntent = errors.New("unknown intent label")

	// ErrEmptyCentroidLabel indicates the centroid Label field is empty.
	ErrEmptyCentroidLabel = errors.New("centroid label cannot be empty")

	// ErrEmptyCentroidModel indicates the centroid Model field is empty.
	ErrEmptyCentroidModel = errors.New("centroid model cannot be empty")

	// ErrEmptyCentroidVector indicates the centroid Vector field is empty.
	ErrEmptyCentroidVector = errors.New("centroid vector cannot be empty")
)
