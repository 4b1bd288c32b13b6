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


package plan

import "errors"

var (
	// ErrSubqueryRequired is returned when a nil subquery is passed to Build.
	ErrSubqueryRequired = errors.New("subquery required")

	// ErrNoFilter is returned when a subquery carries no entity that can
	// scope the lookup.
	ErrNoFilter = errors.New("subquery has no filter entity")

	// ErrNotExecutable is returned when the subquery's intent does not map
	// to a database lookup.
	ErrNotExecutable = errors.New("intent is not a database lookup")
)
