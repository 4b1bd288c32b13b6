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

import "fmt"

// ValidateSubquery validates a Subquery according to domain rules.
//
// Validation rules:
//   - Text must not be empty
//   - Intent must be a known label
//
// NOT validated (filled during resolution):
//   - CourseCodes/Instructors/Weekdays (may be empty until context lookup)
//   - Attributes (empty means "all")
func ValidateSubquery(sub *Subquery) error {
	if sub == nil {
		return fmt.Errorf("%w: subquery is nil", ErrInvalidSubquery)
	}

	if sub.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSubquery, ErrEmptyUtterance)
	}

	if err := ValidateIntent(sub.Intent); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSubquery, err)
	}

	return nil
}

// ValidateIntent validates that an Intent has a known label.
func ValidateIntent(intent Intent) error {
	switch intent {
	case IntentCourseInfo, IntentInstructorLookup, IntentCourseLocation,
		IntentCourseTime, IntentScheduleQuery, IntentChitchat, IntentUnknown:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownIntent, intent)
}

// ValidateCentroid validates a Centroid according to domain rules.
//
// Validation rules:
//   - Label must not be empty
//   - Model must not be empty
//   - Vector must not be empty
func ValidateCentroid(centroid *Centroid) error {
	if centroid == nil {
		return fmt.Errorf("%w: centroid is nil", ErrInvalidCentroid)
	}

	if centroid.Label == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCentroid, ErrEmptyCentroidLabel)
	}

	if centroid.Model == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCentroid, ErrEmptyCentroidModel)
	}

	if len(centroid.Vector) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCentroid, ErrEmptyCentroidVector)
	}

	return nil
}
