// Package mock provides test doubles for the nlu interfaces.
//
// Mocks use function-field injection: set the corresponding Func field to
// override behavior, otherwise a deterministic default is used. Call counts
// are tracked for assertion.
package mock
