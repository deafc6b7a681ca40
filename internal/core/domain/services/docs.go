// Package services contains stateless domain services: logic that spans
// aggregates and fits no single one, free of IO so it stays trivially
// testable.
package services
