// Package kernel contains shared value objects used across the domain model.
//
// The kernel holds primitives that every aggregate depends on: identifiers
// (UUID) and monetary amounts (Money). All kernel types are immutable value
// objects constructed through factory functions that enforce their
// invariants; zero values are invalid and fail Validate.
package kernel
