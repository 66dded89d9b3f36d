// Package analyze implements the heuristic analyzers and their insight generators.
// Analyzers are pure: they never mutate their input and never return errors.
package analyze
