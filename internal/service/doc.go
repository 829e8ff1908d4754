// Package service implements the shape-specific algorithms: measurements,
// validity checks, shape-class predicates, and plane slicing. Services are
// stateless and safe for concurrent use.
//
// Measurements assume but do not enforce validity. Degenerate geometry is
// never an error; it surfaces as false, zero, or "no plane".
package service
