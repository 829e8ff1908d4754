// Package types defines the shape entities, derived metrics, query
// interfaces, and standard errors shared by every quadra package.
//
// Shapes are plain values: constructing one never fails, and validity is a
// question asked of the geometry services, not a constructor precondition.
package types
