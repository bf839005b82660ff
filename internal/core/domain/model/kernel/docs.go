// Package kernel holds the value objects shared by every aggregate of the marketplace:
// UUID identifiers and Money amounts.
//
// Both are immutable and have an invalid zero value; Validate reports whether a value
// was built through a constructor.
package kernel
