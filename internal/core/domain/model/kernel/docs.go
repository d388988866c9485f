// Package kernel provides the domain primitives shared by the warehouse model.
//
// The package includes:
//   - UUID: internal identifier of containers and locations
//   - Code: a trimmed, non-blank human-assigned code (container, location, SKU)
//   - ParseQuantity / ValidateQuantity: the non-negative integer quantity rules
//
// Values arriving from scanners and forms are untyped text. The constructors in
// this package are the single place where that text is turned into validated
// values, so the rest of the model never sees blank codes or non-finite numbers.
package kernel
