// Package services provides domain services that coordinate behavior spanning
// more than one aggregate instance.
//
// The package includes:
//   - Assembler: consumes a material container and produces a new product container
//
// Domain services are stateless. They change the aggregates they are given and
// leave persistence to the application layer.
package services
