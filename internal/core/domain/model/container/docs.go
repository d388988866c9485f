// Package container provides the Container aggregate and its lifecycle state
// machine.
//
// The package includes:
//   - Container: the aggregate root holding code, SKU, quantity, status and location
//   - Status: the six lifecycle states and the transitions between them
//   - Decision: the pass/fail outcome of a quality control inspection
//
// Key business rules:
//   - Idle and Empty containers hold no SKU and no quantity; every other state holds both
//   - only containers that hold material can be inspected, picked or consumed
//   - putaway changes the location only; return is allowed from every state
//   - statuses outside the enumeration are never produced by a transition
package container
