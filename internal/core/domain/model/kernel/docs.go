// Package kernel holds the value objects shared by every parcel-service
// aggregate: identifiers, tracking numbers and normalized email addresses.
//
// All of them are immutable and their zero values are invalid; use the
// constructors.
package kernel
