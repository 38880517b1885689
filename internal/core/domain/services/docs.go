// Package services provides domain services that coordinate more than one
// aggregate.
//
// The package includes:
//   - ParcelAssigner: checks a parcel and a rider together before attaching
//     the rider snapshot to the parcel
//   - RiderProvisioner: creates or upgrades the user account of an active
//     rider
//
// Services here are stateless and never touch storage; the application
// layer loads the aggregates and persists the result.
package services
