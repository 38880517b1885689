// Package user models the accounts the service authenticates against.
//
// A user is keyed by normalized email. Roles are admin, user and rider.
// Rider users carry a back-reference to their rider application plus the
// contact and vehicle fields needed when a parcel is assigned to them.
package user
