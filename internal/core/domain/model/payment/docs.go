// Package payment models the append-only payment ledger and the verified
// gateway events that feed it.
//
// A Record is written once per distinct payment intent id and never
// modified. Records snapshot the parcel as it was when the payment was
// reconciled.
package payment
