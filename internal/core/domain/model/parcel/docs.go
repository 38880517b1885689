// Package parcel implements the Parcel aggregate: a shipment tracked along
// two independent axes, the logistics Status and the PaymentStatus, plus an
// optional rider assignment.
//
// Key business rules:
//   - Status and PaymentStatus are closed enums; anything else is rejected
//   - ChangeStatus does not enforce an ordering between statuses
//   - payment information only moves forward: unset -> pending -> paid -> confirmed
//   - payment never pulls a parcel back from a later logistics status
//   - a rider may be assigned once, and only to a paid parcel
package parcel
