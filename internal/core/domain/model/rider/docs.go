// Package rider models delivery-rider applications and their review
// lifecycle.
//
//	pending ──> active
//	   │          │
//	   └──> rejected <┘
//
// Transitions are not ordered: an admin may move an application between any
// two statuses. Becoming active grants the applicant a rider user account.
package rider
