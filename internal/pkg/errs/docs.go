// Package errs provides the error kinds shared by the parcel service.
//
// Each kind follows the same pattern:
//   - a sentinel (e.g. ErrObjectNotFound) used with errors.Is
//   - a struct carrying details (e.g. ObjectNotFoundError)
//   - constructors with and without a cause
//   - Error() for the message and Unwrap() returning the sentinel
//
// Kinds:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: no matching entity
//   - InvalidStatusError, InvalidRoleError: value outside a closed enum
//   - PreconditionFailedError: entity in the wrong state for a transition
//   - ConflictError: entity already in the target state
//   - UnauthorizedError, ForbiddenError: access gate failures
//   - SignatureIsInvalidError: webhook verification failure
//   - UpstreamError: payment gateway call failure
//
// The HTTP adapter maps sentinels to status codes; nothing in this package
// knows about transports.
package errs
