package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned by Validate for parcels that did
	// not come from NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// Kind distinguishes documents from goods; pricing differs per kind.
type Kind string

const (
	KindDocument    Kind = "document"
	KindNonDocument Kind = "non-document"
)

// Party is the sender or receiver of a parcel.
type Party struct {
	Name     string
	Region   string
	District string
	Address  string
	Contact  string
}

// Details is the client-supplied content of a new parcel.
type Details struct {
	// TrackingNumber is generated when zero.
	TrackingNumber kernel.TrackingNumber
	Title          string
	Kind           Kind
	WeightKg       float64
	Sender         Party
	Receiver       Party
	// Cost is in minor currency units.
	Cost       int64
	OwnerEmail string
}

// Payment holds what is known about the gateway payment of a parcel.
type Payment struct {
	IntentID    string
	Amount      int64
	PaidAt      time.Time
	ConfirmedAt *time.Time
}

// Parcel is the aggregate root of the lifecycle engine.
type Parcel struct {
	id             kernel.UUID
	trackingNumber kernel.TrackingNumber
	title          string
	kind           Kind
	weightKg       float64
	sender         Party
	receiver       Party
	cost           int64
	ownerEmail     string

	status        Status
	paymentStatus PaymentStatus
	payment       *Payment
	assignedRider *AssignedRider

	lastUpdateNote string
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

// NewParcel creates a pending, unpaid, unassigned parcel. All validation
// failures are joined into one error.
func NewParcel(id kernel.UUID, d Details, now time.Time) (*Parcel, error) {
	p := &Parcel{
		status:        StatusPending,
		paymentStatus: PaymentUnset,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if d.TrackingNumber.IsZero() {
		d.TrackingNumber = kernel.NewTrackingNumber()
	}

	if err := errors.Join(
		p.setID(id),
		p.setTitle(d.Title),
		p.setKind(d.Kind),
		p.setWeight(d.WeightKg),
		p.setParty("sender", d.Sender, &p.sender),
		p.setParty("receiver", d.Receiver, &p.receiver),
		p.setCost(d.Cost),
		p.setOwnerEmail(d.OwnerEmail),
	); err != nil {
		return nil, err
	}
	p.trackingNumber = d.TrackingNumber

	return p, nil
}

// State is the full persisted form of a parcel, used by repositories to
// rebuild the aggregate.
type State struct {
	ID             kernel.UUID
	TrackingNumber kernel.TrackingNumber
	Details        Details
	Status         Status
	PaymentStatus  PaymentStatus
	Payment        *Payment
	AssignedRider  *AssignedRider
	LastUpdateNote string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RestoreParcel rebuilds a parcel from storage without applying creation
// defaults. Enum values are re-validated.
func RestoreParcel(s State) (*Parcel, error) {
	if err := s.ID.Validate(); err != nil {
		return nil, err
	}
	if s.TrackingNumber.IsZero() {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}
	if err := s.Status.Validate(); err != nil {
		return nil, err
	}
	if _, err := ParsePaymentStatus(string(s.PaymentStatus)); err != nil {
		return nil, err
	}

	return &Parcel{
		id:             s.ID,
		trackingNumber: s.TrackingNumber,
		title:          s.Details.Title,
		kind:           s.Details.Kind,
		weightKg:       s.Details.WeightKg,
		sender:         s.Details.Sender,
		receiver:       s.Details.Receiver,
		cost:           s.Details.Cost,
		ownerEmail:     s.Details.OwnerEmail,
		status:         s.Status,
		paymentStatus:  s.PaymentStatus,
		payment:        s.Payment,
		assignedRider:  s.AssignedRider,
		lastUpdateNote: s.LastUpdateNote,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
		isConstructed:  true,
	}, nil
}

// Validate reports parcels that bypassed the constructors.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

func (p *Parcel) ID() kernel.UUID                      { return p.id }
func (p *Parcel) TrackingNumber() kernel.TrackingNumber { return p.trackingNumber }
func (p *Parcel) Title() string                        { return p.title }
func (p *Parcel) Kind() Kind                           { return p.kind }
func (p *Parcel) WeightKg() float64                    { return p.weightKg }
func (p *Parcel) Sender() Party                        { return p.sender }
func (p *Parcel) Receiver() Party                      { return p.receiver }
func (p *Parcel) Cost() int64                          { return p.cost }
func (p *Parcel) OwnerEmail() string                   { return p.ownerEmail }
func (p *Parcel) Status() Status                       { return p.status }
func (p *Parcel) PaymentStatus() PaymentStatus         { return p.paymentStatus }
func (p *Parcel) LastUpdateNote() string               { return p.lastUpdateNote }
func (p *Parcel) CreatedAt() time.Time                 { return p.createdAt }
func (p *Parcel) UpdatedAt() time.Time                 { return p.updatedAt }

// Payment returns a copy of the payment details, or nil before any payment.
func (p *Parcel) Payment() *Payment {
	if p.payment == nil {
		return nil
	}
	cp := *p.payment
	return &cp
}

// AssignedRider returns the assignment snapshot, or nil while unassigned.
func (p *Parcel) AssignedRider() *AssignedRider {
	if p.assignedRider == nil {
		return nil
	}
	cp := *p.assignedRider
	return &cp
}

// Details returns the client-supplied content, e.g. for ledger snapshots.
func (p *Parcel) Details() Details {
	return Details{
		TrackingNumber: p.trackingNumber,
		Title:          p.title,
		Kind:           p.kind,
		WeightKg:       p.weightKg,
		Sender:         p.sender,
		Receiver:       p.receiver,
		Cost:           p.cost,
		OwnerEmail:     p.ownerEmail,
	}
}

// IsOwnedBy compares against a normalized email.
func (p *Parcel) IsOwnedBy(email string) bool {
	return p.ownerEmail == email
}

// ChangeStatus sets any status of the closed set. Ordering is not enforced:
// moving delivered back to pending is an admin decision, not an engine error.
// An empty note keeps the previous one.
func (p *Parcel) ChangeStatus(status Status, note string, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	if note = strings.TrimSpace(note); note != "" {
		p.lastUpdateNote = note
	}
	p.updatedAt = now
	return nil
}

// ApplyClientPayment records a payment reported by the client. The status
// becomes paid for a "paid" report and pending for any other, and the
// payment status takes the reported value. It reports whether anything
// changed, so a repeated identical report is a no-op.
func (p *Parcel) ApplyClientPayment(reported PaymentStatus, intentID string, amount int64, paidAt, now time.Time) (bool, error) {
	if _, err := ParseReportedPaymentStatus(string(reported)); err != nil {
		return false, err
	}
	if strings.TrimSpace(intentID) == "" {
		return false, errs.NewValueIsRequiredError("paymentIntentId")
	}
	if amount < 0 {
		return false, errs.NewValueIsInvalidErrorWithCause("paymentAmount", fmt.Errorf("%d is negative", amount))
	}

	status := StatusPending
	if reported == PaymentPaid {
		status = StatusPaid
	}

	changed := p.status != status || p.paymentStatus != reported
	p.status = status
	p.paymentStatus = reported

	if p.payment == nil || p.payment.IntentID != intentID || p.payment.Amount != amount || !p.payment.PaidAt.Equal(paidAt) {
		confirmedAt := (*time.Time)(nil)
		if p.payment != nil {
			confirmedAt = p.payment.ConfirmedAt
		}
		p.payment = &Payment{IntentID: intentID, Amount: amount, PaidAt: paidAt, ConfirmedAt: confirmedAt}
		changed = true
	}

	if changed {
		p.updatedAt = now
	}
	return changed, nil
}

// ConfirmGatewayPayment applies a verified payment_intent.succeeded event:
// the parcel becomes paid and the payment confirmed, whatever the previous
// state. Re-applying the same confirmation is harmless.
func (p *Parcel) ConfirmGatewayPayment(intentID string, amount int64, confirmedAt, now time.Time) error {
	if strings.TrimSpace(intentID) == "" {
		return errs.NewValueIsRequiredError("paymentIntentId")
	}

	p.status = StatusPaid
	p.paymentStatus = PaymentConfirmed

	paidAt := confirmedAt
	if p.payment != nil && p.payment.IntentID == intentID && !p.payment.PaidAt.IsZero() {
		paidAt = p.payment.PaidAt
	}
	if amount == 0 && p.payment != nil {
		amount = p.payment.Amount
	}
	ts := confirmedAt
	p.payment = &Payment{IntentID: intentID, Amount: amount, PaidAt: paidAt, ConfirmedAt: &ts}
	p.updatedAt = now
	return nil
}

// CanAssignRider checks the assignment preconditions without mutating.
// A parcel qualifies only when both its status and its payment status are
// paid; the assigned check comes after that.
func (p *Parcel) CanAssignRider() error {
	if p.paymentStatus != PaymentPaid || p.status != StatusPaid {
		return errs.NewPreconditionFailedError(fmt.Sprintf(
			"parcel must be paid before assignment (status %s, payment %s)", p.status, p.paymentStatus))
	}
	if p.assignedRider != nil {
		return errs.NewConflictError(fmt.Sprintf("parcel %s is already assigned to rider %s",
			p.trackingNumber, p.assignedRider.RiderID))
	}
	return nil
}

// AssignRider attaches the rider snapshot and moves the parcel to assigned.
// There is no reassignment.
func (p *Parcel) AssignRider(rider AssignedRider) error {
	if err := rider.Validate(); err != nil {
		return err
	}
	if err := p.CanAssignRider(); err != nil {
		return err
	}
	p.assignedRider = &rider
	p.status = StatusAssigned
	p.updatedAt = rider.AssignedAt
	return nil
}

func (p *Parcel) setID(v kernel.UUID) error {
	if err := v.Validate(); err != nil {
		return err
	}
	p.id = v
	return nil
}

func (p *Parcel) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	p.title = title
	return nil
}

func (p *Parcel) setKind(kind Kind) error {
	switch kind {
	case "":
		p.kind = KindNonDocument
	case KindDocument, KindNonDocument:
		p.kind = kind
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not document or non-document", kind))
	}
	return nil
}

func (p *Parcel) setWeight(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%g is negative", weight))
	}
	p.weightKg = weight
	return nil
}

func (p *Parcel) setParty(role string, party Party, dst *Party) error {
	party.Name = strings.TrimSpace(party.Name)
	party.Region = strings.TrimSpace(party.Region)

	var problems []error
	if party.Name == "" {
		problems = append(problems, errs.NewValueIsRequiredError(role+"Name"))
	}
	if party.Region == "" {
		problems = append(problems, errs.NewValueIsRequiredError(role+"Region"))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}
	*dst = party
	return nil
}

func (p *Parcel) setCost(cost int64) error {
	if cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cost", fmt.Errorf("%d is negative", cost))
	}
	p.cost = cost
	return nil
}

func (p *Parcel) setOwnerEmail(email string) error {
	normalized, err := kernel.NormalizeEmail("userEmail", email)
	if err != nil {
		return err
	}
	p.ownerEmail = normalized
	return nil
}
