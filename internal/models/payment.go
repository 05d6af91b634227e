package models

// PaymentType distinguishes recurring dues (iuran) from one-off donations.
type PaymentType string

const (
	PaymentDues     PaymentType = "dues"
	PaymentDonation PaymentType = "donation"
)

// Valid reports whether the payment type is one of the known values.
func (t PaymentType) Valid() bool {
	return t == PaymentDues || t == PaymentDonation
}

// Payment represents money coming into the ledger.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format), immutable.
	ID string `json:"id"`

	// ResidentID is a soft reference to the paying resident. It is not
	// enforced by the store; deleting a resident leaves payments in place
	// and readers resolve the name as unknown.
	ResidentID string `json:"resident_id"`

	// Date is the calendar date of the payment, formatted 2006-01-02.
	Date string `json:"date"`

	// Type is dues or donation.
	Type PaymentType `json:"type"`

	// Amount is the payment value in cents, never negative.
	Amount Amount `json:"amount"`

	// Note is an optional free-form remark.
	Note string `json:"note,omitempty"`
}

// PaymentUpdate carries a partial update; nil fields are left untouched.
type PaymentUpdate struct {
	ResidentID *string      `json:"resident_id"`
	Date       *string      `json:"date"`
	Type       *PaymentType `json:"type"`
	Amount     *Amount      `json:"amount"`
	Note       *string      `json:"note"`
}

// Apply copies the supplied fields onto p, preserving its ID.
func (u PaymentUpdate) Apply(p *Payment) {
	if u.ResidentID != nil {
		p.ResidentID = *u.ResidentID
	}
	if u.Date != nil {
		p.Date = *u.Date
	}
	if u.Type != nil {
		p.Type = *u.Type
	}
	if u.Amount != nil {
		p.Amount = *u.Amount
	}
	if u.Note != nil {
		p.Note = *u.Note
	}
}
