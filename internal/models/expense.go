package models

// Expense represents money going out of the ledger.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format), immutable.
	ID string `json:"id"`

	// Date is the calendar date of the expense, formatted 2006-01-02.
	Date string `json:"date"`

	// Amount is the expense value in cents, never negative.
	Amount Amount `json:"amount"`

	// Note is an optional free-form remark.
	Note string `json:"note,omitempty"`
}

// ExpenseUpdate carries a partial update; nil fields are left untouched.
type ExpenseUpdate struct {
	Date   *string `json:"date"`
	Amount *Amount `json:"amount"`
	Note   *string `json:"note"`
}

// Apply copies the supplied fields onto e, preserving its ID.
func (u ExpenseUpdate) Apply(e *Expense) {
	if u.Date != nil {
		e.Date = *u.Date
	}
	if u.Amount != nil {
		e.Amount = *u.Amount
	}
	if u.Note != nil {
		e.Note = *u.Note
	}
}
