// Package models defines the core domain models for the RT cash ledger.
//
// # Models
//
//   - Resident: a household registered with the association
//   - Payment: money coming in (dues or donation), soft-linked to a resident
//   - Expense: money going out
//   - Settings: the singleton ledger configuration (initial cash, warning threshold)
//   - User: a login account with a role (admin or viewer)
//
// # Design Principles
//
// 1. **No derived state**: the cash balance is always recomputed from
// Settings + Payments + Expenses, never stored on a model.
// 2. **Soft references**: Payment.ResidentID is an ID string, not a pointer;
// deleting a resident leaves its payments in place and readers render the
// resident name as unknown.
// 3. **Exact money**: amounts are int64 cents (see Amount), never float64.
package models
