package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/kasrt/internal/models"
	"github.com/mmynk/kasrt/internal/storage"
)

// LedgerService implements CRUD over the three entity sets, enforcing the
// numeric and required-field invariants before anything reaches the store.
// Role gating happens in the HTTP layer; by the time a call lands here it
// is already authorized.
type LedgerService struct {
	store storage.Store
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

const dateLayout = "2006-01-02"

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// ---- Residents ----

// CreateResident validates and persists a new resident, returning it with
// its assigned ID.
func (s *LedgerService) CreateResident(ctx context.Context, in models.ResidentUpdate) (*models.Resident, error) {
	if in.Name == nil || *in.Name == "" {
		return nil, models.Validationf("name", "required")
	}

	r := &models.Resident{}
	in.Apply(r)

	if err := s.store.CreateResident(ctx, r); err != nil {
		return nil, fmt.Errorf("create resident: %w", err)
	}

	slog.Info("resident created", "resident_id", r.ID, "name", r.Name)
	return r, nil
}

// UpdateResident applies a partial update to an existing resident.
func (s *LedgerService) UpdateResident(ctx context.Context, id string, in models.ResidentUpdate) error {
	r, err := s.store.GetResident(ctx, id)
	if err != nil {
		return err
	}

	in.Apply(r)
	if r.Name == "" {
		return models.Validationf("name", "required")
	}

	if err := s.store.UpdateResident(ctx, r); err != nil {
		return fmt.Errorf("update resident: %w", err)
	}

	slog.Info("resident updated", "resident_id", id)
	return nil
}

// DeleteResident removes a resident. Its payments are left in place; the
// report layer renders their resident name as unknown.
func (s *LedgerService) DeleteResident(ctx context.Context, id string) error {
	if err := s.store.DeleteResident(ctx, id); err != nil {
		return err
	}
	slog.Info("resident deleted", "resident_id", id)
	return nil
}

// ListResidents returns all residents ordered by name ascending.
func (s *LedgerService) ListResidents(ctx context.Context) ([]*models.Resident, error) {
	return s.store.ListResidents(ctx)
}

// ---- Payments ----

func validatePayment(p *models.Payment) error {
	if p.ResidentID == "" {
		return models.Validationf("resident_id", "required")
	}
	if p.Date == "" {
		return models.Validationf("date", "required")
	}
	if !validDate(p.Date) {
		return models.Validationf("date", "must be formatted %s", dateLayout)
	}
	if p.Type == "" {
		p.Type = models.PaymentDues
	}
	if !p.Type.Valid() {
		return models.Validationf("type", "must be %s or %s", models.PaymentDues, models.PaymentDonation)
	}
	if p.Amount < 0 {
		return models.Validationf("amount", "must not be negative")
	}
	return nil
}

// CreatePayment validates and persists a new payment. The amount field is
// mandatory; zero is a valid amount but an absent one is not.
func (s *LedgerService) CreatePayment(ctx context.Context, in models.PaymentUpdate) (*models.Payment, error) {
	if in.Amount == nil {
		return nil, models.Validationf("amount", "required")
	}

	p := &models.Payment{}
	in.Apply(p)
	if err := validatePayment(p); err != nil {
		return nil, err
	}

	if err := s.store.CreatePayment(ctx, p); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	slog.Info("payment created", "payment_id", p.ID, "resident_id", p.ResidentID, "amount", p.Amount)
	return p, nil
}

// UpdatePayment applies a partial update to an existing payment.
func (s *LedgerService) UpdatePayment(ctx context.Context, id string, in models.PaymentUpdate) error {
	p, err := s.store.GetPayment(ctx, id)
	if err != nil {
		return err
	}

	in.Apply(p)
	if err := validatePayment(p); err != nil {
		return err
	}

	if err := s.store.UpdatePayment(ctx, p); err != nil {
		return fmt.Errorf("update payment: %w", err)
	}

	slog.Info("payment updated", "payment_id", id)
	return nil
}

// DeletePayment removes a payment.
func (s *LedgerService) DeletePayment(ctx context.Context, id string) error {
	if err := s.store.DeletePayment(ctx, id); err != nil {
		return err
	}
	slog.Info("payment deleted", "payment_id", id)
	return nil
}

// ListPayments returns all payments, most recent date first.
func (s *LedgerService) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	return s.store.ListPayments(ctx)
}

// ---- Expenses ----

func validateExpense(e *models.Expense) error {
	if e.Date == "" {
		return models.Validationf("date", "required")
	}
	if !validDate(e.Date) {
		return models.Validationf("date", "must be formatted %s", dateLayout)
	}
	if e.Amount < 0 {
		return models.Validationf("amount", "must not be negative")
	}
	return nil
}

// CreateExpense validates and persists a new expense.
func (s *LedgerService) CreateExpense(ctx context.Context, in models.ExpenseUpdate) (*models.Expense, error) {
	if in.Amount == nil {
		return nil, models.Validationf("amount", "required")
	}

	e := &models.Expense{}
	in.Apply(e)
	if err := validateExpense(e); err != nil {
		return nil, err
	}

	if err := s.store.CreateExpense(ctx, e); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	slog.Info("expense created", "expense_id", e.ID, "amount", e.Amount)
	return e, nil
}

// UpdateExpense applies a partial update to an existing expense.
func (s *LedgerService) UpdateExpense(ctx context.Context, id string, in models.ExpenseUpdate) error {
	e, err := s.store.GetExpense(ctx, id)
	if err != nil {
		return err
	}

	in.Apply(e)
	if err := validateExpense(e); err != nil {
		return err
	}

	if err := s.store.UpdateExpense(ctx, e); err != nil {
		return fmt.Errorf("update expense: %w", err)
	}

	slog.Info("expense updated", "expense_id", id)
	return nil
}

// DeleteExpense removes an expense.
func (s *LedgerService) DeleteExpense(ctx context.Context, id string) error {
	if err := s.store.DeleteExpense(ctx, id); err != nil {
		return err
	}
	slog.Info("expense deleted", "expense_id", id)
	return nil
}

// ListExpenses returns all expenses, most recent date first.
func (s *LedgerService) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	return s.store.ListExpenses(ctx)
}
