package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mmynk/kasrt/internal/models"
	"github.com/mmynk/kasrt/internal/storage/sqlite"
)

func newTestStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func strPtr(s string) *string { return &s }

func amtPtr(a models.Amount) *models.Amount { return &a }

func typPtr(pt models.PaymentType) *models.PaymentType { return &pt }

func isValidation(err error) bool {
	var ve *models.ValidationError
	return errors.As(err, &ve)
}

func TestCreateResident_RequiresName(t *testing.T) {
	svc := NewLedgerService(newTestStore(t))
	ctx := context.Background()

	if _, err := svc.CreateResident(ctx, models.ResidentUpdate{}); !isValidation(err) {
		t.Errorf("expected validation error for missing name, got %v", err)
	}
	if _, err := svc.CreateResident(ctx, models.ResidentUpdate{Name: strPtr("")}); !isValidation(err) {
		t.Errorf("expected validation error for empty name, got %v", err)
	}

	r, err := svc.CreateResident(ctx, models.ResidentUpdate{Name: strPtr("Budi")})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if r.ID == "" {
		t.Error("expected an assigned id")
	}

	residents, err := svc.ListResidents(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(residents) != 1 || residents[0].Name != "Budi" {
		t.Errorf("expected exactly one resident named Budi, got %+v", residents)
	}
}

func TestUpdateResident_PartialPreservesFields(t *testing.T) {
	svc := NewLedgerService(newTestStore(t))
	ctx := context.Background()

	r, err := svc.CreateResident(ctx, models.ResidentUpdate{
		Name:    strPtr("Budi"),
		Address: strPtr("Jl. Melati 3"),
		Phone:   strPtr("0812"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.UpdateResident(ctx, r.ID, models.ResidentUpdate{Phone: strPtr("0857")}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	residents, _ := svc.ListResidents(ctx)
	got := residents[0]
	if got.Phone != "0857" {
		t.Errorf("expected updated phone, got %s", got.Phone)
	}
	if got.Name != "Budi" || got.Address != "Jl. Melati 3" || got.ID != r.ID {
		t.Errorf("partial update touched other fields: %+v", got)
	}

	// Patching name to empty is rejected, not applied.
	if err := svc.UpdateResident(ctx, r.ID, models.ResidentUpdate{Name: strPtr("")}); !isValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestUpdateResident_NotFound(t *testing.T) {
	svc := NewLedgerService(newTestStore(t))
	err := svc.UpdateResident(context.Background(), "missing", models.ResidentUpdate{Name: strPtr("X")})
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteResident_Idempotence(t *testing.T) {
	svc := NewLedgerService(newTestStore(t))
	ctx := context.Background()

	r, err := svc.CreateResident(ctx, models.ResidentUpdate{Name: strPtr("Budi")})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteResident(ctx, r.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.DeleteResident(ctx, r.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestCreatePayment_Validation(t *testing.T) {
	svc := NewLedgerService(newTestStore(t))
	ctx := context.Background()

	cases := []struct {
		name string
		in   models.PaymentUpdate
	}{
		{"missing amount", models.PaymentUpdate{ResidentID: strPtr("r1"), Date: strPtr("2024-03-01")}},
		{"missing resident", models.PaymentUpdate{Date: strPtr("2024-03-01"), Amount: amtPtr(100)}},
		{"missing date", models.PaymentUpdate{ResidentID: strPtr("r1"), Amount: amtPtr(100)}},
		{"bad date", models.PaymentUpdate{ResidentID: strPtr("r1"), Date: strPtr("01/03/2024"), Amount: amtPtr(100)}},
		{"bad type", models.PaymentUpdate{ResidentID: strPtr("r1"), Date: strPtr("2024-03-01"), Amount: amtPtr(100), Type: typPtr("tithe")}},
		{"negative amount", models.PaymentUpdate{ResidentID: strPtr("r1"), Date: strPtr("2024-03-01"), Amount: amtPtr(-1)}},
	}
	for _, tc := range cases {
		if _, err := svc.CreatePayment(ctx, tc.in); !isValidation(err) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}

	// Zero is a valid amount; type defaults to dues.
	p, err := svc.CreatePayment(ctx, models.PaymentUpdate{
		ResidentID: strPtr("r1"),
		Date:       strPtr("2024-03-01"),
		Amount:     amtPtr(0),
	})
	if err != nil {
		t.Fatalf("zero-amount create failed: %v", err)
	}
	if p.Type != models.PaymentDues {
		t.Errorf("expected default type dues, got %s", p.Type)
	}
}

func TestCreateExpense_Validation(t *testing.T) {
	svc := NewLedgerService(newTestStore(t))
	ctx := context.Background()

	if _, err := svc.CreateExpense(ctx, models.ExpenseUpdate{Date: strPtr("2024-03-01")}); !isValidation(err) {
		t.Errorf("expected validation error for missing amount, got %v", err)
	}
	if _, err := svc.CreateExpense(ctx, models.ExpenseUpdate{Amount: amtPtr(100)}); !isValidation(err) {
		t.Errorf("expected validation error for missing date, got %v", err)
	}

	e, err := svc.CreateExpense(ctx, models.ExpenseUpdate{Date: strPtr("2024-03-01"), Amount: amtPtr(100)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Partial update keeps the other fields.
	if err := svc.UpdateExpense(ctx, e.ID, models.ExpenseUpdate{Note: strPtr("gardening")}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	expenses, _ := svc.ListExpenses(ctx)
	if expenses[0].Note != "gardening" || expenses[0].Amount != 100 || expenses[0].Date != "2024-03-01" {
		t.Errorf("partial update mismatch: %+v", expenses[0])
	}
}

func TestDeleteResident_DoesNotCascadePayments(t *testing.T) {
	svc := NewLedgerService(newTestStore(t))
	ctx := context.Background()

	r, err := svc.CreateResident(ctx, models.ResidentUpdate{Name: strPtr("Budi")})
	if err != nil {
		t.Fatalf("create resident failed: %v", err)
	}
	if _, err := svc.CreatePayment(ctx, models.PaymentUpdate{
		ResidentID: strPtr(r.ID),
		Date:       strPtr("2024-03-01"),
		Amount:     amtPtr(100),
	}); err != nil {
		t.Fatalf("create payment failed: %v", err)
	}

	if err := svc.DeleteResident(ctx, r.ID); err != nil {
		t.Fatalf("delete resident failed: %v", err)
	}

	payments, err := svc.ListPayments(ctx)
	if err != nil {
		t.Fatalf("list payments failed: %v", err)
	}
	if len(payments) != 1 {
		t.Errorf("expected payment to survive resident deletion, got %d payments", len(payments))
	}
}
