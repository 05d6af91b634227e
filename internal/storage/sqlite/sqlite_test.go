package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mmynk/kasrt/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestResidentCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	r := &models.Resident{Name: "Budi", Address: "Jl. Melati 3", Phone: "0812"}
	if err := store.CreateResident(ctx, r); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if r.ID == "" {
		t.Fatal("expected store to assign an ID")
	}

	got, err := store.GetResident(ctx, r.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Budi" || got.Address != "Jl. Melati 3" || got.Phone != "0812" {
		t.Errorf("round trip mismatch: %+v", got)
	}

	got.Address = "Jl. Mawar 7"
	if err := store.UpdateResident(ctx, got); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	again, _ := store.GetResident(ctx, r.ID)
	if again.Address != "Jl. Mawar 7" {
		t.Errorf("update not persisted: %+v", again)
	}
	if again.Name != "Budi" {
		t.Errorf("update touched unrelated field: %+v", again)
	}

	if err := store.DeleteResident(ctx, r.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := store.DeleteResident(ctx, r.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
	if _, err := store.GetResident(ctx, r.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("get after delete: expected ErrNotFound, got %v", err)
	}
}

func TestListResidents_OrderedByName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Citra", "Agus", "Budi"} {
		if err := store.CreateResident(ctx, &models.Resident{Name: name}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	residents, err := store.ListResidents(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(residents) != 3 {
		t.Fatalf("expected 3 residents, got %d", len(residents))
	}
	for i, want := range []string{"Agus", "Budi", "Citra"} {
		if residents[i].Name != want {
			t.Errorf("position %d: expected %s, got %s", i, want, residents[i].Name)
		}
	}
}

func TestPaymentCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	p := &models.Payment{
		ResidentID: "r1",
		Date:       "2024-03-01",
		Type:       models.PaymentDues,
		Amount:     5000000,
		Note:       "March dues",
	}
	if err := store.CreatePayment(ctx, p); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := store.GetPayment(ctx, p.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Amount != 5000000 || got.Type != models.PaymentDues || got.Note != "March dues" {
		t.Errorf("round trip mismatch: %+v", got)
	}

	if err := store.UpdatePayment(ctx, &models.Payment{ID: "nope", Date: "2024-01-01", Type: models.PaymentDues}); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("update missing id: expected ErrNotFound, got %v", err)
	}

	if err := store.DeletePayment(ctx, p.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := store.DeletePayment(ctx, p.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestListPayments_MostRecentFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	dates := []string{"2024-01-15", "2024-03-01", "2024-02-10"}
	for _, d := range dates {
		p := &models.Payment{ResidentID: "r1", Date: d, Type: models.PaymentDues, Amount: 100}
		if err := store.CreatePayment(ctx, p); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	payments, err := store.ListPayments(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for i, want := range []string{"2024-03-01", "2024-02-10", "2024-01-15"} {
		if payments[i].Date != want {
			t.Errorf("position %d: expected %s, got %s", i, want, payments[i].Date)
		}
	}
}

func TestExpenseCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	e := &models.Expense{Date: "2024-02-01", Amount: 2000000, Note: "street lights"}
	if err := store.CreateExpense(ctx, e); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := store.GetExpense(ctx, e.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Amount != 2000000 || got.Note != "street lights" {
		t.Errorf("round trip mismatch: %+v", got)
	}

	if err := store.DeleteExpense(ctx, e.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.GetExpense(ctx, e.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("get after delete: expected ErrNotFound, got %v", err)
	}
}

func TestSettingsSingleton(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Seeded at migration time, so the first read already succeeds.
	settings, err := store.GetSettings(ctx)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if settings.InitialCash != 0 || settings.WarningThreshold != 0 {
		t.Errorf("fresh settings should be zero: %+v", settings)
	}

	if err := store.UpdateSettings(ctx, &models.Settings{InitialCash: 10000000, WarningThreshold: 500000}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	settings, err = store.GetSettings(ctx)
	if err != nil {
		t.Fatalf("get after update failed: %v", err)
	}
	if settings.InitialCash != 10000000 || settings.WarningThreshold != 500000 {
		t.Errorf("update not persisted: %+v", settings)
	}

	var count int
	if err := store.db.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly one settings row, got %d", count)
	}
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	u := models.NewUser("admin", "hash", models.RoleAdmin)
	if err := store.CreateUser(ctx, u); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := store.GetUserByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Role != models.RoleAdmin || got.PasswordHash != "hash" {
		t.Errorf("round trip mismatch: %+v", got)
	}

	if _, err := store.GetUserByUsername(ctx, "ghost"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown user, got %v", err)
	}

	// Usernames are unique.
	if err := store.CreateUser(ctx, models.NewUser("admin", "other", models.RoleViewer)); err == nil {
		t.Error("expected duplicate username to fail")
	}
}
