package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/mmynk/kasrt/internal/calculator"
	"github.com/mmynk/kasrt/internal/models"
	"github.com/mmynk/kasrt/internal/storage"
)

// ReportService derives read-only projections from the ledger: the summary
// totals, recent-activity lists, and a CSV export. Everything is recomputed
// from source records on every call; nothing is cached.
type ReportService struct {
	store storage.Store
}

// NewReportService creates a new ReportService with the given storage backend.
func NewReportService(store storage.Store) *ReportService {
	return &ReportService{store: store}
}

// RecentPayment is a payment row with the resident name resolved for
// display. Unknown residents (deleted or never existed) render as "-".
type RecentPayment struct {
	ID           string             `json:"id"`
	Date         string             `json:"date"`
	ResidentName string             `json:"resident_name"`
	Type         models.PaymentType `json:"type"`
	Amount       models.Amount      `json:"amount"`
	Note         string             `json:"note,omitempty"`
}

// RecentActivity is the dashboard projection: the latest payments and
// expenses, most recent first.
type RecentActivity struct {
	Payments []RecentPayment   `json:"payments"`
	Expenses []*models.Expense `json:"expenses"`
}

func (s *ReportService) snapshot(ctx context.Context) (*models.Settings, []*models.Payment, []*models.Expense, error) {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	payments, err := s.store.ListPayments(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return settings, payments, expenses, nil
}

// Summary recomputes the balance projection from the current ledger state.
func (s *ReportService) Summary(ctx context.Context) (calculator.Summary, error) {
	settings, payments, expenses, err := s.snapshot(ctx)
	if err != nil {
		return calculator.Summary{}, err
	}
	return calculator.Summarize(settings, payments, expenses), nil
}

// residentNames builds an ID-to-name lookup for resolving soft references.
func (s *ReportService) residentNames(ctx context.Context) (map[string]string, error) {
	residents, err := s.store.ListResidents(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(residents))
	for _, r := range residents {
		names[r.ID] = r.Name
	}
	return names, nil
}

func resolveName(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "-"
}

// Recent returns the latest n payments and expenses with resident names
// resolved.
func (s *ReportService) Recent(ctx context.Context, n int) (*RecentActivity, error) {
	payments, err := s.store.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	names, err := s.residentNames(ctx)
	if err != nil {
		return nil, err
	}

	recent := &RecentActivity{
		Payments: make([]RecentPayment, 0, n),
		Expenses: calculator.Recent(expenses, n),
	}
	for _, p := range calculator.Recent(payments, n) {
		recent.Payments = append(recent.Payments, RecentPayment{
			ID:           p.ID,
			Date:         p.Date,
			ResidentName: resolveName(names, p.ResidentID),
			Type:         p.Type,
			Amount:       p.Amount,
			Note:         p.Note,
		})
	}
	return recent, nil
}

// ExportCSV streams the full ledger report: a summary block followed by
// every payment and expense, most recent first.
func (s *ReportService) ExportCSV(ctx context.Context, w io.Writer) error {
	settings, payments, expenses, err := s.snapshot(ctx)
	if err != nil {
		return err
	}
	names, err := s.residentNames(ctx)
	if err != nil {
		return err
	}

	summary := calculator.Summarize(settings, payments, expenses)
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"RT cash report", time.Now().Format("2006-01-02")},
		{"initial_cash", summary.InitialCash.String()},
		{"total_payments", summary.TotalPayments.String()},
		{"total_expenses", summary.TotalExpenses.String()},
		{"current_cash", summary.CurrentCash.String()},
		{},
		{"payments"},
		{"date", "resident", "type", "amount", "note"},
	}
	for _, p := range payments {
		rows = append(rows, []string{p.Date, resolveName(names, p.ResidentID), string(p.Type), p.Amount.String(), p.Note})
	}
	rows = append(rows, []string{}, []string{"expenses"}, []string{"date", "amount", "note"})
	for _, e := range expenses {
		rows = append(rows, []string{e.Date, e.Amount.String(), e.Note})
	}

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
