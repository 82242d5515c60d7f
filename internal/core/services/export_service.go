package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	portsrepo "github.com/chaikhata/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/chaikhata/shop_ledger_app/internal/core/ports/services"
)

// exportService renders already-validated collections as CSV with a fixed
// column order, one row per record.
type exportService struct {
	transactionRepo portsrepo.TransactionRepository
	staffRepo       portsrepo.StaffRepository
}

// NewExportService creates a new ExportService.
func NewExportService(transactionRepo portsrepo.TransactionRepository, staffRepo portsrepo.StaffRepository) portssvc.ExportSvcFacade {
	return &exportService{transactionRepo: transactionRepo, staffRepo: staffRepo}
}

var _ portssvc.ExportSvcFacade = (*exportService)(nil)

var transactionCSVHeader = []string{"TransactionID", "Date", "Type", "Category", "Amount", "PaymentMethod", "Notes", "StaffID"}

var staffCSVHeader = []string{"StaffID", "Name", "Phone", "Address", "Aadhaar", "WeeklyBasePay", "TotalHeldBalance", "JoinedDate"}

// TransactionsCSV renders the transaction ledger, most recent first.
func (s *exportService) TransactionsCSV(ctx context.Context) ([]byte, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for export: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(transactionCSVHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, txn := range txns {
		record := []string{
			txn.TransactionID,
			txn.Date.UTC().Format(time.RFC3339),
			string(txn.Type),
			txn.Category,
			txn.Amount.String(),
			string(txn.PaymentMethod),
			txn.Notes,
			txn.StaffID,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// StaffCSV renders the staff collection.
func (s *exportService) StaffCSV(ctx context.Context) ([]byte, error) {
	staff, err := s.staffRepo.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff for export: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(staffCSVHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, member := range staff {
		record := []string{
			member.StaffID,
			member.Name,
			member.Phone,
			member.Address,
			member.Aadhaar,
			member.WeeklyBasePay.String(),
			member.TotalHeldBalance.String(),
			member.JoinedDate.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
