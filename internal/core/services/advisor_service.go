package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chaikhata/shop_ledger_app/internal/core/domain"
	portssvc "github.com/chaikhata/shop_ledger_app/internal/core/ports/services"
	"github.com/chaikhata/shop_ledger_app/internal/dto"
	"github.com/chaikhata/shop_ledger_app/internal/middleware"
)

// minTransactionsForAdvice is the minimum ledger size before the external
// generator is worth calling.
const minTransactionsForAdvice = 3

// snapshotTransactionsForAdvice caps how many recent transactions go into the prompt.
const snapshotTransactionsForAdvice = 5

// fallbackAdvice is returned whenever the generator is unavailable. Advice is
// decorative; its failure must never interrupt ledger operations.
const fallbackAdvice = "Keep recording every sale and expense daily. Review your payment-method mix weekly and keep cash expenses low where digital payments are available."

// notEnoughDataAdvice is returned while the ledger is too small to summarize.
const notEnoughDataAdvice = "Add a few more transactions first. Once at least 3 are recorded, personalised advice becomes available."

// AdviceGenerator is the external text-completion collaborator. Calls are
// fallible and slow; implementations apply their own timeout.
type AdviceGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// advisorService builds a ledger snapshot summary and asks the external
// generator for advice, degrading to a static message on any failure.
type advisorService struct {
	ledgerSvc  portssvc.LedgerSvcFacade
	reportSvc  portssvc.ReportingSvcFacade
	profileSvc portssvc.ProfileSvcFacade
	generator  AdviceGenerator
}

// NewAdvisorService creates a new AdvisorService.
func NewAdvisorService(ledgerSvc portssvc.LedgerSvcFacade, reportSvc portssvc.ReportingSvcFacade, profileSvc portssvc.ProfileSvcFacade, generator AdviceGenerator) portssvc.AdvisorSvcFacade {
	return &advisorService{
		ledgerSvc:  ledgerSvc,
		reportSvc:  reportSvc,
		profileSvc: profileSvc,
		generator:  generator,
	}
}

var _ portssvc.AdvisorSvcFacade = (*advisorService)(nil)

// BusinessAdvice returns generated advice for the current ledger state.
// Repository failures surface as errors; generator failures do not.
func (s *advisorService) BusinessAdvice(ctx context.Context) (*dto.AdviceResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txns, err := s.ledgerSvc.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for advice: %w", err)
	}

	if len(txns) < minTransactionsForAdvice {
		return &dto.AdviceResponse{Advice: notEnoughDataAdvice, Fallback: true}, nil
	}

	totals, err := s.reportSvc.ComputeTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals for advice: %w", err)
	}

	shopName := "the shop"
	if profile, err := s.profileSvc.GetProfile(ctx); err == nil && profile.ShopName != "" {
		shopName = profile.ShopName
	}

	prompt := buildAdvicePrompt(shopName, totals, txns)

	advice, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Warn("Advice generator unavailable, using fallback", slog.String("error", err.Error()))
		return &dto.AdviceResponse{Advice: fallbackAdvice, Fallback: true}, nil
	}

	logger.Info("Advice generated", slog.Int("prompt_transactions", min(len(txns), snapshotTransactionsForAdvice)))
	return &dto.AdviceResponse{Advice: advice, Fallback: false}, nil
}

func buildAdvicePrompt(shopName string, totals *domain.Totals, txns []domain.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You advise the owner of %s, a small shop, in two short sentences.\n", shopName)
	fmt.Fprintf(&b, "All-time figures: income %s, expenses %s, profit %s.\n",
		totals.Income.String(), totals.Expenses.String(), totals.Profit.String())
	b.WriteString("Most recent transactions:\n")
	for i, txn := range txns {
		if i == snapshotTransactionsForAdvice {
			break
		}
		fmt.Fprintf(&b, "- %s %s %s via %s (%s)\n",
			txn.Date.Format("2006-01-02"), txn.Type, txn.Amount.String(), txn.PaymentMethod, txn.Category)
	}
	b.WriteString("Give one concrete, actionable suggestion.")
	return b.String()
}
