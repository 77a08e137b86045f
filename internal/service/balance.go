package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/veloxerp/cari-recon/internal/domain"
	"github.com/veloxerp/cari-recon/internal/logging"
	"github.com/veloxerp/cari-recon/internal/recon"
)

type salesInvoiceRepo interface {
	ListForParty(ctx context.Context, partyID uuid.UUID, role domain.PartyRole) ([]domain.SalesInvoice, error)
}

type purchaseInvoiceRepo interface {
	ListForParty(ctx context.Context, partyID uuid.UUID, role domain.PartyRole) ([]domain.PurchaseInvoice, error)
}

type paymentRepo interface {
	ListForParty(ctx context.Context, partyID uuid.UUID, role domain.PartyRole) ([]domain.Payment, error)
}

// BalanceService fetches a party's documents and hands them to the
// reconciliation engine. Fetching and computing stay separated so the
// engine remains a pure function of its inputs.
type BalanceService struct {
	salesInvoices    salesInvoiceRepo
	purchaseInvoices purchaseInvoiceRepo
	payments         paymentRepo
	engine           *recon.Engine
}

func NewBalanceService(
	salesInvoices salesInvoiceRepo,
	purchaseInvoices purchaseInvoiceRepo,
	payments paymentRepo,
	engine *recon.Engine,
) *BalanceService {
	return &BalanceService{
		salesInvoices:    salesInvoices,
		purchaseInvoices: purchaseInvoices,
		payments:         payments,
		engine:           engine,
	}
}

func (s *BalanceService) PartyBalance(ctx context.Context, partyID uuid.UUID, role domain.PartyRole) (*domain.PartyBalance, error) {
	log := logging.FromContext(ctx)

	if !role.IsValid() {
		return nil, fmt.Errorf("PartyBalance: %q: %w", role, domain.ErrInvalidPartyRole)
	}

	docs, err := s.fetchDocuments(ctx, partyID, role)
	if err != nil {
		return nil, fmt.Errorf("PartyBalance: %w", err)
	}

	balance, err := s.engine.Reconcile(ctx, role, *docs)
	if err != nil {
		return nil, fmt.Errorf("PartyBalance: party %s: %w", partyID, err)
	}

	log.Debug("party balance reconciled",
		"party_id", partyID,
		"role", role,
		"documents", len(docs.SalesInvoices)+len(docs.PurchaseInvoices)+len(docs.Payments),
	)
	return balance, nil
}

func (s *BalanceService) fetchDocuments(ctx context.Context, partyID uuid.UUID, role domain.PartyRole) (*domain.DocumentSet, error) {
	salesInvoices, err := s.salesInvoices.ListForParty(ctx, partyID, role)
	if err != nil {
		return nil, fmt.Errorf("fetchDocuments: sales invoices: %w", err)
	}
	purchaseInvoices, err := s.purchaseInvoices.ListForParty(ctx, partyID, role)
	if err != nil {
		return nil, fmt.Errorf("fetchDocuments: purchase invoices: %w", err)
	}
	payments, err := s.payments.ListForParty(ctx, partyID, role)
	if err != nil {
		return nil, fmt.Errorf("fetchDocuments: payments: %w", err)
	}

	return &domain.DocumentSet{
		SalesInvoices:    salesInvoices,
		PurchaseInvoices: purchaseInvoices,
		Payments:         payments,
	}, nil
}
