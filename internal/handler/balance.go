package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/veloxerp/cari-recon/internal/domain"
	"github.com/veloxerp/cari-recon/internal/logging"
)

type balanceService interface {
	PartyBalance(ctx context.Context, partyID uuid.UUID, role domain.PartyRole) (*domain.PartyBalance, error)
}

type BalanceHandler struct {
	balances balanceService
}

func NewBalanceHandler(balances balanceService) *BalanceHandler {
	return &BalanceHandler{balances: balances}
}

// Amounts are serialized as strings: decimal values must survive the
// trip to the consumer without float rounding.
type partyBalanceResponse struct {
	PartyID           string            `json:"party_id"`
	Role              string            `json:"role"`
	ReportingCurrency string            `json:"reporting_currency"`
	Total             string            `json:"total"`
	NativeSubtotals   map[string]string `json:"native_subtotals"`
}

func (h *BalanceHandler) GetPartyBalance(w http.ResponseWriter, r *http.Request) {
	partyID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		RespondValidationError(w, []FieldError{{Field: "id", Message: "must be a valid UUID"}})
		return
	}

	role := domain.PartyRole(r.URL.Query().Get("role"))
	if !role.IsValid() {
		RespondValidationError(w, []FieldError{{Field: "role", Message: "must be customer or supplier"}})
		return
	}

	balance, err := h.balances.PartyBalance(r.Context(), partyID, role)
	if err != nil {
		logging.FromContext(r.Context()).Warn("party balance failed",
			"party_id", partyID, "role", role, "error", err)
		RespondDomainError(w, err)
		return
	}

	subtotals := make(map[string]string, len(balance.NativeSubtotals))
	for currency, amount := range balance.NativeSubtotals {
		subtotals[string(currency)] = amount.String()
	}

	RespondSuccess(w, http.StatusOK, partyBalanceResponse{
		PartyID:           partyID.String(),
		Role:              string(role),
		ReportingCurrency: string(balance.ReportingCurrency),
		Total:             balance.Total.String(),
		NativeSubtotals:   subtotals,
	})
}
