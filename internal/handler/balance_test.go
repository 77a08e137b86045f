package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veloxerp/cari-recon/internal/domain"
)

type stubBalanceService struct {
	balance *domain.PartyBalance
	err     error
}

func (s stubBalanceService) PartyBalance(context.Context, uuid.UUID, domain.PartyRole) (*domain.PartyBalance, error) {
	return s.balance, s.err
}

func doBalanceRequest(t *testing.T, svc balanceService, id, role string) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/parties/{id}/balance", NewBalanceHandler(svc).GetPartyBalance)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/parties/"+id+"/balance?role="+role, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestGetPartyBalance(t *testing.T) {
	svc := stubBalanceService{balance: &domain.PartyBalance{
		ReportingCurrency: domain.CurrencyTRY,
		Total:             decimal.RequireFromString("3400"),
		NativeSubtotals: map[domain.Currency]decimal.Decimal{
			domain.CurrencyUSD: decimal.NewFromInt(100),
		},
	}}

	rec, resp := doBalanceRequest(t, svc, uuid.New().String(), "supplier")

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "TRY", data["reporting_currency"])
	assert.Equal(t, "3400", data["total"])
	subtotals, ok := data["native_subtotals"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "100", subtotals["USD"])
}

func TestGetPartyBalanceValidation(t *testing.T) {
	tests := []struct {
		name string
		id   string
		role string
	}{
		{name: "malformed party id", id: "not-a-uuid", role: "customer"},
		{name: "missing role", id: uuid.New().String(), role: ""},
		{name: "unknown role", id: uuid.New().String(), role: "partner"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, resp := doBalanceRequest(t, stubBalanceService{}, tc.id, tc.role)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, resp.Error)
			assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
		})
	}
}

func TestGetPartyBalanceDomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "rate unavailable", err: domain.ErrRateUnavailable, wantStatus: http.StatusUnprocessableEntity, wantCode: "RATE_UNAVAILABLE"},
		{name: "unclassified document", err: domain.ErrUnclassifiedDocument, wantStatus: http.StatusUnprocessableEntity, wantCode: "UNCLASSIFIED_DOCUMENT"},
		{name: "invalid amount", err: domain.ErrInvalidAmount, wantStatus: http.StatusUnprocessableEntity, wantCode: "INVALID_AMOUNT"},
		{name: "party not found", err: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: "RESOURCE_NOT_FOUND"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, resp := doBalanceRequest(t, stubBalanceService{err: tc.err}, uuid.New().String(), "customer")

			assert.Equal(t, tc.wantStatus, rec.Code)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.wantCode, resp.Error.Code)
		})
	}
}
