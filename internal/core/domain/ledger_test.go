package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
)

func validEntry() domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:      "entry-1",
		EntityID:     "entity-1",
		MovementType: domain.Receivable,
		Amount:       decimal.NewFromInt(1500),
		Currency:     domain.TRY,
		Status:       domain.StatusPending,
		Date:         time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLedgerEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.LedgerEntry)
		wantErr string
	}{
		{"valid entry", func(e *domain.LedgerEntry) {}, ""},
		{"zero amount is allowed", func(e *domain.LedgerEntry) { e.Amount = decimal.Zero }, ""},
		{"negative amount", func(e *domain.LedgerEntry) { e.Amount = decimal.NewFromInt(-1) }, "must not be negative"},
		{"bad movement type", func(e *domain.LedgerEntry) { e.MovementType = "transfer" }, "invalid movement type"},
		{"bad status", func(e *domain.LedgerEntry) { e.Status = "done" }, "invalid entry status"},
		{"missing entity", func(e *domain.LedgerEntry) { e.EntityID = "" }, "entity ID is required"},
		{"missing date", func(e *domain.LedgerEntry) { e.Date = time.Time{} }, "transaction date is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntry()
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		in    domain.Currency
		want  domain.Currency
		known bool
	}{
		{domain.TRY, domain.TRY, true},
		{domain.USD, domain.USD, true},
		{domain.EUR, domain.EUR, true},
		{"", domain.TRY, false},
		{"GBP", domain.TRY, false},
	}

	for _, tt := range tests {
		got, known := domain.NormalizeCurrency(tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.known, known)
	}
}

func TestRole_Permissions(t *testing.T) {
	assert.True(t, domain.RoleAdmin.CanViewAll())
	assert.True(t, domain.RoleFinanceAdmin.CanViewAll())
	assert.False(t, domain.RoleFinanceUser.CanViewAll())

	assert.True(t, domain.RoleAdmin.CanManageUsers())
	assert.False(t, domain.RoleFinanceAdmin.CanManageUsers())
	assert.False(t, domain.RoleFinanceUser.CanManageUsers())
}
