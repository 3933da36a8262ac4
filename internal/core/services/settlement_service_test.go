package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/travelpay_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/travelpay_ledger/internal/apperrors"
	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/travelpay_ledger/internal/core/ports/services"
	"github.com/SscSPs/travelpay_ledger/internal/core/services"
	"github.com/SscSPs/travelpay_ledger/internal/dto"
)

func newSettlementStack(options ...services.SettlementServiceOption) (portssvc.LedgerSvcFacade, portssvc.SettlementSvcFacade) {
	repos := memory.NewRepositoryProvider()
	ledger := services.NewLedgerService(repos.AccountRepo, repos.JournalRepo)
	return ledger, services.NewSettlementService(ledger, options...)
}

// linesByAccount indexes an entry's lines as "type:code" -> amount.
func linesByAccount(entry *domain.JournalEntry) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(entry.Lines))
	for _, l := range entry.Lines {
		out[string(l.LineType)+":"+l.AccountCode] = l.Amount
	}
	return out
}

func TestSettlement_RecordFlightBooking(t *testing.T) {
	ledger, settlement := newSettlementStack()

	entry, err := settlement.RecordFlightBooking(context.Background(), dto.FlightBookingSettlementRequest{
		OrderID: "ORD-500",
		Amount:  amt("500"),
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "ORD-500", entry.RelatedDocumentID)
	require.Len(t, entry.Lines, 3)
	got := linesByAccount(entry)
	assert.True(t, amt("500").Equal(got["debit:"+domain.AccountUserFunds]))
	assert.True(t, amt("450").Equal(got["credit:"+domain.AccountUserLiability]))
	assert.True(t, amt("50").Equal(got["credit:"+domain.AccountFlightRevenue]))

	b := balances(t, ledger)
	assert.True(t, amt("50").Equal(b[domain.AccountFlightRevenue]))
}

func TestSettlement_FeeRounding(t *testing.T) {
	_, settlement := newSettlementStack()

	entry, err := settlement.SettleP2PTrade(context.Background(), dto.P2PTradeSettlementRequest{
		TradeID: "TRD-1",
		Amount:  amt("123.45"),
	}, "user-1")
	require.NoError(t, err)

	got := linesByAccount(entry)
	assert.True(t, amt("123.45").Equal(got["debit:"+domain.AccountUserLiability]))
	assert.True(t, amt("1.23").Equal(got["credit:"+domain.AccountP2PTradingFees]))
	assert.True(t, amt("122.22").Equal(got["credit:"+domain.AccountP2PEscrow]))
	assert.True(t, entry.IsBalanced())
}

func TestSettlement_ZeroFeeOmitsFeeLine(t *testing.T) {
	_, settlement := newSettlementStack(services.WithFlightServiceFeeRate(decimal.Zero))

	entry, err := settlement.RecordFlightBooking(context.Background(), dto.FlightBookingSettlementRequest{
		OrderID: "ORD-1",
		Amount:  amt("80"),
	}, "user-1")
	require.NoError(t, err)
	require.Len(t, entry.Lines, 2)
	for _, l := range entry.Lines {
		assert.NotEqual(t, domain.AccountFlightRevenue, l.AccountCode)
	}
}

func TestSettlement_RecordUserTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("default transfer is free", func(t *testing.T) {
		ledger, settlement := newSettlementStack()
		entry, err := settlement.RecordUserTransfer(ctx, dto.UserTransferRequest{
			TransferID: "TRF-1", FromUserID: "alice", ToUserID: "bob", Amount: amt("40"),
		}, "alice")
		require.NoError(t, err)
		require.Len(t, entry.Lines, 2)
		assert.Contains(t, entry.Description, "alice")
		for code, balance := range balances(t, ledger) {
			assert.True(t, balance.IsZero(), "balance of %s should be unchanged", code)
		}
	})

	t.Run("flat fee goes to revenue", func(t *testing.T) {
		ledger, settlement := newSettlementStack(services.WithTransferFee(amt("1.5")))
		entry, err := settlement.RecordUserTransfer(ctx, dto.UserTransferRequest{
			TransferID: "TRF-2", FromUserID: "alice", ToUserID: "bob", Amount: amt("40"),
		}, "alice")
		require.NoError(t, err)

		got := linesByAccount(entry)
		assert.True(t, amt("41.5").Equal(got["debit:"+domain.AccountUserLiability]))
		assert.True(t, amt("40").Equal(got["credit:"+domain.AccountUserLiability]))
		assert.True(t, amt("1.5").Equal(got["credit:"+domain.AccountTransferFees]))

		b := balances(t, ledger)
		assert.True(t, amt("-1.5").Equal(b[domain.AccountUserLiability]))
		assert.True(t, amt("1.5").Equal(b[domain.AccountTransferFees]))
	})
}

func TestSettlement_FailureWrapsLedgerError(t *testing.T) {
	ledger, settlement := newSettlementStack()

	entry, err := settlement.RecordFlightBooking(context.Background(), dto.FlightBookingSettlementRequest{
		OrderID: "ORD-0",
		Amount:  decimal.Zero,
	}, "user-1")

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, services.ErrSettlementFailed)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	var amountErr *services.InvalidAmountError
	assert.ErrorAs(t, err, &amountErr)

	entries, err := ledger.GetJournalEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
