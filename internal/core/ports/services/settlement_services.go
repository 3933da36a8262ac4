package services

import (
	"context"

	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	"github.com/SscSPs/travelpay_ledger/internal/dto"
)

// BookingSettlementSvc records travel bookings in the ledger
type BookingSettlementSvc interface {
	// RecordFlightBooking posts the payment of a flight order, splitting out the service fee.
	RecordFlightBooking(ctx context.Context, req dto.FlightBookingSettlementRequest, userID string) (*domain.JournalEntry, error)
}

// WalletSettlementSvc records wallet movements in the ledger
type WalletSettlementSvc interface {
	// SettleP2PTrade moves a trade amount from user wallets into escrow, less the trading fee.
	SettleP2PTrade(ctx context.Context, req dto.P2PTradeSettlementRequest, userID string) (*domain.JournalEntry, error)

	// RecordUserTransfer moves funds between two users' wallets, charging the transfer fee.
	RecordUserTransfer(ctx context.Context, req dto.UserTransferRequest, userID string) (*domain.JournalEntry, error)
}

// SettlementSvcFacade combines all settlement flows
type SettlementSvcFacade interface {
	BookingSettlementSvc
	WalletSettlementSvc
}
