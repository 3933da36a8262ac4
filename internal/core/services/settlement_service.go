package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/travelpay_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/travelpay_ledger/internal/core/ports/services"
	"github.com/SscSPs/travelpay_ledger/internal/dto"
)

// Default fee schedule of the settlement flows.
var (
	DefaultFlightServiceFeeRate = decimal.NewFromFloat(0.10)
	DefaultP2PTradeFeeRate      = decimal.NewFromFloat(0.01)
	DefaultTransferFee          = decimal.Zero
)

// feePlaces is the precision fees are rounded to.
const feePlaces = 2

// settlementService turns business events into ledger postings.
type settlementService struct {
	BaseService
	ledger               portssvc.JournalWriterSvc
	flightServiceFeeRate decimal.Decimal
	p2pTradeFeeRate      decimal.Decimal
	transferFee          decimal.Decimal
}

// SettlementServiceOption is a functional option for configuring the settlement service
type SettlementServiceOption func(*settlementService)

// WithFlightServiceFeeRate sets the share of a flight payment kept as revenue.
func WithFlightServiceFeeRate(rate decimal.Decimal) SettlementServiceOption {
	return func(s *settlementService) {
		s.flightServiceFeeRate = rate
	}
}

// WithP2PTradeFeeRate sets the share of a P2P trade kept as a trading fee.
func WithP2PTradeFeeRate(rate decimal.Decimal) SettlementServiceOption {
	return func(s *settlementService) {
		s.p2pTradeFeeRate = rate
	}
}

// WithTransferFee sets the flat fee charged on user-to-user transfers.
func WithTransferFee(fee decimal.Decimal) SettlementServiceOption {
	return func(s *settlementService) {
		s.transferFee = fee
	}
}

// NewSettlementService creates a new settlement service posting through ledger.
func NewSettlementService(ledger portssvc.JournalWriterSvc, options ...SettlementServiceOption) portssvc.SettlementSvcFacade {
	svc := &settlementService{
		ledger:               ledger,
		flightServiceFeeRate: DefaultFlightServiceFeeRate,
		p2pTradeFeeRate:      DefaultP2PTradeFeeRate,
		transferFee:          DefaultTransferFee,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure settlementService implements the SettlementSvcFacade interface
var _ portssvc.SettlementSvcFacade = (*settlementService)(nil)

// feeFor applies rate to amount, rounded to cents.
func feeFor(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(feePlaces)
}

// withFee appends a fee line unless the fee is zero.
func withFee(lines []domain.PostingLine, revenueAccount string, fee decimal.Decimal) []domain.PostingLine {
	if fee.IsZero() {
		return lines
	}
	return append(lines, domain.PostingLine{AccountCode: revenueAccount, Amount: fee})
}

// post sends the posting to the ledger and wraps a rejection as a failure of the business action.
func (s *settlementService) post(ctx context.Context, flow string, req dto.PostJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	entry, err := s.ledger.PostJournalEntry(ctx, req, userID)
	if err != nil {
		s.LogError(ctx, err, "Settlement posting failed",
			slog.String("flow", flow),
			slog.String("related_document_id", req.RelatedDocumentID))
		return nil, fmt.Errorf("%w: %s: %w", ErrSettlementFailed, flow, err)
	}
	return entry, nil
}

// RecordFlightBooking posts Dr User Funds / Cr User Liability (net) / Cr Flight Revenue (fee).
func (s *settlementService) RecordFlightBooking(ctx context.Context, req dto.FlightBookingSettlementRequest, userID string) (*domain.JournalEntry, error) {
	fee := feeFor(req.Amount, s.flightServiceFeeRate)
	credits := withFee([]domain.PostingLine{
		{AccountCode: domain.AccountUserLiability, Amount: req.Amount.Sub(fee)},
	}, domain.AccountFlightRevenue, fee)

	return s.post(ctx, "flight booking", dto.PostJournalEntryRequest{
		Description:       fmt.Sprintf("Flight booking %s", req.OrderID),
		RelatedDocumentID: req.OrderID,
		Debits:            dto.FromPostingLines([]domain.PostingLine{{AccountCode: domain.AccountUserFunds, Amount: req.Amount}}),
		Credits:           dto.FromPostingLines(credits),
	}, userID)
}

// SettleP2PTrade posts Dr User Liability / Cr P2P Escrow (net) / Cr P2P Trading Fees (fee).
func (s *settlementService) SettleP2PTrade(ctx context.Context, req dto.P2PTradeSettlementRequest, userID string) (*domain.JournalEntry, error) {
	fee := feeFor(req.Amount, s.p2pTradeFeeRate)
	credits := withFee([]domain.PostingLine{
		{AccountCode: domain.AccountP2PEscrow, Amount: req.Amount.Sub(fee)},
	}, domain.AccountP2PTradingFees, fee)

	return s.post(ctx, "p2p trade", dto.PostJournalEntryRequest{
		Description:       fmt.Sprintf("P2P trade %s", req.TradeID),
		RelatedDocumentID: req.TradeID,
		Debits:            dto.FromPostingLines([]domain.PostingLine{{AccountCode: domain.AccountUserLiability, Amount: req.Amount}}),
		Credits:           dto.FromPostingLines(credits),
	}, userID)
}

// RecordUserTransfer posts Dr User Liability (amount+fee) / Cr User Liability (amount) / Cr Transfer Fees (fee).
func (s *settlementService) RecordUserTransfer(ctx context.Context, req dto.UserTransferRequest, userID string) (*domain.JournalEntry, error) {
	fee := s.transferFee.Round(feePlaces)
	credits := withFee([]domain.PostingLine{
		{AccountCode: domain.AccountUserLiability, Amount: req.Amount},
	}, domain.AccountTransferFees, fee)

	return s.post(ctx, "user transfer", dto.PostJournalEntryRequest{
		Description:       fmt.Sprintf("Transfer %s from %s to %s", req.TransferID, req.FromUserID, req.ToUserID),
		RelatedDocumentID: req.TransferID,
		Debits:            dto.FromPostingLines([]domain.PostingLine{{AccountCode: domain.AccountUserLiability, Amount: req.Amount.Add(fee)}}),
		Credits:           dto.FromPostingLines(credits),
	}, userID)
}
