package dto

import "github.com/shopspring/decimal"

// FlightBookingSettlementRequest records the payment of a flight order.
type FlightBookingSettlementRequest struct {
	OrderID string          `json:"orderID" binding:"required"`
	Amount  decimal.Decimal `json:"amount"`
}

// P2PTradeSettlementRequest settles a peer-to-peer trade into escrow.
type P2PTradeSettlementRequest struct {
	TradeID string          `json:"tradeID" binding:"required"`
	Amount  decimal.Decimal `json:"amount"`
}

// UserTransferRequest moves wallet funds from one user to another.
type UserTransferRequest struct {
	TransferID string          `json:"transferID" binding:"required"`
	FromUserID string          `json:"fromUserID" binding:"required"`
	ToUserID   string          `json:"toUserID" binding:"required,nefield=FromUserID"`
	Amount     decimal.Decimal `json:"amount"`
}
