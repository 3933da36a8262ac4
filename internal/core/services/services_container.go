package services

import (
	portsrepo "github.com/SscSPs/travelpay_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travelpay_ledger/internal/core/ports/services"
	"github.com/SscSPs/travelpay_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(repos.AccountRepo, repos.JournalRepo)
	container.Reporting = NewReportingService(repos.AccountRepo)

	// Settlement flows post through the ledger service so they share its validation
	container.Settlement = NewSettlementService(
		container.Ledger,
		WithFlightServiceFeeRate(cfg.FlightServiceFeeRate),
		WithP2PTradeFeeRate(cfg.P2PTradeFeeRate),
		WithTransferFee(cfg.TransferFee),
	)

	return container
}
