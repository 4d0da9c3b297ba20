package services

import (
	"github.com/SscSPs/property_ledger/internal/core/chart"
	"github.com/SscSPs/property_ledger/internal/core/journal"
	"github.com/SscSPs/property_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_ledger/internal/core/ports/services"
	"github.com/SscSPs/property_ledger/internal/core/reports"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Every service shares registry so chart extensions apply to postings and reports alike.
func NewServiceContainer(repos portsrepo.RepositoryProvider, registry *chart.Registry, publisher events.Publisher) *portssvc.ServiceContainer {
	if registry == nil {
		registry = chart.Default()
	}

	container := &portssvc.ServiceContainer{}

	container.Chart = NewChartService(registry)
	container.Journal = NewJournalService(
		repos.JournalEntryRepo,
		repos.SourceRecordRepo,
		WithJournalRegistry(registry),
		WithJournalFactory(journal.NewFactory(journal.WithRegistry(registry))),
		WithEventPublisher(publisher),
	)
	container.Reporting = NewReportingService(
		repos.SourceRecordRepo,
		WithReportGenerator(reports.NewGenerator(reports.WithRegistry(registry))),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ChartSvc         = (*chartService)(nil)
	_ portssvc.JournalSvcFacade = (*journalService)(nil)
	_ portssvc.ReportingService = (*reportingService)(nil)
)
