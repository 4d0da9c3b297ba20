package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/SscSPs/property_ledger/internal/core/journal"
	"github.com/SscSPs/property_ledger/internal/core/ports/events"
	portssvc "github.com/SscSPs/property_ledger/internal/core/ports/services"
	"github.com/SscSPs/property_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockEntryRepo  *MockJournalEntryRepository
	mockSourceRepo *MockSourceRecordRepository
	mockPublisher  *MockPublisher
	service        portssvc.JournalSvcFacade
	ctx            context.Context
	tenantID       string
	userID         string
	now            time.Time
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockJournalEntryRepository)
	suite.mockSourceRepo = new(MockSourceRecordRepository)
	suite.mockPublisher = new(MockPublisher)
	suite.ctx = context.Background()
	suite.tenantID = "tenant-1"
	suite.userID = "user-1"
	suite.now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	clock := func() time.Time { return suite.now }
	suite.service = services.NewJournalService(
		suite.mockEntryRepo,
		suite.mockSourceRepo,
		services.WithJournalFactory(journal.NewFactory(journal.WithClock(clock))),
		services.WithEventPublisher(suite.mockPublisher),
		services.WithJournalClock(clock),
	)
}

func (suite *JournalServiceTestSuite) paidPayment() *domain.Payment {
	return &domain.Payment{
		ID: "pay-1", TenantID: suite.tenantID, LeaseID: "lease-1",
		Amount: decimal.NewFromInt(1000), LateFee: decimal.NewFromInt(50),
		Currency: "USD", Status: domain.PaymentPaid, PaymentType: "rent",
		PaymentDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	}
}

// --- Test Cases ---

func (suite *JournalServiceTestSuite) TestRecordPayment_Success() {
	lease := &domain.Lease{ID: "lease-1", PropertyID: "prop-1", UnitID: "unit-1"}

	suite.mockEntryRepo.On("FindEntriesByReference", suite.ctx, suite.tenantID, domain.PaymentReference, "pay-1").Return([]domain.JournalEntry{}, nil).Once()
	suite.mockSourceRepo.On("FindPayment", suite.ctx, suite.tenantID, "pay-1").Return(suite.paidPayment(), nil).Once()
	suite.mockSourceRepo.On("FindLease", suite.ctx, suite.tenantID, "lease-1").Return(lease, nil).Once()
	suite.mockEntryRepo.On("SaveEntries", suite.ctx, mock.AnythingOfType("[]domain.JournalEntry")).Return(nil).Once()
	suite.mockPublisher.On("Publish", suite.ctx, "pay-1", mock.MatchedBy(func(e events.JournalEntriesPosted) bool {
		return e.TenantID == suite.tenantID &&
			e.ReferenceType == domain.PaymentReference &&
			len(e.Entries) == 4 &&
			e.PostedBy == suite.userID &&
			e.OccurredAt.Equal(suite.now)
	})).Return(nil).Once()

	entries, err := suite.service.RecordPayment(suite.ctx, suite.tenantID, "pay-1", suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 4)
	for _, e := range entries {
		suite.Equal("prop-1", e.PropertyID)
		suite.Equal(suite.userID, e.CreatedBy)
		suite.Equal(suite.tenantID, e.TenantID)
		suite.Equal(suite.now, e.CreatedAt)
	}

	suite.mockEntryRepo.AssertExpectations(suite.T())
	suite.mockSourceRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestRecordPayment_AlreadyPosted() {
	existing := []domain.JournalEntry{
		{ID: "je-1", ReferenceID: "pay-1", EntryType: domain.Debit, Amount: decimal.NewFromInt(10)},
		{ID: "je-2", ReferenceID: "pay-1", EntryType: domain.Credit, Amount: decimal.NewFromInt(10)},
	}
	suite.mockEntryRepo.On("FindEntriesByReference", suite.ctx, suite.tenantID, domain.PaymentReference, "pay-1").Return(existing, nil).Once()

	entries, err := suite.service.RecordPayment(suite.ctx, suite.tenantID, "pay-1", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(existing, entries)
	suite.mockSourceRepo.AssertNotCalled(suite.T(), "FindPayment", mock.Anything, mock.Anything, mock.Anything)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything)
	suite.mockPublisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestRecordPayment_LosesRaceReturnsStoredEntries() {
	stored := []domain.JournalEntry{
		{ID: "je-1", ReferenceID: "pay-1", EntryType: domain.Debit, Amount: decimal.NewFromInt(1050)},
		{ID: "je-2", ReferenceID: "pay-1", EntryType: domain.Credit, Amount: decimal.NewFromInt(1050)},
	}
	suite.mockEntryRepo.On("FindEntriesByReference", suite.ctx, suite.tenantID, domain.PaymentReference, "pay-1").Return(nil, nil).Once()
	suite.mockSourceRepo.On("FindPayment", suite.ctx, suite.tenantID, "pay-1").Return(suite.paidPayment(), nil).Once()
	suite.mockSourceRepo.On("FindLease", suite.ctx, suite.tenantID, "lease-1").Return(&domain.Lease{ID: "lease-1"}, nil).Once()
	suite.mockEntryRepo.On("SaveEntries", suite.ctx, mock.AnythingOfType("[]domain.JournalEntry")).
		Return(fmt.Errorf("%w: payment pay-1 already posted", apperrors.ErrDuplicate)).Once()
	suite.mockEntryRepo.On("FindEntriesByReference", suite.ctx, suite.tenantID, domain.PaymentReference, "pay-1").Return(stored, nil).Once()

	entries, err := suite.service.RecordPayment(suite.ctx, suite.tenantID, "pay-1", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(stored, entries)
	suite.mockEntryRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestRecordPayment_DuplicateWithoutStoredEntries() {
	suite.mockEntryRepo.On("FindEntriesByReference", suite.ctx, suite.tenantID, domain.PaymentReference, "pay-1").Return(nil, nil).Twice()
	suite.mockSourceRepo.On("FindPayment", suite.ctx, suite.tenantID, "pay-1").Return(suite.paidPayment(), nil).Once()
	suite.mockSourceRepo.On("FindLease", suite.ctx, suite.tenantID, "lease-1").Return(&domain.Lease{ID: "lease-1"}, nil).Once()
	suite.mockEntryRepo.On("SaveEntries", suite.ctx, mock.AnythingOfType("[]domain.JournalEntry")).
		Return(fmt.Errorf("%w: journal entry je-1", apperrors.ErrDuplicate)).Once()

	_, err := suite.service.RecordPayment(suite.ctx, suite.tenantID, "pay-1", suite.userID)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockPublisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestRecordPayment_PendingProducesNothing() {
	pending := suite.paidPayment()
	pending.Status = domain.PaymentPending

	suite.mockEntryRepo.On("FindEntriesByReference", suite.ctx, suite.tenantID, domain.PaymentReference, "pay-1").Return(nil, nil).Once()
	suite.mockSourceRepo.On("FindPayment", suite.ctx, suite.tenantID, "pay-1").Return(pending, nil).Once()
	suite.mockSourceRepo.On("FindLease", suite.ctx, suite.tenantID, "lease-1").Return(&domain.Lease{ID: "lease-1"}, nil).Once()

	entries, err := suite.service.RecordPayment(suite.ctx, suite.tenantID, "pay-1", suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(entries)
	suite.Empty(entries)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything)
	suite.mockPublisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestRecordPayment_MissingLeaseStillPosts() {
	suite.mockEntryRepo.On("FindEntriesByReference", suite.ctx, suite.tenantID, domain.PaymentReference, "pay-1").Return(nil, nil).Once()
	suite.mockSourceRepo.On("FindPayment", suite.ctx, suite.tenantID, "pay-1").Return(suite.paidPayment(), nil).Once()
	suite.mockSourceRepo.On("FindLease", suite.ctx, suite.tenantID, "lease-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEntryRepo.On("SaveEntries", suite.ctx, mock.AnythingOfType("[]domain.JournalEntry")).Return(nil).Once()
	suite.mockPublisher.On("Publish", suite.ctx, "pay-1", mock.Anything).Return(nil).Once()

	entries, err := suite.service.RecordPayment(suite.ctx, suite.tenantID, "pay-1", suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 4)
	suite.Empty(entries[0].PropertyID)
}

func (suite *JournalServiceTestSuite) TestRecordPayment_LeaseLookupError() {
	dbErr := errors.New("connection reset")
	suite.mockEntryRepo.On("FindEntriesByReference", suite.ctx, suite.tenantID, domain.PaymentReference, "pay-1").Return(nil, nil).Once()
	suite.mockSourceRepo.On("FindPayment", suite.ctx, suite.tenantID, "pay-1").Return(suite.paidPayment(), nil).Once()
	suite.mockSourceRepo.On("FindLease", suite.ctx, suite.tenantID, "lease-1").Return(nil, dbErr).Once()

	_, err := suite.service.RecordPayment(suite.ctx, suite.tenantID, "pay-1", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, dbErr)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestRecordPayment_NotFound() {
	suite.mockEntryRepo.On("FindEntriesByReference", suite.ctx, suite.tenantID, domain.PaymentReference, "missing").Return(nil, nil).Once()
	suite.mockSourceRepo.On("FindPayment", suite.ctx, suite.tenantID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordPayment(suite.ctx, suite.tenantID, "missing", suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestRecordPayment_RequiresTenant() {
	_, err := suite.service.RecordPayment(suite.ctx, "", "pay-1", suite.userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "FindEntriesByReference", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestRecordExpense_SaveError() {
	expense := &domain.Expense{ID: "exp-1", Amount: decimal.NewFromInt(200), Category: "repairs", Status: domain.ExpensePending, ExpenseDate: suite.now}
	saveErr := errors.New("disk full")

	suite.mockEntryRepo.On("FindEntriesByReference", suite.ctx, suite.tenantID, domain.ExpenseReference, "exp-1").Return(nil, nil).Once()
	suite.mockSourceRepo.On("FindExpense", suite.ctx, suite.tenantID, "exp-1").Return(expense, nil).Once()
	suite.mockEntryRepo.On("SaveEntries", suite.ctx, mock.AnythingOfType("[]domain.JournalEntry")).Return(saveErr).Once()

	_, err := suite.service.RecordExpense(suite.ctx, suite.tenantID, "exp-1", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, saveErr)
	suite.mockPublisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestRecordExpense_PublishFailureDoesNotFail() {
	expense := &domain.Expense{ID: "exp-1", Amount: decimal.NewFromInt(200), Category: "repairs", Status: domain.ExpensePaid, ExpenseDate: suite.now}

	suite.mockEntryRepo.On("FindEntriesByReference", suite.ctx, suite.tenantID, domain.ExpenseReference, "exp-1").Return(nil, nil).Once()
	suite.mockSourceRepo.On("FindExpense", suite.ctx, suite.tenantID, "exp-1").Return(expense, nil).Once()
	suite.mockEntryRepo.On("SaveEntries", suite.ctx, mock.AnythingOfType("[]domain.JournalEntry")).Return(nil).Once()
	suite.mockPublisher.On("Publish", suite.ctx, "exp-1", mock.Anything).Return(errors.New("broker down")).Once()

	entries, err := suite.service.RecordExpense(suite.ctx, suite.tenantID, "exp-1", suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("6100", entries[0].AccountCode)
	suite.Equal("1000", entries[1].AccountCode)
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestRecordInvoice_Sent() {
	invoice := &domain.Invoice{ID: "inv-1", InvoiceNumber: "INV-1", TotalAmount: decimal.NewFromInt(1200), Status: domain.InvoiceSent, IssueDate: suite.now}

	suite.mockEntryRepo.On("FindEntriesByReference", suite.ctx, suite.tenantID, domain.InvoiceReference, "inv-1").Return(nil, nil).Once()
	suite.mockSourceRepo.On("FindInvoice", suite.ctx, suite.tenantID, "inv-1").Return(invoice, nil).Once()
	suite.mockEntryRepo.On("SaveEntries", suite.ctx, mock.AnythingOfType("[]domain.JournalEntry")).Return(nil).Once()
	suite.mockPublisher.On("Publish", suite.ctx, "inv-1", mock.Anything).Return(nil).Once()

	entries, err := suite.service.RecordInvoice(suite.ctx, suite.tenantID, "inv-1", suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("1100", entries[0].AccountCode)
	suite.Equal("4000", entries[1].AccountCode)
}

func (suite *JournalServiceTestSuite) TestRecordDeposit() {
	lease := &domain.Lease{ID: "lease-1", DepositAmount: decimal.NewFromInt(1500), StartDate: suite.now, Status: domain.LeaseActive}

	suite.mockEntryRepo.On("FindEntriesByReference", suite.ctx, suite.tenantID, domain.LeaseReference, "lease-1").Return(nil, nil).Once()
	suite.mockSourceRepo.On("FindLease", suite.ctx, suite.tenantID, "lease-1").Return(lease, nil).Once()
	suite.mockEntryRepo.On("SaveEntries", suite.ctx, mock.AnythingOfType("[]domain.JournalEntry")).Return(nil).Once()
	suite.mockPublisher.On("Publish", suite.ctx, "lease-1", mock.Anything).Return(nil).Once()

	entries, err := suite.service.RecordDeposit(suite.ctx, suite.tenantID, "lease-1", suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("1200", entries[0].AccountCode)
	suite.Equal("2100", entries[1].AccountCode)
}

func (suite *JournalServiceTestSuite) TestListEntries_RejectsReversedPeriod() {
	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.ListEntries(suite.ctx, suite.tenantID, from, to)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestEntriesForReference_UnknownType() {
	_, err := suite.service.EntriesForReference(suite.ctx, suite.tenantID, "booking", "b-1")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestAccountBalance() {
	asOf := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	entries := []domain.JournalEntry{
		{AccountCode: "1000", EntryType: domain.Debit, Amount: decimal.NewFromInt(1000)},
		{AccountCode: "4000", EntryType: domain.Credit, Amount: decimal.NewFromInt(1000)},
		{AccountCode: "6100", EntryType: domain.Debit, Amount: decimal.NewFromInt(300)},
		{AccountCode: "1000", EntryType: domain.Credit, Amount: decimal.NewFromInt(300)},
	}
	suite.mockEntryRepo.On("ListEntriesUpTo", suite.ctx, suite.tenantID, asOf).Return(entries, nil).Twice()

	cash, err := suite.service.AccountBalance(suite.ctx, suite.tenantID, "1000", asOf)
	suite.Require().NoError(err)
	suite.True(cash.Equal(decimal.NewFromInt(700)))

	revenue, err := suite.service.AccountBalance(suite.ctx, suite.tenantID, "4000", asOf)
	suite.Require().NoError(err)
	suite.True(revenue.Equal(decimal.NewFromInt(1000)))

	_, err = suite.service.AccountBalance(suite.ctx, suite.tenantID, "9999", asOf)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestTrialBalance() {
	asOf := time.Date(2024, 3, 31, 18, 0, 0, 0, time.UTC)
	entries := []domain.JournalEntry{
		{AccountCode: "1000", EntryType: domain.Debit, Amount: decimal.NewFromInt(500)},
		{AccountCode: "4000", EntryType: domain.Credit, Amount: decimal.NewFromInt(500)},
	}
	suite.mockEntryRepo.On("ListEntriesUpTo", suite.ctx, suite.tenantID, asOf).Return(entries, nil).Once()

	tb, err := suite.service.TrialBalance(suite.ctx, suite.tenantID, asOf)

	suite.Require().NoError(err)
	suite.Require().Len(tb.Rows, 2)
	suite.Equal(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), tb.AsOfDate)
	suite.True(tb.TotalDebit.Equal(tb.TotalCredit))
}

func (suite *JournalServiceTestSuite) TestTrialBalance_RepositoryError() {
	asOf := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.mockEntryRepo.On("ListEntriesUpTo", suite.ctx, suite.tenantID, asOf).Return(nil, apperrors.ErrInternal).Once()

	_, err := suite.service.TrialBalance(suite.ctx, suite.tenantID, asOf)

	suite.ErrorIs(err, apperrors.ErrInternal)
}

// --- Run Test Suite ---
func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
