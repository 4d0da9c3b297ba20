package accounting

import (
	"fmt"
	"sort"

	"github.com/SscSPs/property_ledger/internal/apperrors"
	"github.com/SscSPs/property_ledger/internal/core/chart"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the correct sign to an entry amount based on account type.
// This is used by the balance helpers and the trial balance so the convention lives in one place.
func CalculateSignedAmount(entry domain.JournalEntry, accountType domain.AccountType) (decimal.Decimal, error) {
	signedAmount := entry.Amount
	isDebit := entry.IsDebit()

	// DEBIT to ASSET/EXPENSE -> Positive (+)
	// CREDIT to ASSET/EXPENSE -> Negative (-)
	// DEBIT to LIABILITY/EQUITY/REVENUE -> Negative (-)
	// CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
	switch accountType {
	case domain.Asset, domain.ExpenseAccount:
		if !isDebit {
			signedAmount = signedAmount.Neg()
		}
	case domain.Liability, domain.Equity, domain.Revenue:
		if isDebit {
			signedAmount = signedAmount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown account type '%s' encountered for account %s", apperrors.ErrValidation, accountType, entry.AccountCode)
	}
	return signedAmount, nil
}

// CalculateAccountBalance folds the entries posted to accountCode into a
// balance that is positive in the account's normal direction.
func CalculateAccountBalance(entries []domain.JournalEntry, accountCode string, accountType domain.AccountType) (decimal.Decimal, error) {
	if !accountType.IsValid() {
		return decimal.Zero, fmt.Errorf("%w: unknown account type '%s'", apperrors.ErrValidation, accountType)
	}

	balance := decimal.Zero
	for _, e := range entries {
		if e.AccountCode != accountCode {
			continue
		}
		signed, err := CalculateSignedAmount(e, accountType)
		if err != nil {
			return decimal.Zero, err
		}
		balance = balance.Add(signed)
	}
	return balance, nil
}

// assetBalance cannot fail since Asset is always a valid type.
func assetBalance(entries []domain.JournalEntry, code string) decimal.Decimal {
	balance, _ := CalculateAccountBalance(entries, code, domain.Asset)
	return balance
}

// CalculateCashBalance returns the balance of Cash (1000).
func CalculateCashBalance(entries []domain.JournalEntry) decimal.Decimal {
	return assetBalance(entries, chart.CodeCash)
}

// CalculateAccountReceivableBalance returns the balance of Accounts Receivable (1100).
func CalculateAccountReceivableBalance(entries []domain.JournalEntry) decimal.Decimal {
	return assetBalance(entries, chart.CodeAccountsReceivable)
}

type referenceKey struct {
	refType domain.ReferenceType
	refID   string
}

// ValidateJournalBalance checks that every group of entries sharing a reference
// has equal debit and credit totals and that no amount is negative. Groups are
// checked in first-seen order and the first failure is returned.
func ValidateJournalBalance(entries []domain.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	if len(entries) < 2 {
		return fmt.Errorf("%w: journal must have at least two entries", apperrors.ErrValidation)
	}

	var order []referenceKey
	sums := make(map[referenceKey]decimal.Decimal)

	for _, e := range entries {
		if e.Amount.IsNegative() {
			return fmt.Errorf("%w: entry %s has negative amount %s", apperrors.ErrValidation, e.ID, e.Amount.String())
		}
		if e.EntryType != domain.Debit && e.EntryType != domain.Credit {
			return fmt.Errorf("%w: entry %s has unknown entry type '%s'", apperrors.ErrValidation, e.ID, e.EntryType)
		}

		key := referenceKey{refType: e.ReferenceType, refID: e.ReferenceID}
		sum, seen := sums[key]
		if !seen {
			order = append(order, key)
		}
		if e.IsDebit() {
			sum = sum.Add(e.Amount)
		} else {
			sum = sum.Sub(e.Amount)
		}
		sums[key] = sum
	}

	for _, key := range order {
		if !sums[key].IsZero() {
			return fmt.Errorf("%w: entries for %s %s do not balance: debits exceed credits by %s",
				apperrors.ErrValidation, key.refType, key.refID, sums[key].String())
		}
	}
	return nil
}

// ChartLookup is the part of the chart of accounts the trial balance needs.
type ChartLookup interface {
	Accounts() []domain.Account
	AccountByCode(code string) (domain.Account, bool)
}

// BuildTrialBalance totals entries per account. Rows follow chart order and
// only include accounts with postings; each row's net lands in the debit or
// credit column. Codes missing from the chart are listed in UnknownCodes and
// left out of the totals.
func BuildTrialBalance(entries []domain.JournalEntry, lookup ChartLookup) domain.TrialBalance {
	debits := make(map[string]decimal.Decimal)
	credits := make(map[string]decimal.Decimal)
	unknown := make(map[string]struct{})

	for _, e := range entries {
		if _, ok := lookup.AccountByCode(e.AccountCode); !ok {
			unknown[e.AccountCode] = struct{}{}
			continue
		}
		if e.IsDebit() {
			debits[e.AccountCode] = debits[e.AccountCode].Add(e.Amount)
		} else {
			credits[e.AccountCode] = credits[e.AccountCode].Add(e.Amount)
		}
	}

	tb := domain.TrialBalance{
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for _, acc := range lookup.Accounts() {
		dr, hasDr := debits[acc.Code]
		cr, hasCr := credits[acc.Code]
		if !hasDr && !hasCr {
			continue
		}

		net := dr.Sub(cr)
		row := domain.TrialBalanceRow{
			AccountCode: acc.Code,
			AccountName: acc.Name,
			AccountType: acc.Type,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		if net.IsNegative() {
			row.Credit = net.Neg()
		} else {
			row.Debit = net
		}

		tb.Rows = append(tb.Rows, row)
		tb.TotalDebit = tb.TotalDebit.Add(row.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(row.Credit)
	}

	for code := range unknown {
		tb.UnknownCodes = append(tb.UnknownCodes, code)
	}
	sort.Strings(tb.UnknownCodes)

	return tb
}
