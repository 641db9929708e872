// Package statement turns a company's ledger into financial statements and metrics.
// Everything in this package is pure computation: no I/O, no shared state, and safe
// for concurrent use.
package statement

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Business-Ledger-Backend/internal/model"
)

// accountKey identifies one grouping bucket. Grouping on the pair keeps an account
// label that is reused with a different type from switching sections.
type accountKey struct {
	account string
	kind    model.TransactionType
}

// Aggregate builds the balance sheet and income statement for the given transactions.
//
// The transactions are expected to be already filtered to one company and to the
// period; period is attached to the result unchanged. Transactions sharing an account
// label and type are merged into a single AccountSummary; a label used with two types
// yields one summary per type rather than a single label-wide total. Transactions with an
// unknown type or a negative amount are skipped.
//
// Aggregate never fails: an empty slice yields empty lists and zero totals. The result
// does not depend on the order of transactions; every summary list is sorted by account.
func Aggregate(transactions []model.Transaction, period model.Period) model.FinancialStatements {
	totals := make(map[accountKey]decimal.Decimal)

	for _, t := range transactions {
		if !model.ValidTransactionTypes[t.Type] || t.Amount.IsNegative() {
			continue
		}
		key := accountKey{account: t.Account, kind: t.Type}
		totals[key] = totals[key].Add(t.Amount)
	}

	sections := map[model.TransactionType][]model.AccountSummary{
		model.TransactionTypeAsset:     {},
		model.TransactionTypeLiability: {},
		model.TransactionTypeIncome:    {},
		model.TransactionTypeExpense:   {},
	}
	for key, amount := range totals {
		sections[key.kind] = append(sections[key.kind], model.AccountSummary{
			Account: key.account,
			Amount:  amount,
		})
	}
	for _, summaries := range sections {
		sortSummaries(summaries)
	}

	assets := sections[model.TransactionTypeAsset]
	liabilities := sections[model.TransactionTypeLiability]
	revenues := sections[model.TransactionTypeIncome]
	expenses := sections[model.TransactionTypeExpense]

	totalAssets := sum(assets)
	totalLiabilities := sum(liabilities)
	totalRevenue := sum(revenues)
	totalExpense := sum(expenses)
	netIncome := totalRevenue.Sub(totalExpense)

	return model.FinancialStatements{
		Period: period,
		BalanceSheet: model.BalanceSheet{
			Assets:      assets,
			Liabilities: liabilities,
			Equity: []model.AccountSummary{
				{Account: model.NetIncomeAccount, Amount: netIncome},
			},
			TotalAssets:      totalAssets,
			TotalLiabilities: totalLiabilities,
			TotalEquity:      totalAssets.Sub(totalLiabilities),
		},
		IncomeStatement: model.IncomeStatement{
			Revenues:     revenues,
			Expenses:     expenses,
			TotalRevenue: totalRevenue,
			TotalExpense: totalExpense,
			NetIncome:    netIncome,
		},
	}
}

func sum(summaries []model.AccountSummary) decimal.Decimal {
	total := decimal.Zero
	for _, s := range summaries {
		total = total.Add(s.Amount)
	}
	return total
}

func sortSummaries(summaries []model.AccountSummary) {
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Account < summaries[j].Account
	})
}
