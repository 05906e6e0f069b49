package core

import "math"

// SavingsRatePolicy selects how the savings rate behaves when income is zero.
type SavingsRatePolicy string

const (
	// SavingsRateGuarded reports 0 when there is no income.
	SavingsRateGuarded SavingsRatePolicy = "guarded"
	// SavingsRateRaw divides unconditionally, yielding NaN or ±Inf on zero income.
	SavingsRateRaw SavingsRatePolicy = "raw"
)

func (p SavingsRatePolicy) Valid() bool {
	return p == SavingsRateGuarded || p == SavingsRateRaw
}

// Summary is the dashboard's headline figures.
type Summary struct {
	Income      float64
	Expenses    float64
	Net         float64
	SavingsRate float64 // percent
}

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount float64
}

// BudgetStatus is the spend against a single budget.
type BudgetStatus struct {
	Spent      float64
	Percentage float64
	Remaining  float64
}

// Total sums the amounts of every transaction of the given type.
func Total(txs []Transaction, typ EntryType) float64 {
	var sum float64
	for _, t := range txs {
		if t.Type == typ {
			sum += t.Amount
		}
	}
	return sum
}

// Summarize computes income, expenses, net and savings rate.
func Summarize(txs []Transaction, policy SavingsRatePolicy) Summary {
	income := Total(txs, Income)
	expenses := Total(txs, Expense)
	net := income - expenses
	return Summary{
		Income:      income,
		Expenses:    expenses,
		Net:         net,
		SavingsRate: SavingsRate(income, net, policy),
	}
}

// SavingsRate returns net/income as a percentage under the given policy.
// Unknown policies behave as SavingsRateGuarded.
func SavingsRate(income, net float64, policy SavingsRatePolicy) float64 {
	if policy == SavingsRateRaw {
		return net / income * 100
	}
	if income > 0 {
		return net / income * 100
	}
	return 0
}

// Spent sums expense transactions whose category matches exactly.
func Spent(txs []Transaction, category string) float64 {
	var sum float64
	for _, t := range txs {
		if t.Type == Expense && t.Category == category {
			sum += t.Amount
		}
	}
	return sum
}

// StatusOf reports spend against b. A zero budget amount is not special-cased:
// the percentage follows IEEE division and may be +Inf or NaN.
func StatusOf(b Budget, txs []Transaction) BudgetStatus {
	spent := Spent(txs, b.Category)
	return BudgetStatus{
		Spent:      spent,
		Percentage: spent / b.Amount * 100,
		Remaining:  b.Amount - spent,
	}
}

// ExpensesByCategory groups expense amounts by category in first-seen order.
func ExpensesByCategory(txs []Transaction) []CategoryAmount {
	idx := map[string]int{}
	var out []CategoryAmount
	for _, t := range txs {
		if t.Type != Expense {
			continue
		}
		i, ok := idx[t.Category]
		if !ok {
			i = len(out)
			idx[t.Category] = i
			out = append(out, CategoryAmount{Name: t.Category})
		}
		out[i].Amount += t.Amount
	}
	return out
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
