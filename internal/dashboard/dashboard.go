// Package dashboard derives the figures the finance dashboard displays from a
// store snapshot. Results are memoised per snapshot version, since a version
// identifies its content exactly.
package dashboard

import (
	"strconv"

	"finboard/internal/cache"
	"finboard/internal/core"
	"finboard/internal/insights"
	"finboard/internal/store"
)

// BudgetLine pairs a budget with its current spend.
type BudgetLine struct {
	Budget core.Budget
	Status core.BudgetStatus
}

// Over reports whether spend exceeds the budget.
func (l BudgetLine) Over() bool {
	return l.Status.Percentage > 100
}

type Metrics struct {
	Version uint64

	// Ready is false while the user is logged out or transactions are
	// loading; the dashboard shows a placeholder instead of figures then.
	Ready bool

	Summary    core.Summary
	Budgets    []BudgetLine
	ByCategory []core.CategoryAmount
	Insights   []insights.Insight
}

type Selector struct {
	policy core.SavingsRatePolicy
	engine *insights.Engine
	memo   cache.Cache[Metrics]
}

type Option func(*Selector)

func WithPolicy(p core.SavingsRatePolicy) Option {
	return func(s *Selector) { s.policy = p }
}

func WithEngine(e *insights.Engine) Option {
	return func(s *Selector) { s.engine = e }
}

// WithCache replaces the memo. Pass a cache of size one to keep only the
// latest snapshot.
func WithCache(c cache.Cache[Metrics]) Option {
	return func(s *Selector) { s.memo = c }
}

func NewSelector(opts ...Option) *Selector {
	s := &Selector{policy: core.SavingsRateGuarded}
	for _, opt := range opts {
		opt(s)
	}
	if s.engine == nil {
		s.engine = insights.NewEngine()
	}
	if s.memo == nil {
		s.memo = cache.NewLRU[Metrics](16, 0)
	}
	return s
}

// Metrics returns the dashboard figures for st. Selectors are bound to one
// store; versions from different stores would collide in the memo.
func (s *Selector) Metrics(st store.State) Metrics {
	key := strconv.FormatUint(st.Version, 10)
	if m, ok := s.memo.Get(key); ok {
		return m
	}
	m := Compute(st, s.policy, s.engine)
	s.memo.Set(key, m)
	return m
}

// Compute derives Metrics without memoisation.
func Compute(st store.State, policy core.SavingsRatePolicy, engine *insights.Engine) Metrics {
	txs := st.Transactions.Transactions
	m := Metrics{
		Version:    st.Version,
		Ready:      st.User.IsAuthenticated && !st.Transactions.Loading,
		Summary:    core.Summarize(txs, policy),
		ByCategory: core.ExpensesByCategory(txs),
	}
	m.Budgets = make([]BudgetLine, len(st.Budgets.Budgets))
	for i, b := range st.Budgets.Budgets {
		m.Budgets[i] = BudgetLine{Budget: b, Status: core.StatusOf(b, txs)}
	}
	if engine != nil {
		m.Insights = engine.Run(insights.Input{
			Budgets:      st.Budgets.Budgets,
			Categories:   st.Categories.Categories,
			Transactions: txs,
		})
	}
	return m
}
