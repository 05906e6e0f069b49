// Package insights produces the canned budget recommendations shown next to
// the budget planner.
//
// Each recommendation comes from a Rule. Rules run in registration order and
// every rule may contribute zero or more insights, so the output order is
// stable for a given input.
package insights

import (
	"fmt"
	"math"
	"strings"

	"finboard/internal/core"
	"finboard/internal/log"
)

// Kind tells a suggestion apart from a warning.
type Kind string

const (
	Tip     Kind = "tip"
	Warning Kind = "warning"
)

type Insight struct {
	Kind    Kind
	Message string
}

func (i Insight) String() string { return i.Message }

// Input is the part of a snapshot the rules look at.
type Input struct {
	Budgets      []core.Budget
	Categories   []core.Category
	Transactions []core.Transaction
}

// Rule inspects the input and returns its insights, if any.
type Rule interface {
	Name() string
	Apply(in Input) []Insight
}

const (
	// MaxUnbudgeted is how many unbudgeted categories are named in one tip.
	MaxUnbudgeted = 3

	overBudgetPercent  = 100
	nearBudgetPercent  = 80
	budgetIncomeFactor = 0.8
)

// UnbudgetedRule suggests budgets for expense categories that have none.
type UnbudgetedRule struct{}

func (UnbudgetedRule) Name() string { return "unbudgeted" }

func (UnbudgetedRule) Apply(in Input) []Insight {
	budgeted := make(map[string]struct{}, len(in.Budgets))
	for _, b := range in.Budgets {
		budgeted[b.Category] = struct{}{}
	}
	var names []string
	for _, c := range in.Categories {
		if c.Type != core.Expense {
			continue
		}
		if _, ok := budgeted[c.Name]; ok {
			continue
		}
		names = append(names, c.Name)
		if len(names) == MaxUnbudgeted {
			break
		}
	}
	if len(names) == 0 {
		return nil
	}
	return []Insight{{Kind: Tip, Message: "Consider setting budgets for: " + strings.Join(names, ", ")}}
}

// SpendingRule warns about budgets that are exceeded or close to it.
// A zero budget with spending yields +Inf percent and counts as exceeded;
// NaN percentages match neither threshold.
type SpendingRule struct{}

func (SpendingRule) Name() string { return "spending" }

func (SpendingRule) Apply(in Input) []Insight {
	var out []Insight
	for _, b := range in.Budgets {
		st := core.StatusOf(b, in.Transactions)
		switch {
		case st.Percentage > overBudgetPercent:
			out = append(out, Insight{
				Kind:    Warning,
				Message: fmt.Sprintf("%s is over budget by $%.2f", b.Category, math.Abs(st.Remaining)),
			})
		case st.Percentage > nearBudgetPercent:
			out = append(out, Insight{
				Kind:    Warning,
				Message: fmt.Sprintf("%s is approaching budget limit (%.1f%%)", b.Category, st.Percentage),
			})
		}
	}
	return out
}

// BudgetLoadRule flags a total budget above 80% of recorded income.
type BudgetLoadRule struct{}

func (BudgetLoadRule) Name() string { return "budget_load" }

func (BudgetLoadRule) Apply(in Input) []Insight {
	var total float64
	for _, b := range in.Budgets {
		total += b.Amount
	}
	if total > core.Total(in.Transactions, core.Income)*budgetIncomeFactor {
		return []Insight{{Kind: Tip, Message: "Your total budget is quite high relative to income. Consider reducing some budgets."}}
	}
	return nil
}

// Engine runs an ordered set of rules.
type Engine struct {
	rules  []Rule
	logger *log.Logger
}

// DefaultRules returns the budget planner rules in display order.
func DefaultRules() []Rule {
	return []Rule{UnbudgetedRule{}, SpendingRule{}, BudgetLoadRule{}}
}

// NewEngine uses DefaultRules when none are given.
func NewEngine(rules ...Rule) *Engine {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Engine{rules: rules, logger: log.Discard()}
}

// WithLogger logs per-rule results at debug level under the insights
// component.
func (e *Engine) WithLogger(l *log.Logger) *Engine {
	e.logger = l.WithComponent(log.ComponentInsights)
	return e
}

// Register appends a rule; it runs after the existing ones.
func (e *Engine) Register(r Rule) {
	e.rules = append(e.rules, r)
}

// Rules lists rule names in run order.
func (e *Engine) Rules() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name()
	}
	return names
}

func (e *Engine) Run(in Input) []Insight {
	var out []Insight
	for _, r := range e.rules {
		got := r.Apply(in)
		if len(got) > 0 {
			e.logger.Debug("Rule matched", "rule", r.Name(), log.FieldCount, len(got))
		}
		out = append(out, got...)
	}
	return out
}

// ForBudgets runs the default rules.
func ForBudgets(in Input) []Insight {
	return NewEngine().Run(in)
}

// Messages flattens insights to their text.
func Messages(in []Insight) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = v.Message
	}
	return out
}
