package core

import (
	"math"
	"testing"
)

func TestStatusOf(t *testing.T) {
	b := Budget{ID: "b1", Category: "Food", Amount: 600, Period: Monthly}
	txs := []Transaction{
		{Type: Expense, Category: "Food", Amount: 300},
		{Type: Expense, Category: "Food", Amount: 80},
		{Type: Income, Category: "Food", Amount: 50},
		{Type: Expense, Category: "food", Amount: 999}, // exact match only
	}

	st := StatusOf(b, txs)
	if st.Spent != 380 {
		t.Errorf("Spent = %v, want 380", st.Spent)
	}
	if math.Abs(st.Percentage-63.33) > 0.01 {
		t.Errorf("Percentage = %v, want ~63.33", st.Percentage)
	}
	if st.Remaining != 220 {
		t.Errorf("Remaining = %v, want 220", st.Remaining)
	}
}

func TestStatusOfZeroAmount(t *testing.T) {
	spent := StatusOf(Budget{Category: "Food"}, []Transaction{{Type: Expense, Category: "Food", Amount: 10}})
	if !math.IsInf(spent.Percentage, 1) {
		t.Errorf("expected +Inf, got %v", spent.Percentage)
	}
	if spent.Remaining != -10 {
		t.Errorf("Remaining = %v, want -10", spent.Remaining)
	}

	idle := StatusOf(Budget{Category: "Food"}, nil)
	if !math.IsNaN(idle.Percentage) {
		t.Errorf("expected NaN, got %v", idle.Percentage)
	}
}

func TestSummarize(t *testing.T) {
	txs := []Transaction{
		{Type: Income, Amount: 5000, Category: "Salary"},
		{Type: Expense, Amount: 1200, Category: "Rent"},
		{Type: Expense, Amount: 300, Category: "Groceries"},
		{Type: Income, Amount: 200, Category: "Freelance"},
		{Type: Expense, Amount: 150, Category: "Utilities"},
	}
	s := Summarize(txs, SavingsRateGuarded)
	if s.Income != 5200 || s.Expenses != 1650 || s.Net != 3550 {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if math.Abs(s.SavingsRate-68.27) > 0.01 {
		t.Fatalf("SavingsRate = %v, want ~68.27", s.SavingsRate)
	}
}

func TestSavingsRatePolicies(t *testing.T) {
	tests := []struct {
		name   string
		income float64
		net    float64
		policy SavingsRatePolicy
		check  func(float64) bool
	}{
		{"guarded zero income", 0, -100, SavingsRateGuarded, func(f float64) bool { return f == 0 }},
		{"raw zero income negative net", 0, -100, SavingsRateRaw, func(f float64) bool { return math.IsInf(f, -1) }},
		{"raw zero income zero net", 0, 0, SavingsRateRaw, math.IsNaN},
		{"unknown policy guards", 0, 10, SavingsRatePolicy("other"), func(f float64) bool { return f == 0 }},
		{"normal", 200, 50, SavingsRateRaw, func(f float64) bool { return f == 25 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SavingsRate(tt.income, tt.net, tt.policy)
			if !tt.check(got) {
				t.Errorf("SavingsRate(%v, %v, %q) = %v", tt.income, tt.net, tt.policy, got)
			}
		})
	}
}

func TestNaNPropagates(t *testing.T) {
	s := Summarize([]Transaction{{Type: Expense, Amount: math.NaN()}}, SavingsRateGuarded)
	if !math.IsNaN(s.Expenses) || !math.IsNaN(s.Net) {
		t.Fatalf("expected NaN to propagate, got %+v", s)
	}
	if IsFinite(s.Net) {
		t.Fatalf("IsFinite(NaN) should be false")
	}
}

func TestExpensesByCategory(t *testing.T) {
	got := ExpensesByCategory([]Transaction{
		{Type: Expense, Category: "Rent", Amount: 1200},
		{Type: Income, Category: "Salary", Amount: 5000},
		{Type: Expense, Category: "Groceries", Amount: 300},
		{Type: Expense, Category: "Rent", Amount: 100},
	})
	if len(got) != 2 || got[0].Name != "Rent" || got[0].Amount != 1300 || got[1].Name != "Groceries" {
		t.Fatalf("unexpected grouping: %+v", got)
	}
}
