package dashboard

import (
	"context"
	"math"
	"testing"
	"time"

	"finboard/internal/backend/memory"
	"finboard/internal/cache"
	"finboard/internal/core"
	"finboard/internal/store"
)

func loggedInStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(memory.New(memory.WithLatency(memory.Latency{})))
	ctx := context.Background()
	if err := s.Dispatch(ctx, store.Login{Email: memory.DemoEmail, Password: memory.DemoPassword}).Wait(ctx); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := s.Dispatch(ctx, store.LoadTransactions{}).Wait(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func TestComputeSeedData(t *testing.T) {
	s := loggedInStore(t)

	m := Compute(s.Snapshot(), core.SavingsRateGuarded, nil)

	if !m.Ready {
		t.Error("expected Ready after login and load")
	}
	want := core.Summary{Income: 5200, Expenses: 1650, Net: 3550, SavingsRate: core.SavingsRate(5200, 3550, core.SavingsRateGuarded)}
	if m.Summary != want {
		t.Errorf("Summary = %+v, want %+v", m.Summary, want)
	}
	if len(m.Budgets) != 3 {
		t.Fatalf("len(Budgets) = %d, want 3", len(m.Budgets))
	}
	groceries := m.Budgets[0]
	if groceries.Budget.Category != "Groceries" || groceries.Status.Spent != 300 || groceries.Status.Remaining != 200 {
		t.Errorf("groceries line = %+v", groceries)
	}
	if groceries.Over() {
		t.Error("groceries should not be over budget")
	}
	if len(m.ByCategory) != 3 || m.ByCategory[0].Name != "Rent" {
		t.Errorf("ByCategory = %+v", m.ByCategory)
	}
	if m.Insights != nil {
		t.Error("nil engine should yield no insights")
	}
}

func TestReadyGate(t *testing.T) {
	tests := []struct {
		name  string
		state store.State
		want  bool
	}{
		{name: "logged out", state: store.State{}, want: false},
		{
			name: "loading",
			state: store.State{
				User:         store.UserState{User: &core.User{ID: "1"}, IsAuthenticated: true},
				Transactions: store.TransactionState{Loading: true},
			},
			want: false,
		},
		{
			name:  "ready",
			state: store.State{User: store.UserState{User: &core.User{ID: "1"}, IsAuthenticated: true}},
			want:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compute(tt.state, core.SavingsRateGuarded, nil).Ready; got != tt.want {
				t.Errorf("Ready = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRawPolicyWithoutIncome(t *testing.T) {
	st := store.State{Transactions: store.TransactionState{Transactions: []core.Transaction{
		{ID: "1", Type: core.Expense, Amount: 10, Category: "Other", Date: "2024-07-01"},
	}}}

	raw := Compute(st, core.SavingsRateRaw, nil).Summary.SavingsRate
	guarded := Compute(st, core.SavingsRateGuarded, nil).Summary.SavingsRate

	if !math.IsInf(raw, -1) {
		t.Errorf("raw savings rate = %v, want -Inf", raw)
	}
	if guarded != 0 {
		t.Errorf("guarded savings rate = %v, want 0", guarded)
	}
}

func TestSelectorMemoisesByVersion(t *testing.T) {
	s := loggedInStore(t)
	lru := cache.NewLRU[Metrics](4, time.Minute)
	sel := NewSelector(WithCache(lru))

	first := sel.Metrics(s.Snapshot())
	again := sel.Metrics(s.Snapshot())
	if first.Version != again.Version {
		t.Fatalf("versions differ: %d vs %d", first.Version, again.Version)
	}
	if st := lru.Stats(); st.Hits != 1 || st.Misses != 1 {
		t.Errorf("Stats() = %+v, want one hit and one miss", st)
	}

	s.Dispatch(context.Background(), store.DeleteBudget{ID: "1"})
	next := sel.Metrics(s.Snapshot())
	if len(next.Budgets) != 2 {
		t.Errorf("len(Budgets) = %d after delete, want 2", len(next.Budgets))
	}
	if len(next.Insights) == 0 {
		t.Error("default engine should report unbudgeted categories")
	}
}
