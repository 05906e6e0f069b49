package store

import "finboard/internal/core"

func budgetID(b core.Budget) string { return b.ID }

type (
	// AddBudget appends a budget. The amount is stored as given.
	AddBudget struct {
		Category string
		Amount   float64
		Period   core.Period
		id       string
	}

	// EditBudget replaces the budget with the same id wholesale.
	EditBudget struct {
		Budget core.Budget
	}

	DeleteBudget struct {
		ID string
	}
)

func (AddBudget) ActionType() string    { return "budgets/addBudget" }
func (EditBudget) ActionType() string   { return "budgets/editBudget" }
func (DeleteBudget) ActionType() string { return "budgets/deleteBudget" }

func (a AddBudget) assignID(id string) Action {
	a.id = id
	return a
}

func (a AddBudget) apply(s State) State {
	b := core.Budget{ID: a.id, Category: a.Category, Amount: a.Amount, Period: a.Period}
	s.Budgets.Budgets = push(s.Budgets.Budgets, b)
	return s
}

func (a EditBudget) apply(s State) State {
	s.Budgets.Budgets = replace(s.Budgets.Budgets, a.Budget.ID, a.Budget, budgetID)
	return s
}

func (a DeleteBudget) apply(s State) State {
	s.Budgets.Budgets = remove(s.Budgets.Budgets, a.ID, budgetID)
	return s
}
