package memory

import "finboard/internal/core"

const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "password"
)

// DemoUser is the identity returned for the demo credentials.
func DemoUser() core.User {
	return core.User{
		ID:        "1",
		Name:      "John Doe",
		Email:     DemoEmail,
		Avatar:    "/avatar.jpg",
		IsPremium: true,
	}
}

func DefaultCategories() []core.Category {
	return []core.Category{
		{ID: "1", Name: "Salary", Type: core.Income},
		{ID: "2", Name: "Freelance", Type: core.Income},
		{ID: "3", Name: "Rent", Type: core.Expense},
		{ID: "4", Name: "Groceries", Type: core.Expense},
		{ID: "5", Name: "Utilities", Type: core.Expense},
		{ID: "6", Name: "Entertainment", Type: core.Expense},
		{ID: "7", Name: "Transport", Type: core.Expense},
		{ID: "8", Name: "Other", Type: core.Expense},
	}
}

func DefaultBudgets() []core.Budget {
	return []core.Budget{
		{ID: "1", Category: "Groceries", Amount: 500, Period: core.Monthly},
		{ID: "2", Category: "Entertainment", Amount: 200, Period: core.Monthly},
		{ID: "3", Category: "Transport", Amount: 150, Period: core.Monthly},
	}
}

// DefaultTransactions is what a fetch returns when no seed file overrides it.
func DefaultTransactions() []core.Transaction {
	return []core.Transaction{
		{ID: "1", Type: core.Income, Amount: 5000, Category: "Salary", Date: "2024-07-01", Note: "July Salary"},
		{ID: "2", Type: core.Expense, Amount: 1200, Category: "Rent", Date: "2024-07-02", Note: "Monthly rent"},
		{ID: "3", Type: core.Expense, Amount: 300, Category: "Groceries", Date: "2024-07-03"},
		{ID: "4", Type: core.Income, Amount: 200, Category: "Freelance", Date: "2024-07-04", Note: "Logo design"},
		{ID: "5", Type: core.Expense, Amount: 150, Category: "Utilities", Date: "2024-07-05"},
	}
}
