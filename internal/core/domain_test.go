package core

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func TestEntryTypeAndPeriodValidate(t *testing.T) {
	if err := Income.Validate(); err != nil {
		t.Fatalf("income: %v", err)
	}
	if err := Expense.Validate(); err != nil {
		t.Fatalf("expense: %v", err)
	}
	if err := EntryType("transfer").Validate(); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
	if err := Monthly.Validate(); err != nil {
		t.Fatalf("monthly: %v", err)
	}
	if err := Period("weekly").Validate(); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestCredentialsValidate(t *testing.T) {
	cases := []struct {
		name string
		c    Credentials
		want error
	}{
		{"ok", Credentials{Email: "demo@example.com", Password: "password"}, nil},
		{"bad email", Credentials{Email: "demo", Password: "password"}, ErrInvalidEmail},
		{"empty email", Credentials{Password: "password"}, ErrInvalidEmail},
		{"empty password", Credentials{Email: "demo@example.com"}, ErrEmptyPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.c.Validate()
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{Type: Expense, Amount: 12.5, Category: "Groceries", Date: "2024-07-03"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{Type: "x", Amount: 1, Category: "c", Date: "2024-07-03"},
		{Type: Expense, Amount: 0, Category: "c", Date: "2024-07-03"},
		{Type: Expense, Amount: math.NaN(), Category: "c", Date: "2024-07-03"},
		{Type: Expense, Amount: 1, Category: " ", Date: "2024-07-03"},
		{Type: Expense, Amount: 1, Category: "c", Date: "03/07/2024"},
		{Type: Expense, Amount: 1, Category: "c", Date: "2024-07-03", Note: strings.Repeat("n", 201)},
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestBudgetValidate(t *testing.T) {
	if err := (Budget{Category: "Food", Amount: 0, Period: Yearly}).Validate(); err != nil {
		t.Fatalf("zero budget should be accepted by the form check: %v", err)
	}
	if err := (Budget{Category: "Food", Amount: -1, Period: Monthly}).Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if err := (Budget{Category: "Food", Amount: 1, Period: "daily"}).Validate(); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestUserPatchApply(t *testing.T) {
	u := User{ID: "1", Name: "John Doe", Email: "demo@example.com", Avatar: "/avatar.jpg", IsPremium: true}
	name := "Jane"
	premium := false
	got := UserPatch{Name: &name, IsPremium: &premium}.Apply(u)

	if got.Name != "Jane" || got.IsPremium {
		t.Fatalf("patch not applied: %+v", got)
	}
	if got.ID != u.ID || got.Email != u.Email || got.Avatar != u.Avatar {
		t.Fatalf("untouched fields changed: %+v", got)
	}
	if u.Name != "John Doe" {
		t.Fatalf("original user mutated: %+v", u)
	}
}

func TestDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-07-01")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Month() != time.July || FormatDate(d) != "2024-07-01" {
		t.Fatalf("unexpected date %v", d)
	}
}
