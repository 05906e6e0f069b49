package core

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/badoux/checkmail"
)

const (
	Income  EntryType = "income"
	Expense EntryType = "expense"

	Monthly Period = "monthly"
	Yearly  Period = "yearly"

	// DateLayout is the ISO-8601 calendar date used by Transaction.Date.
	DateLayout = "2006-01-02"
)

type (
	// EntryType is the polarity of a transaction or category.
	EntryType string

	// Period is the window a budget cap applies to.
	Period string

	Category struct {
		ID   string    `json:"id"`
		Name string    `json:"name"`
		Type EntryType `json:"type"`
	}

	Budget struct {
		ID       string  `json:"id"`
		Category string  `json:"category"` // category name, not id
		Amount   float64 `json:"amount"`
		Period   Period  `json:"period"`
	}

	Transaction struct {
		ID       string    `json:"id"`
		Type     EntryType `json:"type"`
		Amount   float64   `json:"amount"`
		Category string    `json:"category"` // category name, not id
		Date     string    `json:"date"`
		Note     string    `json:"note,omitempty"`
	}

	User struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		Avatar    string `json:"avatar"`
		IsPremium bool   `json:"isPremium"`
	}

	// UserPatch carries a partial profile update. Nil fields are left untouched.
	UserPatch struct {
		Name      *string
		Email     *string
		Avatar    *string
		IsPremium *bool
	}

	Credentials struct {
		Email    string
		Password string
	}
)

var (
	// ErrInvalidCredentials is surfaced verbatim in the session error field.
	ErrInvalidCredentials = errors.New("Invalid credentials")

	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidType   = errors.New("invalid entry type")
	ErrInvalidPeriod = errors.New("invalid budget period")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrEmptyPassword = errors.New("empty password")
	ErrEmptyCategory = errors.New("empty category")
	ErrNoteTooLong   = errors.New("note too long (max 200 characters)")
)

func (t EntryType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidType
	}
}

func (p Period) Validate() error {
	switch p {
	case Monthly, Yearly:
		return nil
	default:
		return ErrInvalidPeriod
	}
}

// Apply returns a copy of u with the non-nil fields of p merged in.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.IsPremium != nil {
		u.IsPremium = *p.IsPremium
	}
	return u
}

// Validate checks the credential shape before a login is dispatched.
// It never decides whether the credentials are correct.
func (c Credentials) Validate() error {
	if err := checkmail.ValidateFormat(strings.TrimSpace(c.Email)); err != nil {
		return ErrInvalidEmail
	}
	if c.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

// Validate is the form-level check callers run before dispatching an add or
// edit. The ledger itself stores whatever it receives.
func (t Transaction) Validate() error {
	if err := t.Type.Validate(); err != nil {
		return err
	}
	if math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) || t.Amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if _, err := ParseDate(t.Date); err != nil {
		return err
	}
	if len(t.Note) > 200 {
		return ErrNoteTooLong
	}
	return nil
}

func (b Budget) Validate() error {
	if strings.TrimSpace(b.Category) == "" {
		return ErrEmptyCategory
	}
	if math.IsNaN(b.Amount) || math.IsInf(b.Amount, 0) || b.Amount < 0 {
		return ErrInvalidAmount
	}
	return b.Period.Validate()
}

// ParseDate parses an ISO-8601 calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDate renders t the way Transaction.Date stores it.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
