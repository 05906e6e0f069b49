package store

import (
	"encoding/json"
	"slices"

	"finboard/internal/core"
)

// SessionPhase names the state-machine position of the session slice.
type SessionPhase string

const (
	LoggedOut SessionPhase = "logged_out"
	Pending   SessionPhase = "pending"
	LoggedIn  SessionPhase = "logged_in"
	Failed    SessionPhase = "error"
)

type UserState struct {
	User            *core.User `json:"user"`
	IsAuthenticated bool       `json:"isAuthenticated"`
	Loading         bool       `json:"loading"`
	Error           string     `json:"error,omitempty"`
}

type TransactionState struct {
	Transactions []core.Transaction `json:"transactions"`
	Loading      bool               `json:"loading"`
	Error        string             `json:"error,omitempty"`
}

type BudgetState struct {
	Budgets []core.Budget `json:"budgets"`
}

type CategoryState struct {
	Categories []core.Category `json:"categories"`
}

// State is one snapshot of every slice. Snapshot and listeners receive
// private copies, so writing to a State's records never reaches the store.
type State struct {
	User         UserState        `json:"user"`
	Transactions TransactionState `json:"transactions"`
	Budgets      BudgetState      `json:"budgets"`
	Categories   CategoryState    `json:"categories"`

	// Version increases by one for every applied action.
	Version uint64 `json:"-"`
}

// clone deep-copies the record slices and the user so the copy shares no
// memory with the store.
func (s State) clone() State {
	s.Transactions.Transactions = slices.Clone(s.Transactions.Transactions)
	s.Budgets.Budgets = slices.Clone(s.Budgets.Budgets)
	s.Categories.Categories = slices.Clone(s.Categories.Categories)
	if s.User.User != nil {
		u := *s.User.User
		s.User.User = &u
	}
	return s
}

// Phase derives the session state-machine position from the slice fields.
func (u UserState) Phase() SessionPhase {
	switch {
	case u.Loading:
		return Pending
	case u.User != nil:
		return LoggedIn
	case u.Error != "":
		return Failed
	default:
		return LoggedOut
	}
}

// Consistent reports whether IsAuthenticated and User agree.
func (u UserState) Consistent() bool {
	return u.IsAuthenticated == (u.User != nil)
}

// JSON renders the snapshot the way the devtools state monitor shows it.
// Non-finite amounts cannot be encoded and return an error.
func (s State) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
