package store

import (
	"context"

	"finboard/internal/backend"
	"finboard/internal/core"
)

const fetchFailedMessage = "Failed to fetch transactions"

func transactionID(t core.Transaction) string { return t.ID }

type (
	// AddTransaction inserts a new transaction at the front of the ledger.
	AddTransaction struct {
		Type     core.EntryType
		Amount   float64
		Category string
		Date     string
		Note     string
		id       string
	}

	// EditTransaction replaces the transaction with the same id wholesale.
	EditTransaction struct {
		Transaction core.Transaction
	}

	DeleteTransaction struct {
		ID string
	}

	// LoadTransactions replaces the ledger with the backend's list.
	LoadTransactions struct{}

	transactionsPending   struct{}
	transactionsFulfilled struct{ items []core.Transaction }
	transactionsRejected  struct{ message string }
)

func (AddTransaction) ActionType() string        { return "transactions/addTransaction" }
func (EditTransaction) ActionType() string       { return "transactions/editTransaction" }
func (DeleteTransaction) ActionType() string     { return "transactions/deleteTransaction" }
func (LoadTransactions) ActionType() string      { return "transactions/fetchTransactions" }
func (transactionsPending) ActionType() string   { return "transactions/fetchTransactions/pending" }
func (transactionsFulfilled) ActionType() string { return "transactions/fetchTransactions/fulfilled" }
func (transactionsRejected) ActionType() string  { return "transactions/fetchTransactions/rejected" }

func (a AddTransaction) assignID(id string) Action {
	a.id = id
	return a
}

func (a AddTransaction) apply(s State) State {
	tx := core.Transaction{
		ID:       a.id,
		Type:     a.Type,
		Amount:   a.Amount,
		Category: a.Category,
		Date:     a.Date,
		Note:     a.Note,
	}
	s.Transactions.Transactions = prepend(s.Transactions.Transactions, tx)
	return s
}

func (a EditTransaction) apply(s State) State {
	s.Transactions.Transactions = replace(s.Transactions.Transactions, a.Transaction.ID, a.Transaction, transactionID)
	return s
}

func (a DeleteTransaction) apply(s State) State {
	s.Transactions.Transactions = remove(s.Transactions.Transactions, a.ID, transactionID)
	return s
}

func (LoadTransactions) pending() Action { return transactionsPending{} }

func (LoadTransactions) run(ctx context.Context, api backend.API) (Action, error) {
	items, err := api.FetchTransactions(ctx)
	if err != nil {
		return transactionsRejected{message: messageOr(err, fetchFailedMessage)}, err
	}
	return transactionsFulfilled{items: items}, nil
}

func (transactionsPending) apply(s State) State {
	s.Transactions.Loading = true
	s.Transactions.Error = ""
	return s
}

func (a transactionsFulfilled) apply(s State) State {
	s.Transactions.Loading = false
	s.Transactions.Transactions = a.items
	return s
}

func (a transactionsRejected) apply(s State) State {
	s.Transactions.Loading = false
	s.Transactions.Error = a.message
	return s
}

func messageOr(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
