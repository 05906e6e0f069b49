// Package backend declares the outbound ports the store's async intents call.
// The only implementation shipped is the in-memory mock API in
// backend/memory; there is no network client.
package backend

import (
	"context"

	"finboard/internal/core"
)

type (
	// Authenticator resolves a login or logout after its simulated round trip.
	Authenticator interface {
		// Login returns the authenticated user or core.ErrInvalidCredentials.
		Login(ctx context.Context, c core.Credentials) (core.User, error)
		Logout(ctx context.Context) error
	}

	// TransactionSource returns the full transaction list for a bulk load.
	TransactionSource interface {
		FetchTransactions(ctx context.Context) ([]core.Transaction, error)
	}

	// Seeder provides the initial contents of the registry and budget slices.
	Seeder interface {
		Categories() []core.Category
		Budgets() []core.Budget
	}

	// API is everything the store needs from a backend.
	API interface {
		Authenticator
		TransactionSource
		Seeder
	}
)
