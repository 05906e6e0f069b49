// Package memory is the mock finance API: fixed seed data, one demo account
// and timer delays standing in for network latency.
package memory

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"finboard/internal/backend"
	"finboard/internal/core"
	"finboard/internal/log"
)

var _ backend.API = (*Store)(nil)

// ErrUnavailable is a convenience failure for FailFetch and FailLogout.
var ErrUnavailable = errors.New("mock api unavailable")

// Latency is the simulated round trip of each call.
type Latency struct {
	Login  time.Duration
	Logout time.Duration
	Fetch  time.Duration
}

// DefaultLatency matches the delays of the demo UI.
func DefaultLatency() Latency {
	return Latency{
		Login:  time.Second,
		Logout: 500 * time.Millisecond,
		Fetch:  500 * time.Millisecond,
	}
}

type Store struct {
	mu        sync.Mutex
	latency   Latency
	email     string
	hash      []byte
	user      core.User
	cats      []core.Category
	budgets   []core.Budget
	items     []core.Transaction
	fetchErr  error
	logoutErr error
	logger    *log.Logger
}

type Option func(*Store)

func WithLatency(l Latency) Option {
	return func(s *Store) { s.latency = l }
}

// WithCredentials replaces the demo email and password.
func WithCredentials(email, password string) Option {
	return func(s *Store) {
		s.email = email
		s.user.Email = email
		s.hash = hashPassword(password)
	}
}

// WithLogger logs call outcomes under the backend component.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l.WithComponent(log.ComponentBackend) }
}

func WithTransactions(txs []core.Transaction) Option {
	return func(s *Store) { s.items = slices.Clone(txs) }
}

func WithCategories(cats []core.Category) Option {
	return func(s *Store) { s.cats = slices.Clone(cats) }
}

func WithBudgets(budgets []core.Budget) Option {
	return func(s *Store) { s.budgets = slices.Clone(budgets) }
}

func New(opts ...Option) *Store {
	s := &Store{
		latency: DefaultLatency(),
		email:   DemoEmail,
		user:    DemoUser(),
		cats:    DefaultCategories(),
		budgets: DefaultBudgets(),
		items:   DefaultTransactions(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.hash == nil {
		s.hash = hashPassword(DemoPassword)
	}
	if s.logger == nil {
		s.logger = log.Discard()
	}
	return s
}

// NewFromFiles seeds the store from text files under base. Missing or empty
// files fall back to the built-in seeds.
//
//	seed_categories.txt    name,type
//	seed_budgets.txt       category,amount,period
//	seed_transactions.txt  date,type,amount,category[,note]
func NewFromFiles(base string, opts ...Option) *Store {
	var seeded []Option
	if cats := readCategories(filepath.Join(base, "seed_categories.txt")); len(cats) > 0 {
		seeded = append(seeded, WithCategories(cats))
	}
	if budgets := readBudgets(filepath.Join(base, "seed_budgets.txt")); len(budgets) > 0 {
		seeded = append(seeded, WithBudgets(budgets))
	}
	if txs := readTransactions(filepath.Join(base, "seed_transactions.txt")); len(txs) > 0 {
		seeded = append(seeded, WithTransactions(txs))
	}
	return New(append(seeded, opts...)...)
}

// Login waits the login latency, then accepts only the configured account.
func (s *Store) Login(ctx context.Context, c core.Credentials) (core.User, error) {
	if err := wait(ctx, s.latency.Login); err != nil {
		return core.User{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.Email != s.email || s.hash == nil {
		s.logger.InfoContext(ctx, "Login rejected", log.FieldOperation, log.OpLogin, log.FieldEmail, c.Email)
		return core.User{}, core.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(c.Password)); err != nil {
		s.logger.InfoContext(ctx, "Login rejected", log.FieldOperation, log.OpLogin, log.FieldEmail, c.Email)
		return core.User{}, core.ErrInvalidCredentials
	}
	s.logger.InfoContext(ctx, "Login accepted", log.FieldOperation, log.OpLogin, log.FieldEmail, c.Email)
	return s.user, nil
}

func (s *Store) Logout(ctx context.Context) error {
	if err := wait(ctx, s.latency.Logout); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.logoutErr != nil {
		s.logger.WarnContext(ctx, "Logout failed", log.FieldOperation, log.OpLogout, log.FieldError, s.logoutErr)
		return s.logoutErr
	}
	s.logger.InfoContext(ctx, "Logout completed", log.FieldOperation, log.OpLogout)
	return nil
}

// FetchTransactions returns a copy of the seeded list, or the injected failure.
func (s *Store) FetchTransactions(ctx context.Context) ([]core.Transaction, error) {
	if err := wait(ctx, s.latency.Fetch); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetchErr != nil {
		s.logger.WarnContext(ctx, "Fetch failed", log.FieldOperation, log.OpLoad, log.FieldError, s.fetchErr)
		return nil, s.fetchErr
	}
	s.logger.DebugContext(ctx, "Transactions fetched", log.FieldOperation, log.OpLoad, log.FieldCount, len(s.items))
	return slices.Clone(s.items), nil
}

// Categories returns the registry seed.
func (s *Store) Categories() []core.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.cats)
}

// Budgets returns the budget ledger seed.
func (s *Store) Budgets() []core.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.budgets)
}

// FailFetch makes subsequent fetches fail with err. Nil restores success.
func (s *Store) FailFetch(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchErr = err
}

// FailLogout makes subsequent logouts fail with err. Nil restores success.
func (s *Store) FailLogout(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logoutErr = err
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// hashPassword returns nil when bcrypt rejects the input (over 72 bytes),
// which makes every login with that account fail.
func hashPassword(password string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil
	}
	return hash
}

func readCategories(path string) []core.Category {
	var out []core.Category
	seen := map[string]struct{}{}
	for i, fields := range readRecords(path) {
		if len(fields) != 2 {
			continue
		}
		name, typ := fields[0], core.EntryType(strings.ToLower(fields[1]))
		if name == "" || typ.Validate() != nil {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, core.Category{ID: strconv.Itoa(i + 1), Name: name, Type: typ})
	}
	return out
}

func readBudgets(path string) []core.Budget {
	var out []core.Budget
	for i, fields := range readRecords(path) {
		if len(fields) != 3 {
			continue
		}
		amount, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		b := core.Budget{ID: strconv.Itoa(i + 1), Category: fields[0], Amount: amount, Period: core.Period(strings.ToLower(fields[2]))}
		if b.Validate() != nil {
			continue
		}
		out = append(out, b)
	}
	return out
}

func readTransactions(path string) []core.Transaction {
	var out []core.Transaction
	for i, fields := range readRecords(path) {
		if len(fields) < 4 {
			continue
		}
		amount, err := core.ParseAmount(fields[2])
		if err != nil {
			continue
		}
		tx := core.Transaction{
			ID:       strconv.Itoa(i + 1),
			Date:     fields[0],
			Type:     core.EntryType(strings.ToLower(fields[1])),
			Amount:   amount,
			Category: fields[3],
		}
		if len(fields) > 4 {
			tx.Note = strings.Join(fields[4:], ",")
		}
		if tx.Validate() != nil {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// readRecords returns the comma-separated, trimmed fields of every non-blank,
// non-comment line. A missing file yields nil.
func readRecords(path string) [][]string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	var out [][]string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		out = append(out, fields)
	}
	return out
}

// String describes the store for startup logs.
func (s *Store) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("memory(categories=%d budgets=%d transactions=%d)", len(s.cats), len(s.budgets), len(s.items))
}
