package store

import (
	"sync"
	"time"

	"finboard/internal/log"
)

// LoggingMiddleware logs every applied action with the resulting version.
func LoggingMiddleware(logger *log.Logger) Middleware {
	return func(next Reducer) Reducer {
		return func(s State, a Action) State {
			start := time.Now()
			out := next(s, a)
			fields := log.NewFields().WithAction(a.ActionType(), out.Version)
			if tx, ok := a.(AddTransaction); ok {
				fields.WithEntry(string(tx.Type), tx.Amount, tx.Category)
			}
			fields[log.FieldDuration] = time.Since(start).Milliseconds()
			logger.Debug("Action applied", fields.ToSlice()...)
			return out
		}
	}
}

// Entry is one recorded action.
type Entry struct {
	Action  string
	Version uint64
	At      time.Time
}

// History keeps the most recent applied actions, like a devtools action log.
type History struct {
	mu      sync.Mutex
	max     int
	entries []Entry
}

// NewHistory keeps at most max entries; max <= 0 keeps everything.
func NewHistory(max int) *History {
	return &History{max: max}
}

// Middleware records into h.
func (h *History) Middleware() Middleware {
	return func(next Reducer) Reducer {
		return func(s State, a Action) State {
			out := next(s, a)
			h.record(Entry{Action: a.ActionType(), Version: out.Version, At: time.Now()})
			return out
		}
	}
}

func (h *History) record(e Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, e)
	if h.max > 0 && len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
}

// Entries returns a copy of the recorded entries, oldest first.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Entry(nil), h.entries...)
}

// Actions returns just the action types, oldest first.
func (h *History) Actions() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.Action
	}
	return out
}
