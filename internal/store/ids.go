package store

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator returns a new unique record id on every call.
type IDGenerator func() string

// UUIDs is the default generator.
func UUIDs() string {
	return uuid.NewString()
}

// Sequential returns a generator yielding prefix1, prefix2, ... which keeps
// test expectations readable.
func Sequential(prefix string) IDGenerator {
	var n atomic.Int64
	return func() string {
		return prefix + strconv.FormatInt(n.Add(1), 10)
	}
}
