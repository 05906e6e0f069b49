package store

import "slices"

// Helpers that never write into the backing array of their input, so the
// previous snapshot stays intact.

func prepend[T any](xs []T, x T) []T {
	out := make([]T, 0, len(xs)+1)
	out = append(out, x)
	return append(out, xs...)
}

func push[T any](xs []T, x T) []T {
	out := make([]T, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, x)
}

// replace swaps the first element whose id matches. Absent ids return xs.
func replace[T any](xs []T, id string, x T, idOf func(T) string) []T {
	i := slices.IndexFunc(xs, func(v T) bool { return idOf(v) == id })
	if i < 0 {
		return xs
	}
	out := slices.Clone(xs)
	out[i] = x
	return out
}

// remove drops every element whose id matches. Absent ids return xs.
func remove[T any](xs []T, id string, idOf func(T) string) []T {
	match := func(v T) bool { return idOf(v) == id }
	if !slices.ContainsFunc(xs, match) {
		return xs
	}
	return slices.DeleteFunc(slices.Clone(xs), match)
}
