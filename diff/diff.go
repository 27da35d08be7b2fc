// Package diff computes edit scripts between ordered sequences so a view can
// update incrementally instead of re-rendering a whole list.
//
// Identity is decided by an id function and content by an equality function.
// Compute pairs elements with a longest-common-subsequence over identities;
// identities present on both sides but outside the subsequence become moves,
// the rest become removes or inserts, and any paired element whose content
// differs also gets a change op. The output depends only on the inputs.
//
// If an id occurs more than once in a sequence only its first occurrence takes
// part in identity matching. Later occurrences are keyed by position, so a
// duplicate at the same index on both sides shows up as a content change.
//
// Patch is the cheap path for a single element whose position is unchanged.
package diff

import (
	"errors"
	"fmt"
	"sort"
)

// ErrScriptMismatch is returned by Apply when a script was not computed for
// the given base sequence.
var ErrScriptMismatch = errors.New("diff: script does not match sequence")

// OpKind identifies an edit operation.
type OpKind int

const (
	OpRemove OpKind = iota
	OpMove
	OpInsert
	OpChange
)

func (k OpKind) String() string {
	switch k {
	case OpRemove:
		return "remove"
	case OpMove:
		return "move"
	case OpInsert:
		return "insert"
	case OpChange:
		return "change"
	default:
		return "unknown"
	}
}

// Op is one edit. OldIndex is -1 for inserts; NewIndex is -1 for removes.
// Value carries the new element for inserts and changes.
type Op[T any] struct {
	Kind     OpKind
	OldIndex int
	NewIndex int
	Value    T
}

// Script transforms a sequence of length OldLen into one of length NewLen.
// Ops are ordered removes, moves, inserts, changes; each group by index.
type Script[T any] struct {
	OldLen int
	NewLen int
	Ops    []Op[T]
}

// Empty reports whether the script leaves the sequence untouched.
func (s Script[T]) Empty() bool {
	return len(s.Ops) == 0 && s.OldLen == s.NewLen
}

// Count returns the number of ops of the given kind.
func (s Script[T]) Count(kind OpKind) int {
	n := 0
	for _, op := range s.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

type identity struct {
	id  string
	pos int // -1 for a first occurrence
}

func identities[T any](items []T, id func(T) string) []identity {
	keys := make([]identity, len(items))
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		k := id(it)
		if _, dup := seen[k]; dup {
			keys[i] = identity{id: k, pos: i}
			continue
		}
		seen[k] = struct{}{}
		keys[i] = identity{id: k, pos: -1}
	}
	return keys
}

// Compute returns the edit script turning old into next.
func Compute[T any](old, next []T, id func(T) string, equal func(a, b T) bool) Script[T] {
	oldKeys := identities(old, id)
	newKeys := identities(next, id)
	m, n := len(oldKeys), len(newKeys)

	// lcs[i][j] is the LCS length of oldKeys[i:] and newKeys[j:].
	lcs := make([][]int, m+1)
	for i := range lcs {
		lcs[i] = make([]int, n+1)
	}
	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			if oldKeys[i] == newKeys[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	oldToNew := make([]int, m)
	newToOld := make([]int, n)
	for i := range oldToNew {
		oldToNew[i] = -1
	}
	for j := range newToOld {
		newToOld[j] = -1
	}
	for i, j := 0, 0; i < m && j < n; {
		switch {
		case oldKeys[i] == newKeys[j]:
			oldToNew[i], newToOld[j] = j, i
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			i++
		default:
			j++
		}
	}

	newIndex := make(map[identity]int, n)
	for j, k := range newKeys {
		newIndex[k] = j
	}

	var removes, moves, inserts, changes []Op[T]
	for i, k := range oldKeys {
		if oldToNew[i] >= 0 {
			continue
		}
		if j, ok := newIndex[k]; ok && newToOld[j] < 0 {
			oldToNew[i], newToOld[j] = j, i
			moves = append(moves, Op[T]{Kind: OpMove, OldIndex: i, NewIndex: j})
			continue
		}
		removes = append(removes, Op[T]{Kind: OpRemove, OldIndex: i, NewIndex: -1})
	}
	for j := range newKeys {
		if newToOld[j] < 0 {
			inserts = append(inserts, Op[T]{Kind: OpInsert, OldIndex: -1, NewIndex: j, Value: next[j]})
			continue
		}
		i := newToOld[j]
		if !equal(old[i], next[j]) {
			changes = append(changes, Op[T]{Kind: OpChange, OldIndex: i, NewIndex: j, Value: next[j]})
		}
	}
	sort.Slice(moves, func(a, b int) bool { return moves[a].NewIndex < moves[b].NewIndex })

	ops := make([]Op[T], 0, len(removes)+len(moves)+len(inserts)+len(changes))
	ops = append(ops, removes...)
	ops = append(ops, moves...)
	ops = append(ops, inserts...)
	ops = append(ops, changes...)
	return Script[T]{OldLen: m, NewLen: n, Ops: ops}
}

// Apply replays s on old and returns the resulting sequence. old is not
// modified.
func Apply[T any](old []T, s Script[T]) ([]T, error) {
	if len(old) != s.OldLen {
		return nil, fmt.Errorf("%w: base has %d elements, script expects %d", ErrScriptMismatch, len(old), s.OldLen)
	}
	out := make([]T, s.NewLen)
	filled := make([]bool, s.NewLen)
	gone := make([]bool, len(old))

	place := func(j int, v T) error {
		if j < 0 || j >= len(out) || filled[j] {
			return fmt.Errorf("%w: target index %d", ErrScriptMismatch, j)
		}
		out[j] = v
		filled[j] = true
		return nil
	}
	release := func(i int) error {
		if i < 0 || i >= len(old) || gone[i] {
			return fmt.Errorf("%w: source index %d", ErrScriptMismatch, i)
		}
		gone[i] = true
		return nil
	}

	for _, op := range s.Ops {
		var err error
		switch op.Kind {
		case OpRemove:
			err = release(op.OldIndex)
		case OpMove:
			if err = release(op.OldIndex); err == nil {
				err = place(op.NewIndex, old[op.OldIndex])
			}
		case OpInsert:
			err = place(op.NewIndex, op.Value)
		}
		if err != nil {
			return nil, err
		}
	}

	// Retained elements keep their relative order and fill the open slots.
	j := 0
	for i, v := range old {
		if gone[i] {
			continue
		}
		for j < len(out) && filled[j] {
			j++
		}
		if j == len(out) {
			return nil, fmt.Errorf("%w: more retained elements than open slots", ErrScriptMismatch)
		}
		out[j] = v
		filled[j] = true
	}
	for k, ok := range filled {
		if !ok {
			return nil, fmt.Errorf("%w: slot %d left empty", ErrScriptMismatch, k)
		}
	}

	for _, op := range s.Ops {
		if op.Kind != OpChange {
			continue
		}
		if op.NewIndex < 0 || op.NewIndex >= len(out) {
			return nil, fmt.Errorf("%w: change index %d", ErrScriptMismatch, op.NewIndex)
		}
		out[op.NewIndex] = op.Value
	}
	return out, nil
}

// Patch returns a copy of items with the element at index replaced by v. The
// second result is false, and items is returned unchanged, when index is out
// of range.
func Patch[T any](items []T, index int, v T) ([]T, bool) {
	if index < 0 || index >= len(items) {
		return items, false
	}
	out := make([]T, len(items))
	copy(out, items)
	out[index] = v
	return out, true
}
