package dfa

import (
	"slices"
	"sort"
	"strings"
)

// Block is one equivalence class of a partition: a non-empty, immutable set of state indices kept
// in ascending order.
type Block struct {
	members  []int
	hashCode uint64
}

func newBlock(members []int) *Block {
	values := clone(members)
	slices.Sort(values)
	hashCode := uint64(len(values))
	for _, v := range values {
		hashCode += mix(v)
	}
	return &Block{members: values, hashCode: hashCode}
}

func (b *Block) Hash() uint64 {
	return b.hashCode
}

// Equals Returns true if both blocks hold the same states.
func (b *Block) Equals(other *Block) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.hashCode == other.hashCode && slices.Equal(b.members, other.members)
}

// Members Returns the state indices of this block in ascending order.
func (b *Block) Members() []int {
	return clone(b.members)
}

func (b *Block) Size() int {
	return len(b.members)
}

// Contains Returns true if state belongs to this block.
func (b *Block) Contains(state int) bool {
	_, ok := slices.BinarySearch(b.members, state)
	return ok
}

// Representative Returns the member whose transitions stand for the whole block.
func (b *Block) Representative() int {
	return b.members[0]
}

// labels returns the member labels of b sorted lexicographically.
func (b *Block) labels(a *Automaton) []string {
	labels := make([]string, len(b.members))
	for i, s := range b.members {
		labels[i] = a.states[s]
	}
	sort.Strings(labels)
	return labels
}

// Label Returns the display label of the block: its sorted member labels joined by commas and
// wrapped in parentheses, e.g. "(C,D)".
func (b *Block) Label(a *Automaton) string {
	return "(" + strings.Join(b.labels(a), ",") + ")"
}
