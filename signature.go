package dfa

import (
	"iter"
	"slices"
)

// undefinedBlock marks a symbol without an outgoing transition in a signature.
const undefinedBlock = -1

// signature lists, per alphabet symbol, the index of the block that the symbol leads into.
type signature []int

func (s signature) Hash() uint64 {
	h := uint64(len(s))
	for _, v := range s {
		h = mixPhi(h + mix(v))
	}
	return h
}

func (s signature) Equals(other signature) bool {
	return slices.Equal(s, other)
}

// signatureGroups is a hash table from signature to the states that produced it. Groups are
// enumerated in the order their signature was first seen.
type signatureGroups struct {
	buckets     []*groupEntry
	mask        uint64
	loadFactory float64
	groups      []*groupEntry
}

type groupEntry struct {
	key     signature
	hash    uint64
	members []int
	next    *groupEntry
}

type optionsSignatureGroups struct {
	capacity    int
	loadFactory float64
}

type signatureGroupsOption func(*optionsSignatureGroups)

func withCapacity(capacity int) signatureGroupsOption {
	return func(o *optionsSignatureGroups) {
		o.capacity = capacity
	}
}

func withLoadFactory(loadFactory float64) signatureGroupsOption {
	return func(o *optionsSignatureGroups) {
		if loadFactory > 0 {
			o.loadFactory = loadFactory
		}
	}
}

func newSignatureGroups(options ...signatureGroupsOption) *signatureGroups {
	opt := &optionsSignatureGroups{
		capacity:    1,
		loadFactory: 0.75,
	}
	for _, fn := range options {
		fn(opt)
	}

	// Round the capacity up to a power of two.
	realCap := 1
	for realCap < opt.capacity {
		realCap <<= 1
	}

	return &signatureGroups{
		buckets:     make([]*groupEntry, realCap),
		mask:        uint64(realCap - 1),
		loadFactory: opt.loadFactory,
	}
}

// Add records that state produced key.
func (m *signatureGroups) Add(key signature, state int) {
	hash := key.Hash()
	index := hash & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.hash == hash && e.key.Equals(key) {
			e.members = append(e.members, state)
			return
		}
	}

	e := &groupEntry{
		key:     key,
		hash:    hash,
		members: []int{state},
		next:    m.buckets[index],
	}
	m.buckets[index] = e
	m.groups = append(m.groups, e)

	if float64(len(m.groups))/float64(len(m.buckets)) > m.loadFactory {
		m.resize()
	}
}

// Get Returns the states recorded for key.
func (m *signatureGroups) Get(key signature) ([]int, bool) {
	hash := key.Hash()
	for e := m.buckets[hash&m.mask]; e != nil; e = e.next {
		if e.hash == hash && e.key.Equals(key) {
			return e.members, true
		}
	}
	return nil, false
}

func (m *signatureGroups) resize() {
	newCap := len(m.buckets) << 1
	newBuckets := make([]*groupEntry, newCap)
	newMask := uint64(newCap - 1)

	for _, e := range m.groups {
		newIndex := e.hash & newMask
		e.next = newBuckets[newIndex]
		newBuckets[newIndex] = e
	}

	m.buckets = newBuckets
	m.mask = newMask
}

// Size Returns the number of distinct signatures.
func (m *signatureGroups) Size() int {
	return len(m.groups)
}

// Iterator Enumerates signatures and their states in first-seen order.
func (m *signatureGroups) Iterator() iter.Seq2[signature, []int] {
	return func(yield func(signature, []int) bool) {
		for _, e := range m.groups {
			if !yield(e.key, e.members) {
				return
			}
		}
	}
}
