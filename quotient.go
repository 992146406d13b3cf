package dfa

import (
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// BlockName Returns the state label used for the i'th block in a quotient automaton.
func BlockName(i int) string {
	return "P" + strconv.Itoa(i)
}

// Quotient
// Builds the automaton whose states are the blocks of p, named BlockName(i). Transitions of a
// block are taken from its representative; since p is a fixed point of refinement every member
// would yield the same ones. A block is accepting if any member is, and the start block is the one
// holding the start state of a. Only alphabet symbols carry over.
func Quotient(a *Automaton, p *Partition) *Automaton {
	b := NewBuilderV1(p.Len(), len(a.alphabet))
	for _, sym := range a.alphabet {
		b.AddSymbol(a.symbols[sym])
	}
	for i := range p.blocks {
		b.CreateState(BlockName(i))
	}

	accept := bitset.New(uint(p.Len()))
	for i, blk := range p.blocks {
		rep := blk.Representative()
		for _, sym := range a.alphabet {
			dest := a.Step(rep, sym)
			if dest == -1 {
				continue
			}
			b.AddTransition(BlockName(i), a.symbols[sym], BlockName(p.BlockOf(dest)))
		}
		for _, s := range blk.members {
			if a.IsAccept(s) {
				accept.Set(uint(i))
				break
			}
		}
	}

	for i, ok := accept.NextSet(0); ok; i, ok = accept.NextSet(i + 1) {
		b.SetAccept(BlockName(int(i)), true)
	}
	if start := a.Start(); start != -1 {
		if blk := p.BlockOf(start); blk != -1 {
			b.SetStart(BlockName(blk))
		}
	}
	return b.Finish()
}
