package dfa

import "fmt"

// Partition A disjoint cover of the states of an automaton by non-empty blocks, together with the
// reverse lookup from state to block index. Each refinement round produces a new Partition; the
// round number identifies its generation.
type Partition struct {
	a       *Automaton
	blocks  []*Block
	blockOf []int
	round   int
}

func newPartition(a *Automaton, blocks []*Block, round int) *Partition {
	blockOf := make([]int, a.GetNumStates())
	for i := range blockOf {
		blockOf[i] = -1
	}
	for i, b := range blocks {
		for _, s := range b.members {
			blockOf[s] = i
		}
	}
	return &Partition{a: a, blocks: blocks, blockOf: blockOf, round: round}
}

// Len Returns the number of blocks.
func (p *Partition) Len() int {
	return len(p.blocks)
}

// Block Returns the i'th block.
func (p *Partition) Block(i int) *Block {
	return p.blocks[i]
}

// Blocks Returns all blocks in index order.
func (p *Partition) Blocks() []*Block {
	return clone(p.blocks)
}

// BlockOf Returns the index of the block holding state, -1 if the state is not covered.
func (p *Partition) BlockOf(state int) int {
	if state < 0 || state >= len(p.blockOf) {
		return -1
	}
	return p.blockOf[state]
}

// Round Returns the refinement round that produced this partition; the initial acceptance split
// is round 0.
func (p *Partition) Round() int {
	return p.round
}

// Automaton Returns the automaton whose states this partition covers.
func (p *Partition) Automaton() *Automaton {
	return p.a
}

// Label Returns the display label of the i'th block.
func (p *Partition) Label(i int) string {
	return p.blocks[i].Label(p.a)
}

// Labels Returns the member labels of every block, each sorted.
func (p *Partition) Labels() [][]string {
	out := make([][]string, len(p.blocks))
	for i, b := range p.blocks {
		out[i] = b.labels(p.a)
	}
	return out
}

// signature computes the signature of state against p.
func (p *Partition) signature(state int) signature {
	sig := make(signature, len(p.a.alphabet))
	for i, sym := range p.a.alphabet {
		dest := p.a.Step(state, sym)
		if dest == -1 {
			sig[i] = undefinedBlock
			continue
		}
		sig[i] = p.blockOf[dest]
	}
	return sig
}

func (p *Partition) String() string {
	return fmt.Sprintf("round %d: %v", p.round, p.Labels())
}

type refineOption struct {
	onRound func(*Partition)
}

// RefineOption configures Refine.
type RefineOption func(*refineOption)

// WithRoundHook Registers fn to be called with the initial partition and with the partition
// produced by every round that split a block.
func WithRoundHook(fn func(*Partition)) RefineOption {
	return func(o *refineOption) {
		if fn != nil {
			o.onRound = fn
		}
	}
}

// Refine
// Computes the coarsest partition of the states of a that respects acceptance and transitions,
// i.e. the Myhill-Nerode equivalence classes. The automaton should already be restricted to its
// reachable states.
//
// The initial partition separates accepting from non-accepting states (empty blocks are omitted).
// Each round groups the members of every block by their signature against the partition at the
// start of the round; the first round in which no block splits yields the result. Every splitting
// round strictly increases the number of blocks, so there are at most GetNumStates() rounds, each
// costing O(states * alphabet).
func Refine(a *Automaton, opts ...RefineOption) *Partition {
	o := &refineOption{onRound: func(*Partition) {}}
	for _, fn := range opts {
		fn(o)
	}

	numStates := a.GetNumStates()
	accepting := make([]int, 0, numStates)
	rejecting := make([]int, 0, numStates)
	for s := 0; s < numStates; s++ {
		if a.IsAccept(s) {
			accepting = append(accepting, s)
		} else {
			rejecting = append(rejecting, s)
		}
	}

	blocks := make([]*Block, 0, 2)
	if len(accepting) > 0 {
		blocks = append(blocks, newBlock(accepting))
	}
	if len(rejecting) > 0 {
		blocks = append(blocks, newBlock(rejecting))
	}

	p := newPartition(a, blocks, 0)
	o.onRound(p)

	for {
		next, split := p.refine()
		if !split {
			return p
		}
		p = newPartition(a, next, p.round+1)
		o.onRound(p)
	}
}

// refine performs one round over p and reports whether any block split.
func (p *Partition) refine() ([]*Block, bool) {
	next := make([]*Block, 0, len(p.blocks))
	split := false
	for _, b := range p.blocks {
		if b.Size() == 1 {
			next = append(next, b)
			continue
		}
		groups := newSignatureGroups(withCapacity(b.Size()))
		for _, s := range b.members {
			groups.Add(p.signature(s), s)
		}
		if groups.Size() > 1 {
			split = true
		}
		for _, members := range groups.Iterator() {
			next = append(next, newBlock(members))
		}
	}
	return next, split
}

// IsStable Returns true if p is a fixed point of refinement: every member of every block has the
// same signature.
func (p *Partition) IsStable() bool {
	_, split := p.refine()
	return !split
}
