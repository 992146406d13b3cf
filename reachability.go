package dfa

import (
	"github.com/bits-and-blooms/bitset"
)

// RemoveUnreachable
// Returns a new automaton holding only the states reachable from the start state. All defined
// transitions are followed, including those on symbols outside the alphabet. Surviving states keep
// their relative order, labels, declared flags and accept flags; the alphabet is unchanged. An
// automaton without a start state reduces to an empty one.
func RemoveUnreachable(a *Automaton) *Automaton {
	numStates := a.GetNumStates()
	live := getLiveStatesFromInitial(a)

	b := NewBuilderV1(int(live.Count()), len(a.symbols))
	// Symbols are copied first so that indices line up with a.
	for _, label := range a.symbols {
		b.symbol(label)
	}
	for _, sym := range a.alphabet {
		b.AddSymbol(a.symbols[sym])
	}

	mp := make([]int, numStates)
	for i := 0; i < numStates; i++ {
		mp[i] = -1
		if !live.Test(uint(i)) {
			continue
		}
		mp[i] = b.state(a.states[i])
		if a.declared.Test(uint(i)) {
			b.CreateState(a.states[i])
		}
		if a.IsAccept(i) {
			b.SetAccept(a.states[i], true)
		}
	}

	for i := 0; i < numStates; i++ {
		if mp[i] == -1 {
			continue
		}
		for sym, dest := range a.transitions[i] {
			if dest != -1 {
				b.setTransition(mp[i], sym, mp[dest])
			}
		}
	}

	if label, ok := a.StartLabel(); ok {
		b.SetStart(label)
	}
	return b.Finish()
}

// getLiveStatesFromInitial returns the set of states reachable from the start state by a
// depth-first walk.
func getLiveStatesFromInitial(a *Automaton) *bitset.BitSet {
	numStates := a.GetNumStates()
	live := bitset.New(uint(numStates))
	if a.start == -1 {
		return live
	}

	workList := []int{a.start}
	live.Set(uint(a.start))
	for len(workList) > 0 {
		s := workList[len(workList)-1]
		workList = workList[:len(workList)-1]
		for _, dest := range a.transitions[s] {
			if dest != -1 && !live.Test(uint(dest)) {
				live.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}
	return live
}

// IsEmptyAutomaton
// Returns true if the given automaton accepts no strings over its alphabet.
func IsEmptyAutomaton(a *Automaton) bool {
	if a.GetNumStates() == 0 || a.start == -1 {
		// Common case: no states
		return true
	}
	if a.IsAccept(a.start) {
		return false
	}

	workList := []int{a.start}
	seen := bitset.New(uint(a.GetNumStates()))
	seen.Set(uint(a.start))
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]
		if a.IsAccept(state) {
			return false
		}
		for _, sym := range a.alphabet {
			dest := a.Step(state, sym)
			if dest != -1 && !seen.Test(uint(dest)) {
				workList = append(workList, dest)
				seen.Set(uint(dest))
			}
		}
	}
	return true
}
