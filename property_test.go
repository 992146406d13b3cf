package dfa

import (
	"slices"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const (
	maxGenStates  = 6
	maxGenSymbols = 3
	maxWordLength = 12
)

// genAutomaton builds an automaton from generated raw material: the first numStates*numSymbols
// entries of targets fill the transition table (negative means undefined), accept flags the
// accepting states and start picks the start state.
func genAutomaton(targets []int, accept []bool, numStates, numSymbols, start int) *Automaton {
	b := NewBuilderV1(numStates, numSymbols)
	for s := 0; s < numStates; s++ {
		b.CreateState("q" + strconv.Itoa(s))
	}
	for sym := 0; sym < numSymbols; sym++ {
		b.AddSymbol(string(rune('a' + sym)))
	}
	for s := 0; s < numStates; s++ {
		for sym := 0; sym < numSymbols; sym++ {
			dest := targets[s*numSymbols+sym]
			if dest < 0 {
				continue
			}
			b.AddTransition("q"+strconv.Itoa(s), string(rune('a'+sym)), "q"+strconv.Itoa(dest%numStates))
		}
		b.SetAccept("q"+strconv.Itoa(s), accept[s])
	}
	b.SetStart("q" + strconv.Itoa(start%numStates))
	return b.Finish()
}

func automatonGens() []gopter.Gen {
	return []gopter.Gen{
		gen.SliceOfN(maxGenStates*maxGenSymbols, gen.IntRange(-1, maxGenStates-1)),
		gen.SliceOfN(maxGenStates, gen.Bool()),
		gen.IntRange(1, maxGenStates),
		gen.IntRange(0, maxGenSymbols),
		gen.IntRange(0, maxGenStates-1),
	}
}

func TestMinimizationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("reachability is idempotent", prop.ForAll(
		func(targets []int, accept []bool, numStates, numSymbols, start int) bool {
			a := genAutomaton(targets, accept, numStates, numSymbols, start)
			once := RemoveUnreachable(a)
			twice := RemoveUnreachable(once)
			return slices.Equal(once.States(), twice.States()) &&
				slices.Equal(once.AcceptStates(), twice.AcceptStates())
		},
		automatonGens()...,
	))

	properties.Property("every generation is a proper cover", prop.ForAll(
		func(targets []int, accept []bool, numStates, numSymbols, start int) bool {
			reduced := RemoveUnreachable(genAutomaton(targets, accept, numStates, numSymbols, start))
			ok := true
			Refine(reduced, WithRoundHook(func(p *Partition) {
				ok = ok && isCover(p)
			}))
			return ok
		},
		automatonGens()...,
	))

	properties.Property("final partition is a fixed point", prop.ForAll(
		func(targets []int, accept []bool, numStates, numSymbols, start int) bool {
			reduced := RemoveUnreachable(genAutomaton(targets, accept, numStates, numSymbols, start))
			p := Refine(reduced)
			for _, b := range p.blocks {
				rep := b.Representative()
				for _, s := range b.members {
					if reduced.IsAccept(s) != reduced.IsAccept(rep) {
						return false
					}
					for _, sym := range reduced.alphabet {
						if p.BlockOf(reduced.Step(s, sym)) != p.BlockOf(reduced.Step(rep, sym)) {
							return false
						}
					}
				}
			}
			return p.IsStable()
		},
		automatonGens()...,
	))

	properties.Property("minimization never adds states", prop.ForAll(
		func(targets []int, accept []bool, numStates, numSymbols, start int) bool {
			m := Minimize(genAutomaton(targets, accept, numStates, numSymbols, start))
			n, k := m.Reduced.GetNumStates(), m.Minimized.GetNumStates()
			if k > n {
				return false
			}
			// equality iff every block is a singleton
			singletons := true
			for _, b := range m.Partition.blocks {
				singletons = singletons && b.Size() == 1
			}
			return (k == n) == singletons
		},
		automatonGens()...,
	))

	properties.Property("minimization preserves the language", prop.ForAll(
		func(targets []int, accept []bool, numStates, numSymbols, start int, word []int) bool {
			m := Minimize(genAutomaton(targets, accept, numStates, numSymbols, start))
			if numSymbols == 0 {
				return Run(m.Reduced, nil) == Run(m.Minimized, nil)
			}
			input := make([]string, 0, len(word))
			for i := 0; i <= len(word); i++ {
				if Run(m.Reduced, input) != Run(m.Minimized, input) {
					return false
				}
				if i < len(word) {
					input = append(input, string(rune('a'+word[i]%numSymbols)))
				}
			}
			return true
		},
		append(automatonGens(), gen.SliceOfN(maxWordLength, gen.IntRange(0, maxGenSymbols-1)))...,
	))

	properties.Property("minimizing twice changes nothing", prop.ForAll(
		func(targets []int, accept []bool, numStates, numSymbols, start int) bool {
			first := Minimize(genAutomaton(targets, accept, numStates, numSymbols, start))
			second := Minimize(first.Minimized)
			return second.Minimized.GetNumStates() == first.Minimized.GetNumStates()
		},
		automatonGens()...,
	))

	properties.TestingRun(t)
}

func isCover(p *Partition) bool {
	seen := make(map[int]bool)
	for i, b := range p.blocks {
		if b.Size() == 0 {
			return false
		}
		for _, s := range b.members {
			if seen[s] || p.BlockOf(s) != i {
				return false
			}
			seen[s] = true
		}
	}
	return len(seen) == p.Automaton().GetNumStates()
}
