package dfa

// Run Returns true if a accepts the given sequence of symbol labels. Unknown symbols and missing
// transitions reject.
func Run(a *Automaton, input []string) bool {
	state := a.Start()
	if state == -1 {
		return false
	}
	for _, label := range input {
		sym, ok := a.symbolIndex[label]
		if !ok {
			return false
		}
		nextState := a.Step(state, sym)
		if nextState == -1 {
			return false
		}
		state = nextState
	}
	return a.IsAccept(state)
}
