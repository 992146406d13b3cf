package dfa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	example, _ := Parse(ExampleTable())
	partial, _ := Parse(&Table{States: "A,B", Alphabet: "0,1", Start: "A", Accept: "B", Transitions: "A,1=B"})
	noStart, _ := Parse(&Table{States: "A", Alphabet: "0", Accept: "A", Transitions: "A,0=A"})

	type args struct {
		a *Automaton
		s string
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{"empty input rejected", args{example, ""}, false},
		{"single one accepted", args{example, "1"}, true},
		{"zeros rejected", args{example, "000"}, false},
		{"contains one accepted", args{example, "0010"}, true},
		{"unknown symbol rejected", args{example, "02"}, false},
		{"missing transition rejected", args{partial, "0"}, false},
		{"partial accepted", args{partial, "1"}, true},
		{"no start state rejects", args{noStart, ""}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := strings.Split(tt.args.s, "")
			assert.Equalf(t, tt.want, Run(tt.args.a, input), "Run(%v, %v)", tt.args.a, tt.args.s)
		})
	}
}

func TestRunMinimizedAgrees(t *testing.T) {
	a, _ := Parse(ExampleTable())
	m := Minimize(a)
	words := []string{"", "0", "1", "01", "10", "0000", "0001", "1111", "0101", "00100"}
	for _, w := range words {
		input := strings.Split(w, "")
		assert.Equal(t, Run(m.Reduced, input), Run(m.Minimized, input), "word %q", w)
	}
}
