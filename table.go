package dfa

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Table is the textual description of a DFA. States, Alphabet and Accept are delimiter-separated
// lists, Start is a single label and Transitions holds one `state,symbol=target` line per
// transition.
type Table struct {
	States      string `yaml:"states" json:"states"`
	Alphabet    string `yaml:"alphabet" json:"alphabet"`
	Start       string `yaml:"start" json:"start"`
	Accept      string `yaml:"accept" json:"accept"`
	Transitions string `yaml:"transitions" json:"transitions"`
}

// ExampleTable Returns a four-state automaton over {0,1} whose accepting states C and D are
// equivalent.
func ExampleTable() *Table {
	return &Table{
		States:      "A,B,C,D",
		Alphabet:    "0,1",
		Start:       "A",
		Accept:      "C,D",
		Transitions: "A,0=B\nA,1=C\nB,0=A\nB,1=D\nC,0=D\nC,1=C\nD,0=C\nD,1=D",
	}
}

// LoadTable Decodes a YAML document into a Table.
func LoadTable(r io.Reader) (*Table, error) {
	var t Table
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode table: %w", ErrEmptyDocument)
		}
		return nil, fmt.Errorf("decode table: %w", err)
	}
	return &t, nil
}
