package dfa

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTable(t *testing.T) {
	t.Run("block scalar transitions", func(t *testing.T) {
		doc := `
states: A,B,C,D
alphabet: 0,1
start: A
accept: C,D
transitions: |
  A,0=B
  A,1=C
  B,0=A
  B,1=D
  C,0=D
  C,1=C
  D,0=C
  D,1=D
`
		table, err := LoadTable(strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, "A,B,C,D", table.States)
		assert.Equal(t, "A", table.Start)

		a, invalid := Parse(table)
		assert.Empty(t, invalid)
		assert.Equal(t, 8, a.GetNumTransitions())
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := LoadTable(strings.NewReader(""))
		assert.True(t, errors.Is(err, ErrEmptyDocument))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadTable(strings.NewReader("states: [A"))
		assert.Error(t, err)
	})
}
