package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBlock(t *testing.T) {
	tests := []struct {
		name        string
		values      []int
		wantMembers []int
	}{
		{
			name:        "Sorted",
			values:      []int{1, 2, 3},
			wantMembers: []int{1, 2, 3},
		},
		{
			name:        "Unsorted",
			values:      []int{7, 0, 4},
			wantMembers: []int{0, 4, 7},
		},
		{
			name:        "Single",
			values:      []int{5},
			wantMembers: []int{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newBlock(tt.values)
			assert.Equal(t, tt.wantMembers, got.Members())
			assert.Equal(t, len(tt.wantMembers), got.Size())
			assert.Equal(t, tt.wantMembers[0], got.Representative())
			for _, v := range tt.wantMembers {
				assert.True(t, got.Contains(v))
			}
			assert.False(t, got.Contains(100))
		})
	}
}

func TestBlockDoesNotAlias(t *testing.T) {
	values := []int{3, 1, 2}
	b := newBlock(values)
	values[0] = 9
	assert.Equal(t, []int{1, 2, 3}, b.Members())

	members := b.Members()
	members[0] = 9
	assert.Equal(t, []int{1, 2, 3}, b.Members())
}

func TestBlockEquals(t *testing.T) {
	a := newBlock([]int{2, 1})
	b := newBlock([]int{1, 2})
	c := newBlock([]int{1, 3})

	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))

	var nilBlock *Block
	assert.True(t, nilBlock.Equals(nil))
}

func TestBlockLabel(t *testing.T) {
	a, _ := Parse(&Table{States: "D,C,B,A"})
	b := newBlock([]int{0, 1})
	assert.Equal(t, "(C,D)", b.Label(a))
	assert.Equal(t, "(A)", newBlock([]int{3}).Label(a))
}
